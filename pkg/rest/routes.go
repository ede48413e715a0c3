package rest

import (
	"strings"
)

// Route is one reachable resource method.
type Route struct {
	Method   string
	Path     string
	Handler  string
	Produces []MediaType
}

// Routes flattens the resource methods reachable from classes, following
// sub-resource locators. A class reached again through its own locators is
// not expanded twice on the same path.
func Routes(classes ...*Class) []Route {
	var out []Route
	for _, c := range classes {
		if c == nil || c.template == nil {
			continue
		}
		out = c.appendRoutes(out, c.template.String(), map[*Class]bool{})
	}
	return out
}

func (c *Class) appendRoutes(out []Route, prefix string, visiting map[*Class]bool) []Route {
	if visiting[c] {
		return out
	}
	visiting[c] = true
	defer delete(visiting, c)

	for _, m := range c.ordered {
		out = append(out, Route{
			Method:   m.verb,
			Path:     joinPath(prefix, m.template.String()),
			Handler:  m.name,
			Produces: m.produces,
		})
	}
	for _, l := range c.locators {
		out = l.sub.appendRoutes(out, joinPath(prefix, l.template.String()), visiting)
	}
	return out
}

func joinPath(prefix, path string) string {
	switch {
	case path == "":
		return prefix
	case prefix == "":
		return path
	}
	return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(path, "/")
}
