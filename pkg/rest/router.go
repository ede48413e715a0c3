package rest

import (
	"net/http"
	"strings"

	"github.com/kkutopiaa/tdd-restful-service/pkg/uritemplate"
)

// Router dispatches a request to a resource method and builds the outbound
// response. A request nothing matches yields a 404 response, not an error.
type Router interface {
	Dispatch(r *http.Request, rc ResourceContext) (*Response, error)
}

type resourceRouter struct {
	runtime Runtime
	roots   []Resource
}

// NewRouter creates the default router over root classes.
func NewRouter(runtime Runtime, classes ...*Class) Router {
	roots := make([]Resource, 0, len(classes))
	for _, c := range classes {
		roots = append(roots, rootResource{class: c})
	}
	return &resourceRouter{runtime: runtime, roots: roots}
}

// newResourceRouter builds a router over arbitrary resources.
func newResourceRouter(runtime Runtime, roots ...Resource) Router {
	return &resourceRouter{runtime: runtime, roots: roots}
}

func rootTemplate(r Resource) *uritemplate.Template { return r.Template() }

func (rr *resourceRouter) Dispatch(r *http.Request, rc ResourceContext) (*Response, error) {
	path := requestPath(r)
	b := rr.runtime.CreateURIInfoBuilder(r)

	root, ok := uritemplate.Best(path, rr.roots, rootTemplate, uritemplate.AnyRemaining)
	if !ok {
		return Unmatched(), nil
	}
	sel, err := root.Handler.Match(root.Result, r.Method, strings.Join(r.Header.Values("Accept"), ","), rc, b)
	if err != nil {
		return nil, err
	}
	if sel == nil {
		return Unmatched(), nil
	}

	entity, err := sel.Method.Call(rc, b)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return NoContent(), nil
	}
	if resp, ok := entity.Value.(*Response); ok {
		return resp, nil
	}
	mt := sel.MediaType
	if mt == "" {
		mt = DefaultMediaType(entity.Type)
	}
	return OK(entity).WithType(mt), nil
}

// requestPath is the path matched against root templates. A trailing slash is
// ignored.
func requestPath(r *http.Request) string {
	path := r.URL.Path
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
