// Package uritemplate compiles JAX-RS style path templates such as
// "/users/{id}" or "/users/{id:[0-9]+}" and matches request paths against them.
//
// A template matches a path when the path starts with the template and the rest
// of the path is either empty or begins with "/". What is left over is reported
// as the remaining path so that nested resources can continue matching it.
//
// Match results are ordered by specificity: more literal characters first, then
// more template variables, then more variables carrying an explicit regular
// expression. Routers use this ordering to pick one handler among several that
// match the same path.
package uritemplate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrMalformed is returned for templates with unbalanced braces, invalid
	// variable names or invalid variable patterns.
	ErrMalformed = errors.New("malformed uri template")
	// ErrVariableRedefined is returned when a template declares the same
	// variable name twice.
	ErrVariableRedefined = errors.New("uri template variable redefined")
)

const (
	defaultVariablePattern = "[^/]+?"
	matchedGroup           = "matched"
	remainingGroup         = "remaining"
)

var variableName = regexp.MustCompile(`^\w[\w.-]*$`)

// Template is a compiled URI template. It is immutable and safe for concurrent use.
type Template struct {
	text              string
	pattern           *regexp.Regexp
	variables         []string
	groups            []int
	matched           int
	remaining         int
	literalChars      int
	explicitVariables int
}

// New compiles a template.
func New(template string) (*Template, error) {
	t := &Template{text: template}
	seen := make(map[string]struct{})

	var expr strings.Builder
	expr.WriteString("^(?P<" + matchedGroup + ">")

	literalStart := 0
	flushLiteral := func(end int) {
		literal := template[literalStart:end]
		t.literalChars += utf8.RuneCountInString(literal)
		expr.WriteString(regexp.QuoteMeta(literal))
	}

	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '}':
			return nil, fmt.Errorf("%w: unexpected '}' at offset %d in %q", ErrMalformed, i, template)
		case '{':
			flushLiteral(i)
			end, err := closingBrace(template, i)
			if err != nil {
				return nil, err
			}
			name, pattern, err := splitVariable(template[i+1 : end])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, template)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrVariableRedefined, name, template)
			}
			seen[name] = struct{}{}
			if pattern == "" {
				pattern = defaultVariablePattern
			} else {
				t.explicitVariables++
			}
			t.variables = append(t.variables, name)
			expr.WriteString("(?P<v" + strconv.Itoa(len(t.variables)-1) + ">" + pattern + ")")
			i = end
			literalStart = end + 1
		}
	}
	flushLiteral(len(template))
	expr.WriteString(")(?P<" + remainingGroup + ">/.*)?$")

	pattern, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformed, template, err)
	}
	t.pattern = pattern
	t.matched = pattern.SubexpIndex(matchedGroup)
	t.remaining = pattern.SubexpIndex(remainingGroup)
	t.groups = make([]int, len(t.variables))
	for i := range t.variables {
		t.groups[i] = pattern.SubexpIndex("v" + strconv.Itoa(i))
	}
	return t, nil
}

// MustNew is like New but panics on error. It is meant for templates declared
// at package level.
func MustNew(template string) *Template {
	t, err := New(template)
	if err != nil {
		panic(err)
	}
	return t
}

func closingBrace(template string, open int) (int, error) {
	depth := 0
	for i := open; i < len(template); i++ {
		switch template[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unclosed '{' at offset %d in %q", ErrMalformed, open, template)
}

func splitVariable(body string) (name, pattern string, err error) {
	name = body
	if idx := strings.IndexByte(body, ':'); idx >= 0 {
		name, pattern = body[:idx], strings.TrimSpace(body[idx+1:])
		if pattern == "" {
			return "", "", fmt.Errorf("%w: empty pattern for variable %q", ErrMalformed, name)
		}
	}
	name = strings.TrimSpace(name)
	if !variableName.MatchString(name) {
		return "", "", fmt.Errorf("%w: invalid variable name %q", ErrMalformed, name)
	}
	return name, pattern, nil
}

// String returns the template text as declared.
func (t *Template) String() string {
	return t.text
}

// Variables returns the variable names in declaration order.
func (t *Template) Variables() []string {
	out := make([]string, len(t.variables))
	copy(out, t.variables)
	return out
}

// Match matches path against the template.
func (t *Template) Match(path string) (*MatchResult, bool) {
	m := t.pattern.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	params := make(map[string]string, len(t.variables))
	for i, name := range t.variables {
		params[name] = m[t.groups[i]]
	}
	return &MatchResult{
		Matched:        m[t.matched],
		Remaining:      m[t.remaining],
		PathParameters: params,
		template:       t,
	}, true
}
