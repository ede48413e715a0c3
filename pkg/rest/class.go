package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/kkutopiaa/tdd-restful-service/pkg/uritemplate"
)

var (
	// ErrInvalidClass is returned when a resource class declaration is invalid.
	ErrInvalidClass = errors.New("invalid resource class")
	// ErrInvalidMethod is returned when a resource method or locator function
	// cannot be bound.
	ErrInvalidMethod = errors.New("invalid resource method")
)

// Class describes a resource class: the Go type of its instances, the
// template root instances are matched with, its resource methods and its
// sub-resource locators.
type Class struct {
	typ      reflect.Type
	template *uritemplate.Template
	methods  map[string][]*resourceMethod
	ordered  []*resourceMethod
	locators []*subResourceLocator
}

// Spec declares a member of a resource class. Specs are created with the verb
// helpers (GET, POST, ...), Method and Locator.
type Spec interface {
	apply(c *Class) error
}

// NewClass declares a root resource class matched by path.
func NewClass[T any](path string, specs ...Spec) (*Class, error) {
	tmpl, err := uritemplate.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalidClass, reflect.TypeFor[T](), err)
	}
	return newClass(reflect.TypeFor[T](), tmpl, specs)
}

// MustClass is like NewClass but panics on error.
func MustClass[T any](path string, specs ...Spec) *Class {
	c, err := NewClass[T](path, specs...)
	if err != nil {
		panic(err)
	}
	return c
}

// NewSubClass declares a resource class reachable only through locators.
func NewSubClass[T any](specs ...Spec) (*Class, error) {
	return newClass(reflect.TypeFor[T](), nil, specs)
}

// MustSubClass is like NewSubClass but panics on error.
func MustSubClass[T any](specs ...Spec) *Class {
	c, err := NewSubClass[T](specs...)
	if err != nil {
		panic(err)
	}
	return c
}

func newClass(typ reflect.Type, tmpl *uritemplate.Template, specs []Spec) (*Class, error) {
	c := &Class{typ: typ, template: tmpl, methods: map[string][]*resourceMethod{}}
	for _, spec := range specs {
		if spec == nil {
			continue
		}
		if err := spec.apply(c); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrInvalidClass, typ, err)
		}
	}
	return c, nil
}

// Type returns the Go type of the resource instances.
func (c *Class) Type() reflect.Type {
	return c.typ
}

// Template returns the root template, or nil for sub-resource classes.
func (c *Class) Template() *uritemplate.Template {
	return c.template
}

// IsRoot reports whether the class can be mounted as a root resource.
func (c *Class) IsRoot() bool {
	return c.template != nil
}

func (c *Class) String() string {
	return simpleTypeName(c.typ)
}

// MethodSpec declares a resource method.
type MethodSpec struct {
	verb     string
	path     string
	fn       any
	params   []ParamSpec
	produces []MediaType
	consumes []MediaType
	name     string
}

// Method declares a resource method for an arbitrary HTTP verb. fn is a
// method expression such as (*Messages).Hello, or any function whose first
// parameter accepts the resource instance. The remaining parameters are bound
// in order by params; parameters without a spec are context parameters.
func Method(verb, path string, fn any, params ...ParamSpec) *MethodSpec {
	return &MethodSpec{verb: strings.ToUpper(verb), path: path, fn: fn, params: params}
}

// GET declares a resource method answering GET requests.
func GET(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodGet, path, fn, params...)
}

// POST declares a resource method answering POST requests.
func POST(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodPost, path, fn, params...)
}

// PUT declares a resource method answering PUT requests.
func PUT(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodPut, path, fn, params...)
}

// DELETE declares a resource method answering DELETE requests.
func DELETE(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodDelete, path, fn, params...)
}

// PATCH declares a resource method answering PATCH requests.
func PATCH(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodPatch, path, fn, params...)
}

// HEAD declares a resource method answering HEAD requests.
func HEAD(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodHead, path, fn, params...)
}

// OPTIONS declares a resource method answering OPTIONS requests.
func OPTIONS(path string, fn any, params ...ParamSpec) *MethodSpec {
	return Method(http.MethodOptions, path, fn, params...)
}

// Produces sets the media types the method can produce.
func (m *MethodSpec) Produces(types ...MediaType) *MethodSpec {
	m.produces = append(m.produces, types...)
	return m
}

// Consumes sets the request media types the method accepts.
func (m *MethodSpec) Consumes(types ...MediaType) *MethodSpec {
	m.consumes = append(m.consumes, types...)
	return m
}

// Named overrides the name reported by String.
func (m *MethodSpec) Named(name string) *MethodSpec {
	m.name = name
	return m
}

func (m *MethodSpec) apply(c *Class) error {
	if m.verb == "" {
		return fmt.Errorf("%w: empty http method", ErrInvalidMethod)
	}
	tmpl, err := uritemplate.New(m.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMethod, err)
	}
	inv, err := newInvoker(m.fn, c.typ, m.params)
	if err != nil {
		return err
	}
	name := m.name
	if name == "" {
		name = inv.name
	}
	method := &resourceMethod{
		verb:     m.verb,
		template: tmpl,
		invoker:  inv,
		produces: m.produces,
		consumes: m.consumes,
		name:     name,
	}
	c.methods[m.verb] = append(c.methods[m.verb], method)
	c.ordered = append(c.ordered, method)
	return nil
}

// LocatorSpec declares a sub-resource locator.
type LocatorSpec struct {
	path   string
	fn     any
	sub    *Class
	params []ParamSpec
	name   string
}

// Locator declares a sub-resource locator. fn is called with the current
// resource and its return value becomes the next matched resource, which is
// matched against sub. A nil return value means nothing matched.
func Locator(path string, fn any, sub *Class, params ...ParamSpec) *LocatorSpec {
	return &LocatorSpec{path: path, fn: fn, sub: sub, params: params}
}

// Named overrides the name reported by String.
func (l *LocatorSpec) Named(name string) *LocatorSpec {
	l.name = name
	return l
}

func (l *LocatorSpec) apply(c *Class) error {
	if l.sub == nil {
		return fmt.Errorf("%w: locator %q has no sub-resource class", ErrInvalidMethod, l.path)
	}
	tmpl, err := uritemplate.New(l.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMethod, err)
	}
	inv, err := newInvoker(l.fn, c.typ, l.params)
	if err != nil {
		return err
	}
	if inv.out == nil || !inv.out.AssignableTo(l.sub.typ) && !l.sub.typ.AssignableTo(inv.out) {
		return fmt.Errorf("%w: locator %s does not return %s", ErrInvalidMethod, inv.name, l.sub.typ)
	}
	name := l.name
	if name == "" {
		name = inv.name
	}
	c.locators = append(c.locators, &subResourceLocator{
		template: tmpl,
		invoker:  inv,
		sub:      l.sub,
		name:     name,
	})
	return nil
}

// Source says where a parameter value comes from.
type Source int

const (
	// SourceContext injects a value by type from the request context.
	SourceContext Source = iota
	// SourcePath reads a matched path parameter.
	SourcePath
	// SourceQuery reads a query parameter.
	SourceQuery
	// SourceHeader reads a request header.
	SourceHeader
	// SourceEntity decodes the request body.
	SourceEntity
)

func (s Source) String() string {
	switch s {
	case SourcePath:
		return "path"
	case SourceQuery:
		return "query"
	case SourceHeader:
		return "header"
	case SourceEntity:
		return "entity"
	}
	return "context"
}

// ParamSpec binds one function parameter to a request value.
type ParamSpec struct {
	source     Source
	name       string
	def        string
	hasDefault bool
}

// PathParam binds a path template variable.
func PathParam(name string) ParamSpec {
	return ParamSpec{source: SourcePath, name: name}
}

// QueryParam binds a query parameter.
func QueryParam(name string) ParamSpec {
	return ParamSpec{source: SourceQuery, name: name}
}

// HeaderParam binds a request header.
func HeaderParam(name string) ParamSpec {
	return ParamSpec{source: SourceHeader, name: name}
}

// Entity binds the decoded request body.
func Entity() ParamSpec {
	return ParamSpec{source: SourceEntity}
}

// Context binds an object resolved by type: the resource context, the URI
// info, the request, its headers or context, or any resource the
// ResourceContext can provide.
func Context() ParamSpec {
	return ParamSpec{source: SourceContext}
}

// Default sets the string used when the request carries no value.
func (p ParamSpec) Default(value string) ParamSpec {
	p.def = value
	p.hasDefault = true
	return p
}

// Source returns where the parameter value comes from.
func (p ParamSpec) Source() Source {
	return p.source
}

// Name returns the bound name, empty for entity and context parameters.
func (p ParamSpec) Name() string {
	return p.name
}

func simpleTypeName(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
