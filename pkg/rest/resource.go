package rest

import (
	"net/http"
	"reflect"
	"slices"
	"strings"

	"github.com/kkutopiaa/tdd-restful-service/pkg/uritemplate"
)

// Resource is something a path can be matched against to find the resource
// method that handles a request: a root resource class or a sub-resource
// locator.
type Resource interface {
	Template() *uritemplate.Template
	// Match continues matching after result. It returns nil when nothing in
	// the resource handles the request.
	Match(result *uritemplate.MatchResult, verb, accept string, rc ResourceContext, b URIInfoBuilder) (*Selection, error)
}

// ResourceMethod is a callable resource method.
type ResourceMethod interface {
	HTTPMethod() string
	Template() *uritemplate.Template
	// Call invokes the method on the last matched resource. A nil entity means
	// the method produced nothing.
	Call(rc ResourceContext, b URIInfoBuilder) (*GenericEntity, error)
	String() string
}

// Selection is the outcome of matching: the method to call and the media type
// negotiated for its result, empty when the method declares none.
type Selection struct {
	Method    ResourceMethod
	MediaType MediaType
}

type resourceMethod struct {
	verb     string
	template *uritemplate.Template
	invoker  *invoker
	produces []MediaType
	consumes []MediaType
	name     string
}

func (m *resourceMethod) HTTPMethod() string              { return m.verb }
func (m *resourceMethod) Template() *uritemplate.Template { return m.template }
func (m *resourceMethod) String() string                  { return m.name }

func (m *resourceMethod) Call(rc ResourceContext, b URIInfoBuilder) (*GenericEntity, error) {
	out, err := m.invoker.invoke(rc, b)
	if err != nil {
		return nil, err
	}
	return entityOf(out, m.invoker.out), nil
}

func entityOf(v reflect.Value, declared reflect.Type) *GenericEntity {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}
	typ := declared
	if typ == nil || typ.Kind() == reflect.Interface {
		typ = reflect.TypeOf(v.Interface())
	}
	return &GenericEntity{Value: v.Interface(), Type: typ}
}

// headMethod answers HEAD with the GET method, dropping whatever entity it
// produces. A response built by the method keeps its status and headers.
type headMethod struct {
	ResourceMethod
}

func (h headMethod) HTTPMethod() string { return http.MethodHead }

func (h headMethod) Call(rc ResourceContext, b URIInfoBuilder) (*GenericEntity, error) {
	entity, err := h.ResourceMethod.Call(rc, b)
	if err != nil || entity == nil {
		return nil, err
	}
	if resp, ok := entity.Value.(*Response); ok {
		head := *resp
		head.Entity = nil
		return EntityOf(&head), nil
	}
	return nil, nil
}

// optionsMethod answers OPTIONS with the verbs available for a path.
type optionsMethod struct {
	allow []string
}

func (o optionsMethod) HTTPMethod() string              { return http.MethodOptions }
func (o optionsMethod) Template() *uritemplate.Template { return nil }
func (o optionsMethod) String() string                  { return "OPTIONS " + strings.Join(o.allow, ",") }

func (o optionsMethod) Call(ResourceContext, URIInfoBuilder) (*GenericEntity, error) {
	return EntityOf(NoContent().WithHeader("Allow", strings.Join(o.allow, ", "))), nil
}

var verbOrder = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

func methodTemplate(m *resourceMethod) *uritemplate.Template { return m.template }

func locatorTemplate(l *subResourceLocator) *uritemplate.Template { return l.template }

func record(result *uritemplate.MatchResult, b URIInfoBuilder) {
	b.AddMatchedURI(result.Matched)
	b.AddMatchedPathParameters(result.PathParameters)
}

// route finds the resource method for the path remaining inside c.
func (c *Class) route(path, verb, accept string, rc ResourceContext, b URIInfoBuilder) (*Selection, error) {
	sel, err := c.findMethod(path, verb, accept, b)
	if sel != nil || err != nil {
		return sel, err
	}
	switch verb {
	case http.MethodHead:
		sel, err := c.findMethod(path, http.MethodGet, accept, b)
		if sel != nil {
			sel.Method = headMethod{sel.Method}
		}
		if sel != nil || err != nil {
			return sel, err
		}
	case http.MethodOptions:
		if allow := c.allowed(path); len(allow) > 0 {
			return &Selection{Method: optionsMethod{allow: allow}}, nil
		}
	}
	locator, ok := uritemplate.Best(path, c.locators, locatorTemplate, uritemplate.AnyRemaining)
	if !ok {
		return nil, nil
	}
	return locator.Handler.Match(locator.Result, verb, accept, rc, b)
}

// findMethod selects among the methods for verb that fully match path. Of
// the equally specific ones, the method whose produced types best fit the
// Accept header wins; methods declaring no types fit anything.
func (c *Class) findMethod(path, verb, accept string, b URIInfoBuilder) (*Selection, error) {
	tied := uritemplate.Tied(uritemplate.MatchAll(path, c.methods[verb], methodTemplate, uritemplate.FullMatch))
	if len(tied) == 0 {
		return nil, nil
	}
	tied, err := consuming(tied, b.Request())
	if err != nil {
		return nil, err
	}

	var offers []MediaType
	for _, cand := range tied {
		offers = append(offers, cand.Handler.produces...)
	}
	if mt, ok := negotiate(accept, offers); ok {
		for _, cand := range tied {
			if slices.Contains(cand.Handler.produces, mt) {
				record(cand.Result, b)
				return &Selection{Method: cand.Handler, MediaType: mt}, nil
			}
		}
	}
	for _, cand := range tied {
		if len(cand.Handler.produces) == 0 {
			record(cand.Result, b)
			return &Selection{Method: cand.Handler}, nil
		}
	}
	return nil, NewWebApplicationError(http.StatusNotAcceptable)
}

// consuming drops the methods whose consumed types do not fit the request's
// Content-Type. A request without a body type fits every method.
func consuming(cands []uritemplate.Candidate[*resourceMethod], r *http.Request) ([]uritemplate.Candidate[*resourceMethod], error) {
	if r == nil {
		return cands, nil
	}
	ct := ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "" {
		return cands, nil
	}
	var kept []uritemplate.Candidate[*resourceMethod]
	for _, cand := range cands {
		if len(cand.Handler.consumes) == 0 || slices.ContainsFunc(cand.Handler.consumes, ct.Compatible) {
			kept = append(kept, cand)
		}
	}
	if len(kept) == 0 {
		return nil, NewWebApplicationError(http.StatusUnsupportedMediaType)
	}
	return kept, nil
}

// allowed lists the verbs with a method fully matching path.
func (c *Class) allowed(path string) []string {
	found := map[string]bool{}
	for _, m := range c.ordered {
		if result, ok := m.template.Match(path); ok && result.FullyMatched() {
			found[m.verb] = true
		}
	}
	if len(found) == 0 {
		return nil
	}
	if found[http.MethodGet] {
		found[http.MethodHead] = true
	}
	found[http.MethodOptions] = true

	var allow []string
	for _, verb := range verbOrder {
		if found[verb] {
			allow = append(allow, verb)
			delete(found, verb)
		}
	}
	extra := make([]string, 0, len(found))
	for verb := range found {
		extra = append(extra, verb)
	}
	slices.Sort(extra)
	return append(allow, extra...)
}

// rootResource matches a root class and resolves its instance from the
// resource context.
type rootResource struct {
	class *Class
}

func (r rootResource) Template() *uritemplate.Template { return r.class.template }

func (r rootResource) Match(result *uritemplate.MatchResult, verb, accept string, rc ResourceContext, b URIInfoBuilder) (*Selection, error) {
	instance, err := rc.Resource(r.class.typ)
	if err != nil {
		return nil, err
	}
	b.AddMatchedResource(instance)
	record(result, b)
	return r.class.route(result.Remaining, verb, accept, rc, b)
}

type subResourceLocator struct {
	template *uritemplate.Template
	invoker  *invoker
	sub      *Class
	name     string
}

func (l *subResourceLocator) Template() *uritemplate.Template { return l.template }
func (l *subResourceLocator) String() string                  { return l.name }

func (l *subResourceLocator) Match(result *uritemplate.MatchResult, verb, accept string, rc ResourceContext, b URIInfoBuilder) (*Selection, error) {
	record(result, b)
	out, err := l.invoker.invoke(rc, b)
	if err != nil {
		return nil, err
	}
	entity := entityOf(out, nil)
	if entity == nil {
		return nil, nil
	}
	b.AddMatchedResource(entity.Value)
	return l.sub.route(result.Remaining, verb, accept, rc, b)
}
