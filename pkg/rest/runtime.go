package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

var (
	// ErrUnknownResource is returned by a ResourceContext asked for a type it
	// cannot provide.
	ErrUnknownResource = errors.New("unknown resource type")
	// ErrInvalidApplication is returned by NewRuntime for an application that
	// cannot be served.
	ErrInvalidApplication = errors.New("invalid application")
)

var responseWriterType = reflect.TypeFor[http.ResponseWriter]()

// ResourceContext resolves resource instances and injectable objects for one
// request.
type ResourceContext interface {
	Resource(t reflect.Type) (any, error)
}

// ResourceOf resolves a T from rc.
func ResourceOf[T any](rc ResourceContext) (T, error) {
	var zero T
	v, err := rc.Resource(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: got %T for %s", ErrUnknownResource, v, reflect.TypeFor[T]())
	}
	return out, nil
}

// Runtime ties an application together: its providers, its router and the
// per-request objects used while dispatching.
type Runtime interface {
	Providers() Providers
	Router() Router
	CreateResourceContext(r *http.Request, w http.ResponseWriter) ResourceContext
	CreateURIInfoBuilder(r *http.Request) URIInfoBuilder
}

// Application declares what a runtime serves.
type Application struct {
	classes    []*Class
	providers  []ProviderOption
	singletons map[reflect.Type]any
	factories  map[reflect.Type]func(*http.Request) (any, error)
}

// NewApplication creates an application serving the given root classes.
func NewApplication(classes ...*Class) *Application {
	return &Application{
		classes:    classes,
		singletons: map[reflect.Type]any{},
		factories:  map[reflect.Type]func(*http.Request) (any, error){},
	}
}

// WithProviders adds provider options.
func (a *Application) WithProviders(opts ...ProviderOption) *Application {
	a.providers = append(a.providers, opts...)
	return a
}

// Classes returns the root classes.
func (a *Application) Classes() []*Class {
	return a.classes
}

// Singleton registers v as the application-wide instance of T. Registering a
// root class type makes every request share that instance.
func Singleton[T any](a *Application, v T) *Application {
	a.singletons[reflect.TypeFor[T]()] = v
	return a
}

// PerRequest registers a factory called at most once per request for T.
func PerRequest[T any](a *Application, fn func(*http.Request) (T, error)) *Application {
	a.factories[reflect.TypeFor[T]()] = func(r *http.Request) (any, error) {
		return fn(r)
	}
	return a
}

type defaultRuntime struct {
	app       *Application
	providers Providers
	router    Router
	roots     map[reflect.Type]bool
}

// NewRuntime validates app and builds its runtime.
func NewRuntime(app *Application) (Runtime, error) {
	if app == nil {
		return nil, fmt.Errorf("%w: nil application", ErrInvalidApplication)
	}
	rt := &defaultRuntime{
		app:       app,
		providers: NewProviders(app.providers...),
		roots:     map[reflect.Type]bool{},
	}
	for _, c := range app.classes {
		if c == nil {
			return nil, fmt.Errorf("%w: nil resource class", ErrInvalidApplication)
		}
		if !c.IsRoot() {
			return nil, fmt.Errorf("%w: %s has no path", ErrInvalidApplication, c)
		}
		rt.roots[c.typ] = true
	}
	rt.router = NewRouter(rt, app.classes...)
	return rt, nil
}

func (rt *defaultRuntime) Providers() Providers { return rt.providers }

func (rt *defaultRuntime) Router() Router { return rt.router }

func (rt *defaultRuntime) CreateURIInfoBuilder(r *http.Request) URIInfoBuilder {
	return NewURIInfoBuilder(r)
}

func (rt *defaultRuntime) CreateResourceContext(r *http.Request, w http.ResponseWriter) ResourceContext {
	return &requestContext{runtime: rt, request: r, writer: w, cache: map[reflect.Type]any{}}
}

// requestContext caches request-scoped instances for the life of one request.
type requestContext struct {
	runtime *defaultRuntime
	request *http.Request
	writer  http.ResponseWriter
	cache   map[reflect.Type]any
}

func (rc *requestContext) Resource(t reflect.Type) (any, error) {
	switch t {
	case providersType:
		return rc.runtime.providers, nil
	case resourceContextType:
		return rc, nil
	case requestType:
		return rc.request, nil
	case responseWriterType:
		return rc.writer, nil
	}
	if v, ok := rc.runtime.app.singletons[t]; ok {
		return v, nil
	}
	if v, ok := rc.cache[t]; ok {
		return v, nil
	}
	if fn, ok := rc.runtime.app.factories[t]; ok {
		v, err := fn(rc.request)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", t, err)
		}
		rc.cache[t] = v
		return v, nil
	}
	if rc.runtime.roots[t] {
		v := newInstance(t)
		rc.cache[t] = v
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownResource, t)
}

func newInstance(t reflect.Type) any {
	if t.Kind() == reflect.Pointer {
		return reflect.New(t.Elem()).Interface()
	}
	return reflect.New(t).Elem().Interface()
}
