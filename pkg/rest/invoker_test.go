package rest

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkutopiaa/tdd-restful-service/pkg/rest/convert"
)

type Injected struct{}

// Level is built from strings only through a registered factory.
type Level struct{ n int }

func parseLevel(s string) (Level, error) {
	switch s {
	case "low":
		return Level{1}, nil
	case "high":
		return Level{9}, nil
	}
	return Level{}, errors.New("unknown level")
}

var injectedType = reflect.TypeFor[*Injected]()

func call(t *testing.T, fn any, spec ParamSpec, r *http.Request, pathParams map[string]string, rc ResourceContext) (*GenericEntity, error) {
	t.Helper()
	inv, err := newInvoker(fn, injectedType, []ParamSpec{spec})
	require.NoError(t, err)

	b := NewURIInfoBuilder(r)
	b.AddMatchedResource(&Injected{})
	b.AddMatchedPathParameters(pathParams)
	m := &resourceMethod{verb: r.Method, invoker: inv, name: inv.name}
	return m.Call(rc, b)
}

func TestInjectConvertedParameters(t *testing.T) {
	convert.Register(parseLevel)

	tests := []struct {
		name   string
		fn     any
		spec   ParamSpec
		target string
		path   map[string]string
		want   any
	}{
		{"path string", func(_ *Injected, v string) string { return v }, PathParam("param"), "/", map[string]string{"param": "path"}, "path"},
		{"path int", func(_ *Injected, v int) int { return v }, PathParam("param"), "/", map[string]string{"param": "1"}, 1},
		{"path float64", func(_ *Injected, v float64) float64 { return v }, PathParam("param"), "/", map[string]string{"param": "3.25"}, 3.25},
		{"path int8", func(_ *Injected, v int8) int8 { return v }, PathParam("param"), "/", map[string]string{"param": "42"}, int8(42)},
		{"path bool", func(_ *Injected, v bool) bool { return v }, PathParam("param"), "/", map[string]string{"param": "TRUE"}, true},
		{"path factory", func(_ *Injected, v Level) Level { return v }, PathParam("param"), "/", map[string]string{"param": "high"}, Level{9}},
		{"query string", func(_ *Injected, v string) string { return v }, QueryParam("param"), "/?param=query", nil, "query"},
		{"query int", func(_ *Injected, v int64) int64 { return v }, QueryParam("param"), "/?param=12", nil, int64(12)},
		{"query slice", func(_ *Injected, v []string) []string { return v }, QueryParam("param"), "/?param=a&param=b", nil, []string{"a", "b"}},
		{"query default", func(_ *Injected, v int) int { return v }, QueryParam("page").Default("3"), "/", nil, 3},
		{"query missing", func(_ *Injected, v int) int { return v }, QueryParam("page"), "/", nil, 0},
		{"query factory", func(_ *Injected, v Level) Level { return v }, QueryParam("level"), "/?level=low", nil, Level{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entity, err := call(t, tt.fn, tt.spec, newRequest(http.MethodGet, tt.target), tt.path, contextWith())
			require.NoError(t, err)
			require.NotNil(t, entity)
			assert.Equal(t, tt.want, entity.Value)
		})
	}

	t.Run("path decimal", func(t *testing.T) {
		fn := func(_ *Injected, v decimal.Decimal) decimal.Decimal { return v }
		entity, err := call(t, fn, PathParam("param"), newRequest(http.MethodGet, "/"), map[string]string{"param": "12345"}, contextWith())
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12345").Equal(entity.Value.(decimal.Decimal)))
	})

	t.Run("header int", func(t *testing.T) {
		r := newRequest(http.MethodGet, "/")
		r.Header.Set("X-Count", "7")
		entity, err := call(t, func(_ *Injected, v int) int { return v }, HeaderParam("X-Count"), r, nil, contextWith())
		require.NoError(t, err)
		assert.Equal(t, 7, entity.Value)
	})
}

func TestInjectConversionFailures(t *testing.T) {
	intFn := func(_ *Injected, v int) int { return v }

	tests := []struct {
		name   string
		spec   ParamSpec
		target string
		path   map[string]string
		header string
		status int
	}{
		{"path param", PathParam("param"), "/", map[string]string{"param": "abc"}, "", http.StatusNotFound},
		{"query param", QueryParam("param"), "/?param=abc", nil, "", http.StatusNotFound},
		{"header param", HeaderParam("X-Count"), "/", nil, "abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRequest(http.MethodGet, tt.target)
			if tt.header != "" {
				r.Header.Set("X-Count", tt.header)
			}
			_, err := call(t, intFn, tt.spec, r, tt.path, contextWith())
			wae, ok := AsWebApplicationError(err)
			require.True(t, ok, "expected web application error, got %v", err)
			assert.Equal(t, tt.status, wae.Status())
			assert.ErrorContains(t, err, "invalid syntax")
		})
	}
}

type payload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TestInjectEntity(t *testing.T) {
	jsonFn := func(_ *Injected, p payload) payload { return p }
	textFn := func(_ *Injected, s string) string { return s }

	post := func(contentType, body string) *http.Request {
		r, err := http.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.NoError(t, err)
		r.Header.Set("Content-Type", contentType)
		return r
	}

	t.Run("json body", func(t *testing.T) {
		entity, err := call(t, jsonFn, Entity(), post("application/json", `{"name":"john","email":"john@example.com"}`), nil, contextWith())
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "john", Email: "john@example.com"}, entity.Value)
	})

	t.Run("text body", func(t *testing.T) {
		entity, err := call(t, textFn, Entity(), post("text/plain; charset=utf-8", "hello"), nil, contextWith())
		require.NoError(t, err)
		assert.Equal(t, "hello", entity.Value)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := call(t, jsonFn, Entity(), post("application/json", `{"name":`), nil, contextWith())
		wae, ok := AsWebApplicationError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, wae.Status())
	})

	t.Run("unsupported media type", func(t *testing.T) {
		_, err := call(t, jsonFn, Entity(), post("application/xml", `<p/>`), nil, contextWith())
		wae, ok := AsWebApplicationError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnsupportedMediaType, wae.Status())
	})
}

func TestInjectContext(t *testing.T) {
	service := namedService("service")
	rc := contextWith()
	rc[reflect.TypeFor[Service]()] = service
	r := newRequest(http.MethodGet, "/users?page=1")
	r.Header.Set("X-Trace", "abc")

	t.Run("resource context", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, got ResourceContext) ResourceContext { return got }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Equal(t, rc, entity.Value)
	})

	t.Run("uri info", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, info *URIInfo) string { return info.Path + "?" + info.QueryParameters.Encode() }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Equal(t, "/users?page=1", entity.Value)
	})

	t.Run("request", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, got *http.Request) *http.Request { return got }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Same(t, r, entity.Value)
	})

	t.Run("headers", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, h http.Header) string { return h.Get("X-Trace") }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Equal(t, "abc", entity.Value)
	})

	t.Run("context", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, ctx context.Context) bool { return ctx != nil }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Equal(t, true, entity.Value)
	})

	t.Run("resource from context", func(t *testing.T) {
		entity, err := call(t, func(_ *Injected, s Service) string { return s.Name() }, Context(), r, nil, rc)
		require.NoError(t, err)
		assert.Equal(t, "service", entity.Value)
	})

	t.Run("unknown resource", func(t *testing.T) {
		_, err := call(t, func(_ *Injected, _ *payload) string { return "" }, Context(), r, nil, rc)
		assert.ErrorIs(t, err, ErrUnknownResource)
	})
}

func TestInvokeResults(t *testing.T) {
	r := newRequest(http.MethodGet, "/")

	t.Run("void result", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) {}, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Injected{})
		entity, err := (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		require.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("declared slice type", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) []string { return []string{} }, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Injected{})
		entity, err := (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		require.NoError(t, err)
		require.NotNil(t, entity)
		assert.Equal(t, reflect.TypeFor[[]string](), entity.Type)
		assert.Equal(t, []string{}, entity.Value)
	})

	t.Run("interface result uses dynamic type", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) any { return 12 }, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Injected{})
		entity, err := (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		require.NoError(t, err)
		assert.Equal(t, reflect.TypeFor[int](), entity.Type)
	})

	t.Run("nil pointer result", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) *payload { return nil }, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Injected{})
		entity, err := (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		require.NoError(t, err)
		assert.Nil(t, entity)
	})

	t.Run("error result", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) (string, error) { return "", errBoom }, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Injected{})
		_, err = (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("receiver mismatch", func(t *testing.T) {
		inv, err := newInvoker(func(*Injected) string { return "" }, injectedType, nil)
		require.NoError(t, err)
		b := NewURIInfoBuilder(r)
		b.AddMatchedResource(&Message{})
		_, err = (&resourceMethod{invoker: inv}).Call(contextWith(), b)
		assert.ErrorContains(t, err, "is not a *rest.Injected")
	})
}
