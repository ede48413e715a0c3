package rest

import (
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kkutopiaa/tdd-restful-service/pkg/uritemplate"
)

type plainStruct struct{}

func TestNewClassValidation(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"not a function", GET("", "hello"), ErrInvalidMethod},
		{"nil function", GET("", nil), ErrInvalidMethod},
		{"wrong receiver", GET("", (*Message).Content), ErrInvalidMethod},
		{"no receiver", GET("", func() string { return "" }), ErrInvalidMethod},
		{"variadic", GET("", func(*Messages, ...string) string { return "" }), ErrInvalidMethod},
		{"too many bound parameters", GET("", (*Messages).Get, PathParam("id")), ErrInvalidMethod},
		{"second result is not an error", GET("", func(*Messages) (string, string) { return "", "" }), ErrInvalidMethod},
		{"three results", GET("", func(*Messages) (string, string, error) { return "", "", nil }), ErrInvalidMethod},
		{"unconvertible path parameter", GET("/{id}", func(*Messages, plainStruct) string { return "" }, PathParam("id")), ErrInvalidMethod},
		{"malformed method template", GET("/{id", (*Messages).Get), uritemplate.ErrMalformed},
		{"empty verb", Method("", "", (*Messages).Get), ErrInvalidMethod},
		{"locator without sub-resource class", Locator("/{id}", (*Messages).ByID, nil), ErrInvalidMethod},
		{"locator returning another type", Locator("/{id}", (*Messages).ByID, messageBodyClass), ErrInvalidMethod},
		{"locator returning nothing", Locator("/{id}", func(*Messages) {}, messageClass), ErrInvalidMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClass[*Messages]("/messages", tt.spec)
			assert.ErrorIs(t, err, ErrInvalidClass)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("malformed class template", func(t *testing.T) {
		_, err := NewClass[*Messages]("/messages/{")
		assert.ErrorIs(t, err, ErrInvalidClass)
		assert.ErrorIs(t, err, uritemplate.ErrMalformed)
	})

	t.Run("must helpers panic", func(t *testing.T) {
		assert.Panics(t, func() { MustClass[*Messages]("/{") })
		assert.Panics(t, func() { MustSubClass[*Messages](GET("", "not a function")) })
	})
}

func TestClassDescribesItself(t *testing.T) {
	assert.True(t, messagesClass.IsRoot())
	assert.Equal(t, "/messages", messagesClass.Template().String())
	assert.Equal(t, reflect.TypeFor[*Messages](), messagesClass.Type())
	assert.Equal(t, "Messages", messagesClass.String())

	assert.False(t, messageClass.IsRoot())
	assert.Nil(t, messageClass.Template())
}

func TestResourceMethodNames(t *testing.T) {
	tests := []struct {
		name string
		spec *MethodSpec
		want string
	}{
		{"pointer method expression", GET("", (*Messages).Hello), "Messages.Hello"},
		{"value method expression", GET("", plainStruct.String), "plainStruct.String"},
		{"explicit name", GET("", (*Messages).Hello).Named("greeting"), "greeting"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := reflect.TypeFor[*Messages]()
			if tt.name == "value method expression" {
				typ = reflect.TypeFor[plainStruct]()
			}
			c, err := newClass(typ, nil, []Spec{tt.spec})
			require.NoError(t, err)
			require.Len(t, c.ordered, 1)
			assert.Equal(t, tt.want, c.ordered[0].String())
			assert.Equal(t, http.MethodGet, c.ordered[0].HTTPMethod())
		})
	}
}

func (plainStruct) String() string { return "plain" }

func TestParamSpec(t *testing.T) {
	p := QueryParam("page").Default("1")
	assert.Equal(t, SourceQuery, p.Source())
	assert.Equal(t, "page", p.Name())
	assert.Equal(t, "query", p.Source().String())
	assert.Equal(t, "context", Context().Source().String())
	assert.Equal(t, "entity", Entity().Source().String())
	assert.Equal(t, "header", HeaderParam("X").Source().String())
	assert.Equal(t, "path", PathParam("id").Source().String())
}

func TestRoutes(t *testing.T) {
	routes := Routes(messagesClass, missingMessagesClass, nil)

	paths := make(map[string]string, len(routes))
	for _, r := range routes {
		paths[r.Method+" "+r.Path] = r.Handler
	}
	assert.Equal(t, "Messages.Get", paths["GET /messages"])
	assert.Equal(t, "Messages.Hello", paths["GET /messages/hello"])
	assert.Equal(t, "Message.Content", paths["GET /messages/{id}/content"])
	assert.Equal(t, "MessageBody.Get", paths["GET /messages/{id}/body/get"])
	assert.Equal(t, "Message.Content", paths["GET /missing-messages/sub/content"])
	assert.Equal(t, []MediaType{TextPlain}, routes[0].Produces)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/messages", joinPath("/messages", ""))
	assert.Equal(t, "/hello", joinPath("", "/hello"))
	assert.Equal(t, "/messages/hello", joinPath("/messages/", "/hello"))
	assert.Equal(t, "/messages/hello", joinPath("/messages", "hello"))
}
