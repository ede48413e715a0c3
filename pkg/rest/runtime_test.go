package rest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RuntimeSuite struct {
	suite.Suite
	app     *Application
	runtime Runtime
	request *http.Request
	writer  http.ResponseWriter
	created int
}

func TestRuntimeSuite(t *testing.T) {
	suite.Run(t, new(RuntimeSuite))
}

func (s *RuntimeSuite) SetupTest() {
	s.created = 0
	s.app = NewApplication(messagesClass)
	Singleton[Service](s.app, namedService("shared"))
	PerRequest(s.app, func(r *http.Request) (*payload, error) {
		s.created++
		return &payload{Name: r.URL.Query().Get("name")}, nil
	})

	var err error
	s.runtime, err = NewRuntime(s.app)
	s.Require().NoError(err)
	s.request = httptest.NewRequest(http.MethodGet, "/messages?name=john", nil)
	s.writer = httptest.NewRecorder()
}

func (s *RuntimeSuite) TestResolvesBuiltIns() {
	rc := s.runtime.CreateResourceContext(s.request, s.writer)

	s.Run("providers", func() {
		p, err := ResourceOf[Providers](rc)
		s.Require().NoError(err)
		s.Same(s.runtime.Providers(), p)
	})
	s.Run("resource context", func() {
		got, err := ResourceOf[ResourceContext](rc)
		s.Require().NoError(err)
		s.Equal(rc, got)
	})
	s.Run("request and writer", func() {
		r, err := ResourceOf[*http.Request](rc)
		s.Require().NoError(err)
		s.Same(s.request, r)

		w, err := ResourceOf[http.ResponseWriter](rc)
		s.Require().NoError(err)
		s.Equal(s.writer, w)
	})
}

func (s *RuntimeSuite) TestSingletonsAreShared() {
	first, err := ResourceOf[Service](s.runtime.CreateResourceContext(s.request, s.writer))
	s.Require().NoError(err)
	second, err := ResourceOf[Service](s.runtime.CreateResourceContext(s.request, s.writer))
	s.Require().NoError(err)
	s.Equal("shared", first.Name())
	s.Equal(first, second)
}

func (s *RuntimeSuite) TestPerRequestFactoryRunsOncePerRequest() {
	rc := s.runtime.CreateResourceContext(s.request, s.writer)
	first, err := ResourceOf[*payload](rc)
	s.Require().NoError(err)
	second, err := ResourceOf[*payload](rc)
	s.Require().NoError(err)

	s.Same(first, second)
	s.Equal("john", first.Name)
	s.Equal(1, s.created)

	_, err = ResourceOf[*payload](s.runtime.CreateResourceContext(s.request, s.writer))
	s.Require().NoError(err)
	s.Equal(2, s.created)
}

func (s *RuntimeSuite) TestRootResourcesArePerRequest() {
	rc := s.runtime.CreateResourceContext(s.request, s.writer)
	first, err := ResourceOf[*Messages](rc)
	s.Require().NoError(err)
	again, err := ResourceOf[*Messages](rc)
	s.Require().NoError(err)
	other, err := ResourceOf[*Messages](s.runtime.CreateResourceContext(s.request, s.writer))
	s.Require().NoError(err)

	s.Same(first, again)
	s.NotSame(first, other)
}

func (s *RuntimeSuite) TestUnknownTypes() {
	rc := s.runtime.CreateResourceContext(s.request, s.writer)
	_, err := rc.Resource(reflect.TypeFor[*Message]())
	s.ErrorIs(err, ErrUnknownResource)
}

func (s *RuntimeSuite) TestRouterDispatchesThroughRuntime() {
	rc := s.runtime.CreateResourceContext(s.request, s.writer)
	resp, err := s.runtime.Router().Dispatch(httptest.NewRequest(http.MethodGet, "/messages/hello", nil), rc)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.Status)
	s.Equal("hello", resp.Entity.Value)
	s.Equal(TextPlain, resp.MediaType)
}

func TestNewRuntimeValidation(t *testing.T) {
	_, err := NewRuntime(nil)
	assert.ErrorIs(t, err, ErrInvalidApplication)

	_, err = NewRuntime(NewApplication(messageClass))
	assert.ErrorIs(t, err, ErrInvalidApplication)

	_, err = NewRuntime(NewApplication(nil))
	assert.ErrorIs(t, err, ErrInvalidApplication)

	duplicate := MustClass[*Messages]("/messages", GET("/other", (*Messages).Ah))
	_, err = NewRuntime(NewApplication(messagesClass, duplicate))
	assert.NoError(t, err)
}

func TestPerRequestFactoryErrors(t *testing.T) {
	app := NewApplication(messagesClass)
	PerRequest(app, func(*http.Request) (*payload, error) { return nil, errBoom })
	rt, err := NewRuntime(app)
	require.NoError(t, err)

	_, err = ResourceOf[*payload](rt.CreateResourceContext(httptest.NewRequest(http.MethodGet, "/", nil), nil))
	assert.True(t, errors.Is(err, errBoom))
}

func TestResourceOfTypeMismatch(t *testing.T) {
	rc := stubContext{reflect.TypeFor[Service](): "not a service"}
	_, err := ResourceOf[Service](rc)
	assert.ErrorIs(t, err, ErrUnknownResource)
}
