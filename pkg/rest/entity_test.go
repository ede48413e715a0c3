package rest_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kkutopiaa/tdd-restful-service/pkg/rest"
	"github.com/kkutopiaa/tdd-restful-service/pkg/rest/mocks"
)

type signup struct{}

func (*signup) Submit(form string) string { return "submitted " + form }

var signupClass = rest.MustSubClass[*signup](
	rest.POST("", (*signup).Submit, rest.Entity()).Consumes(formMediaType),
)

const formMediaType rest.MediaType = "application/x-www-form-urlencoded"

type entityDeps struct {
	reader  *mocks.MockMessageBodyReader
	builder *mocks.MockURIInfoBuilder
	rc      *mocks.MockResourceContext
}

func newEntityDeps(t *testing.T, r *http.Request) *entityDeps {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockMessageBodyReader(ctrl)
	providers := mocks.NewMockProviders(ctrl)
	builder := mocks.NewMockURIInfoBuilder(ctrl)
	rc := mocks.NewMockResourceContext(ctrl)

	builder.EXPECT().LastMatchedResource().Return(&signup{})
	builder.EXPECT().CreateURIInfo().Return(&rest.URIInfo{})
	builder.EXPECT().Request().Return(r).AnyTimes()
	rc.EXPECT().Resource(reflect.TypeFor[rest.Providers]()).Return(providers, nil)
	providers.EXPECT().MessageBodyReader(reflect.TypeFor[string](), formMediaType).Return(reader, true)
	return &entityDeps{reader: reader, builder: builder, rc: rc}
}

func postForm(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(body))
	r.Header.Set("Content-Type", string(formMediaType)+"; charset=utf-8")
	return r
}

func TestEntityReadThroughProviders(t *testing.T) {
	method := rest.MethodsOf(signupClass)[0]

	t.Run("reader value is passed to the method", func(t *testing.T) {
		r := postForm("name=john")
		deps := newEntityDeps(t, r)
		deps.reader.EXPECT().ReadFrom(reflect.TypeFor[string](), formMediaType, r.Header, gomock.Any()).
			DoAndReturn(func(_ reflect.Type, _ rest.MediaType, _ http.Header, body io.Reader) (any, error) {
				raw, err := io.ReadAll(body)
				return string(raw), err
			})

		entity, err := method.Call(deps.rc, deps.builder)

		require.NoError(t, err)
		assert.Equal(t, "submitted name=john", entity.Value)
	})

	t.Run("reader failure is a bad request", func(t *testing.T) {
		r := postForm("name=%zz")
		deps := newEntityDeps(t, r)
		deps.reader.EXPECT().ReadFrom(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errBoom)

		_, err := method.Call(deps.rc, deps.builder)

		wae, ok := rest.AsWebApplicationError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, wae.Status())
		assert.ErrorIs(t, err, errBoom)
	})
}
