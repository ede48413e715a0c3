package rest

import (
	"net/http"
	"net/url"
	"strings"
)

// URIInfo describes the request URI and what has been matched so far.
type URIInfo struct {
	Path            string
	RequestURI      *url.URL
	PathParameters  url.Values
	QueryParameters url.Values
	// MatchedURIs lists the matched paths, the most recently matched first.
	MatchedURIs []string
	// MatchedResources lists the matched resource instances, the most recently
	// matched first.
	MatchedResources []any
}

// URIInfoBuilder collects matching state while a request is routed.
type URIInfoBuilder interface {
	LastMatchedResource() any
	AddMatchedResource(resource any)
	AddMatchedPathParameters(params map[string]string)
	AddMatchedURI(matched string)
	CreateURIInfo() *URIInfo
	Request() *http.Request
}

type uriInfoBuilder struct {
	request    *http.Request
	resources  []any
	uris       []string
	pathParams url.Values
}

// NewURIInfoBuilder creates a builder for r.
func NewURIInfoBuilder(r *http.Request) URIInfoBuilder {
	return &uriInfoBuilder{request: r, pathParams: url.Values{}}
}

func (b *uriInfoBuilder) Request() *http.Request {
	return b.request
}

func (b *uriInfoBuilder) LastMatchedResource() any {
	if len(b.resources) == 0 {
		return nil
	}
	return b.resources[len(b.resources)-1]
}

func (b *uriInfoBuilder) AddMatchedResource(resource any) {
	b.resources = append(b.resources, resource)
}

// AddMatchedPathParameters records captured variables. When a name is
// captured again by a nested template the newer value is reported first.
func (b *uriInfoBuilder) AddMatchedPathParameters(params map[string]string) {
	for name, value := range params {
		b.pathParams[name] = append([]string{value}, b.pathParams[name]...)
	}
}

// AddMatchedURI appends a matched segment. Matched URIs are cumulative, so
// the entry recorded is the full path matched so far.
func (b *uriInfoBuilder) AddMatchedURI(matched string) {
	if n := len(b.uris); n > 0 {
		matched = strings.TrimSuffix(b.uris[n-1], "/") + matched
	}
	b.uris = append(b.uris, matched)
}

func (b *uriInfoBuilder) CreateURIInfo() *URIInfo {
	info := &URIInfo{
		PathParameters:   url.Values{},
		QueryParameters:  url.Values{},
		MatchedURIs:      reversed(b.uris),
		MatchedResources: reversed(b.resources),
	}
	for k, v := range b.pathParams {
		info.PathParameters[k] = append([]string(nil), v...)
	}
	if b.request != nil && b.request.URL != nil {
		info.Path = b.request.URL.Path
		info.RequestURI = b.request.URL
		info.QueryParameters = b.request.URL.Query()
	}
	return info
}

func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}
