package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// GenericEntity is a response entity together with the type it should be
// written as. The type is the declared return type of the resource method,
// which may be an interface or a slice type the value alone cannot reveal.
type GenericEntity struct {
	Value any
	Type  reflect.Type
}

// NewEntity wraps v using its dynamic type.
func NewEntity(v any) *GenericEntity {
	return &GenericEntity{Value: v, Type: reflect.TypeOf(v)}
}

// EntityOf wraps v using the static type T.
func EntityOf[T any](v T) *GenericEntity {
	return &GenericEntity{Value: v, Type: reflect.TypeFor[T]()}
}

// Headers holds outbound header values before they are rendered to strings.
type Headers map[string][]any

// Response is an outbound response: status, headers, entity and the media
// type the entity is written as.
type Response struct {
	Status    int
	Headers   Headers
	Entity    *GenericEntity
	MediaType MediaType

	unmatched bool
}

// NewResponse creates an empty response with the given status.
func NewResponse(status int) *Response {
	return &Response{Status: status, Headers: Headers{}}
}

// OK creates a 200 response carrying entity. entity may already be a
// *GenericEntity.
func OK(entity any) *Response {
	return NewResponse(http.StatusOK).WithEntity(entity)
}

// NoContent creates a 204 response.
func NoContent() *Response {
	return NewResponse(http.StatusNoContent)
}

// Unmatched creates the 404 response a router answers when no resource method
// matches the request.
func Unmatched() *Response {
	resp := NewResponse(http.StatusNotFound)
	resp.unmatched = true
	return resp
}

// IsUnmatched reports whether r was created by Unmatched.
func (r *Response) IsUnmatched() bool {
	return r != nil && r.unmatched
}

// Created creates a 201 response with a Location header.
func Created(location string) *Response {
	return NewResponse(http.StatusCreated).WithHeader("Location", location)
}

// WithHeader appends values to the named header.
func (r *Response) WithHeader(name string, values ...any) *Response {
	if r.Headers == nil {
		r.Headers = Headers{}
	}
	key := http.CanonicalHeaderKey(name)
	r.Headers[key] = append(r.Headers[key], values...)
	return r
}

// WithEntity sets the entity. Passing nil clears it.
func (r *Response) WithEntity(entity any) *Response {
	switch e := entity.(type) {
	case nil:
		r.Entity = nil
	case *GenericEntity:
		r.Entity = e
	default:
		r.Entity = NewEntity(entity)
	}
	return r
}

// WithType sets the media type of the entity.
func (r *Response) WithType(mt MediaType) *Response {
	r.MediaType = mt
	return r
}

// WebApplicationError is an error that already knows the response it should
// produce. Resource methods, locators and exception mappers return it to
// short-circuit dispatch.
type WebApplicationError struct {
	Response *Response
	Cause    error
}

// NewWebApplicationError creates an error producing an empty response with
// the given status.
func NewWebApplicationError(status int) *WebApplicationError {
	return &WebApplicationError{Response: NewResponse(status)}
}

// ErrorResponse creates an error producing resp.
func ErrorResponse(resp *Response) *WebApplicationError {
	return &WebApplicationError{Response: resp}
}

// WithCause attaches the underlying error.
func (e *WebApplicationError) WithCause(err error) *WebApplicationError {
	e.Cause = err
	return e
}

// Status returns the status of the carried response.
func (e *WebApplicationError) Status() int {
	if e.Response == nil {
		return http.StatusInternalServerError
	}
	return e.Response.Status
}

func (e *WebApplicationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("web application error: status %d: %v", e.Status(), e.Cause)
	}
	return fmt.Sprintf("web application error: status %d", e.Status())
}

func (e *WebApplicationError) Unwrap() error {
	return e.Cause
}

// AsWebApplicationError unwraps err looking for a WebApplicationError.
func AsWebApplicationError(err error) (*WebApplicationError, bool) {
	var wae *WebApplicationError
	if errors.As(err, &wae) && wae != nil {
		return wae, true
	}
	return nil, false
}
