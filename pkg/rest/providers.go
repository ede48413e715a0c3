package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"time"
)

// MessageBodyWriter writes entities of the types it supports.
type MessageBodyWriter interface {
	IsWriteable(t reflect.Type, mt MediaType) bool
	WriteTo(v any, t reflect.Type, mt MediaType, headers http.Header, w io.Writer) error
}

// MessageBodyReader reads request bodies into values of the types it supports.
type MessageBodyReader interface {
	IsReadable(t reflect.Type, mt MediaType) bool
	ReadFrom(t reflect.Type, mt MediaType, headers http.Header, r io.Reader) (any, error)
}

// ExceptionMapper turns an error into a response. Returning an error from
// ToResponse sends that error through mapping once more.
type ExceptionMapper interface {
	ToResponse(err error) (*Response, error)
}

// ExceptionMapperFunc adapts a function to ExceptionMapper.
type ExceptionMapperFunc func(err error) (*Response, error)

func (f ExceptionMapperFunc) ToResponse(err error) (*Response, error) {
	return f(err)
}

// HeaderDelegate renders a header value.
type HeaderDelegate interface {
	ToString(v any) string
}

// HeaderDelegateFunc adapts a function to HeaderDelegate.
type HeaderDelegateFunc func(v any) string

func (f HeaderDelegateFunc) ToString(v any) string {
	return f(v)
}

// Providers gives access to the registered extension points.
type Providers interface {
	MessageBodyWriter(t reflect.Type, mt MediaType) (MessageBodyWriter, bool)
	MessageBodyReader(t reflect.Type, mt MediaType) (MessageBodyReader, bool)
	ExceptionMapper(err error) ExceptionMapper
	HeaderDelegate(t reflect.Type) HeaderDelegate
}

// ProviderOption configures the providers of an application.
type ProviderOption func(*providers)

// WithWriter registers a writer. Writers registered later take precedence
// over the built-in ones.
func WithWriter(w MessageBodyWriter) ProviderOption {
	return func(p *providers) { p.writers = append([]MessageBodyWriter{w}, p.writers...) }
}

// WithReader registers a reader ahead of the built-in ones.
func WithReader(r MessageBodyReader) ProviderOption {
	return func(p *providers) { p.readers = append([]MessageBodyReader{r}, p.readers...) }
}

// WithHeaderDelegate registers a delegate for values of exactly type t.
func WithHeaderDelegate(t reflect.Type, d HeaderDelegate) ProviderOption {
	return func(p *providers) { p.delegates[t] = d }
}

// WithDefaultExceptionMapper replaces the mapper used when no registered
// mapper matches.
func WithDefaultExceptionMapper(m ExceptionMapper) ProviderOption {
	return func(p *providers) { p.fallback = m }
}

// MapError registers m for errors that unwrap to E. Mappers are consulted in
// registration order.
func MapError[E error](m ExceptionMapper) ProviderOption {
	return func(p *providers) {
		p.mappers = append(p.mappers, errorMapping{
			matches: func(err error) bool {
				var target E
				return errors.As(err, &target)
			},
			mapper: m,
		})
	}
}

// MapErrorIs registers m for errors matching target with errors.Is.
func MapErrorIs(target error, m ExceptionMapper) ProviderOption {
	return func(p *providers) {
		p.mappers = append(p.mappers, errorMapping{
			matches: func(err error) bool { return errors.Is(err, target) },
			mapper:  m,
		})
	}
}

type errorMapping struct {
	matches func(error) bool
	mapper  ExceptionMapper
}

type providers struct {
	writers   []MessageBodyWriter
	readers   []MessageBodyReader
	mappers   []errorMapping
	fallback  ExceptionMapper
	delegates map[reflect.Type]HeaderDelegate
}

// NewProviders creates providers with the built-in text and JSON writers and
// readers, the built-in header delegates and a fallback mapper answering 500.
func NewProviders(opts ...ProviderOption) Providers {
	p := &providers{
		writers:  []MessageBodyWriter{TextWriter{}, JSONWriter{}},
		readers:  []MessageBodyReader{TextReader{}, JSONReader{}},
		fallback: ExceptionMapperFunc(internalServerError),
		delegates: map[reflect.Type]HeaderDelegate{
			reflect.TypeFor[*http.Cookie](): HeaderDelegateFunc(cookieHeader),
			reflect.TypeFor[http.Cookie]():  HeaderDelegateFunc(cookieHeader),
			reflect.TypeFor[time.Time]():    HeaderDelegateFunc(timeHeader),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *providers) MessageBodyWriter(t reflect.Type, mt MediaType) (MessageBodyWriter, bool) {
	for _, w := range p.writers {
		if w.IsWriteable(t, mt) {
			return w, true
		}
	}
	return nil, false
}

func (p *providers) MessageBodyReader(t reflect.Type, mt MediaType) (MessageBodyReader, bool) {
	for _, r := range p.readers {
		if r.IsReadable(t, mt) {
			return r, true
		}
	}
	return nil, false
}

func (p *providers) ExceptionMapper(err error) ExceptionMapper {
	for _, m := range p.mappers {
		if m.matches(err) {
			return m.mapper
		}
	}
	return p.fallback
}

func (p *providers) HeaderDelegate(t reflect.Type) HeaderDelegate {
	if d, ok := p.delegates[t]; ok {
		return d
	}
	return HeaderDelegateFunc(defaultHeader)
}

func internalServerError(error) (*Response, error) {
	return NewResponse(http.StatusInternalServerError).
		WithEntity(http.StatusText(http.StatusInternalServerError)).
		WithType(TextPlain), nil
}

func cookieHeader(v any) string {
	switch c := v.(type) {
	case *http.Cookie:
		return c.String()
	case http.Cookie:
		return c.String()
	}
	return defaultHeader(v)
}

func timeHeader(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(http.TimeFormat)
	}
	return defaultHeader(v)
}

func defaultHeader(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}

// TextWriter writes strings, byte slices and fmt.Stringer values as text.
type TextWriter struct{}

func (TextWriter) IsWriteable(t reflect.Type, mt MediaType) bool {
	if t == nil || mt.IsJSON() {
		return false
	}
	return t.Kind() == reflect.String || t == bytesType || t.Implements(stringerType)
}

func (TextWriter) WriteTo(v any, _ reflect.Type, _ MediaType, _ http.Header, w io.Writer) error {
	var err error
	switch s := v.(type) {
	case []byte:
		_, err = w.Write(s)
	case fmt.Stringer:
		_, err = io.WriteString(w, s.String())
	default:
		_, err = io.WriteString(w, reflect.ValueOf(v).String())
	}
	return err
}

// JSONWriter writes any value as JSON for JSON media types.
type JSONWriter struct{}

func (JSONWriter) IsWriteable(t reflect.Type, mt MediaType) bool {
	return t != nil && (mt == "" || mt.IsJSON())
}

func (JSONWriter) WriteTo(v any, _ reflect.Type, _ MediaType, _ http.Header, w io.Writer) error {
	return json.NewEncoder(w).Encode(v)
}

// TextReader reads bodies into string or []byte parameters.
type TextReader struct{}

func (TextReader) IsReadable(t reflect.Type, mt MediaType) bool {
	if mt.IsJSON() {
		return false
	}
	return t.Kind() == reflect.String || t == bytesType
}

func (TextReader) ReadFrom(t reflect.Type, _ MediaType, _ http.Header, r io.Reader) (any, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if t == bytesType {
		return body, nil
	}
	return reflect.ValueOf(string(body)).Convert(t).Interface(), nil
}

// JSONReader decodes JSON bodies into any parameter type.
type JSONReader struct{}

func (JSONReader) IsReadable(_ reflect.Type, mt MediaType) bool {
	return mt == "" || mt.IsJSON()
}

func (JSONReader) ReadFrom(t reflect.Type, _ MediaType, _ http.Header, r io.Reader) (any, error) {
	ptr := reflect.New(t)
	if err := json.NewDecoder(r).Decode(ptr.Interface()); err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}
	return ptr.Elem().Interface(), nil
}
