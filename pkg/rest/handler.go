package rest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kkutopiaa/tdd-restful-service/pkg/requestcontext"
)

const tracerName = "github.com/kkutopiaa/tdd-restful-service/pkg/rest"

var (
	// ErrPanic wraps a value recovered from a panicking resource.
	ErrPanic = errors.New("resource panicked")
	// ErrNoWriter is returned when no MessageBodyWriter accepts an entity.
	ErrNoWriter = errors.New("no message body writer")
)

// MetricsRecorder observes completed dispatches.
type MetricsRecorder interface {
	ObserveDispatch(verb string, status int, duration time.Duration)
}

// UnmatchedRecorder is implemented by a MetricsRecorder that also counts
// requests no resource method matched.
type UnmatchedRecorder interface {
	ObserveUnmatched()
}

// Handler serves a Runtime over net/http.
type Handler struct {
	runtime Runtime
	logger  *slog.Logger
	metrics MetricsRecorder
	tracer  trace.Tracer
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) { h.logger = logger }
}

// WithMetrics records every dispatch on m.
func WithMetrics(m MetricsRecorder) Option {
	return func(h *Handler) { h.metrics = m }
}

// WithTracer sets the tracer. The default is the global otel tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(h *Handler) { h.tracer = tracer }
}

// NewHandler creates a handler for runtime.
func NewHandler(runtime Runtime, opts ...Option) *Handler {
	h := &Handler{
		runtime: runtime,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := h.tracer.Start(r.Context(), "rest.dispatch",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(
			attribute.String("http.request.method", r.Method),
			attribute.String("url.path", r.URL.Path),
		),
	)
	defer span.End()
	r = r.WithContext(ctx)

	resp := h.dispatch(w, r)
	status := h.respond(w, r, resp)

	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if status >= http.StatusInternalServerError {
		span.SetStatus(codes.Error, http.StatusText(status))
	}
	if h.metrics != nil {
		h.metrics.ObserveDispatch(r.Method, status, time.Since(start))
		if u, ok := h.metrics.(UnmatchedRecorder); ok && resp.IsUnmatched() {
			u.ObserveUnmatched()
		}
	}
}

func (h *Handler) dispatch(w http.ResponseWriter, r *http.Request) *Response {
	resp, err := h.route(w, r)
	if err != nil {
		return h.mapError(r.Context(), err)
	}
	if resp == nil {
		return NoContent()
	}
	return resp
}

func (h *Handler) route(w http.ResponseWriter, r *http.Request) (resp *Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	return h.runtime.Router().Dispatch(r, h.runtime.CreateResourceContext(r, w))
}

// mapError turns err into a response. A WebApplicationError carries its own
// response; anything else goes through the exception mapper, and a failing
// mapper has its own error mapped once more.
func (h *Handler) mapError(ctx context.Context, err error) *Response {
	requestID := requestcontext.RequestID(ctx)
	if wae, ok := AsWebApplicationError(err); ok && wae.Response != nil {
		h.logger.DebugContext(ctx, "web application error",
			"request_id", requestID,
			"status", wae.Status(),
			"error", err,
		)
		return wae.Response
	}

	h.logger.ErrorContext(ctx, "dispatch failed",
		"request_id", requestID,
		"error", err,
	)
	resp, mapErr := h.toResponse(err)
	if mapErr == nil {
		return resp
	}
	if wae, ok := AsWebApplicationError(mapErr); ok && wae.Response != nil {
		return wae.Response
	}
	resp, mapErr = h.toResponse(mapErr)
	if mapErr == nil {
		return resp
	}
	h.logger.ErrorContext(ctx, "exception mapping failed",
		"request_id", requestID,
		"error", mapErr,
	)
	return NewResponse(http.StatusInternalServerError)
}

func (h *Handler) toResponse(err error) (resp *Response, mapErr error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp, mapErr = nil, fmt.Errorf("%w: %v", ErrPanic, rec)
		}
	}()
	mapper := h.runtime.Providers().ExceptionMapper(err)
	if mapper == nil {
		return nil, err
	}
	resp, mapErr = mapper.ToResponse(err)
	if mapErr == nil && resp == nil {
		mapErr = fmt.Errorf("exception mapper returned no response for %w", err)
	}
	return resp, mapErr
}

// respond writes resp and returns the status actually sent.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, resp *Response) int {
	header, body, err := h.render(resp)
	if err != nil {
		resp = h.mapError(r.Context(), err)
		header, body, err = h.render(resp)
		if err != nil {
			h.logger.ErrorContext(r.Context(), "write response failed",
				"request_id", requestcontext.RequestID(r.Context()),
				"error", err,
			)
			w.WriteHeader(http.StatusInternalServerError)
			return http.StatusInternalServerError
		}
	}

	for name, values := range header {
		for _, v := range values {
			w.Header().Add(name, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if body != nil && r.Method != http.MethodHead {
		if _, err := w.Write(body.Bytes()); err != nil {
			h.logger.DebugContext(r.Context(), "write body failed",
				"request_id", requestcontext.RequestID(r.Context()),
				"error", err,
			)
		}
	}
	return status
}

// render converts headers through header delegates and buffers the entity
// through a message body writer, so a failing writer can still be answered
// with a different status.
func (h *Handler) render(resp *Response) (http.Header, *bytes.Buffer, error) {
	providers := h.runtime.Providers()
	header := http.Header{}
	for name, values := range resp.Headers {
		for _, v := range values {
			if v == nil {
				continue
			}
			header.Add(name, providers.HeaderDelegate(reflect.TypeOf(v)).ToString(v))
		}
	}
	if resp.Entity == nil || resp.Entity.Value == nil {
		return header, nil, nil
	}

	entity := resp.Entity
	typ := entity.Type
	if typ == nil {
		typ = reflect.TypeOf(entity.Value)
	}
	mt := resp.MediaType
	if mt == "" {
		mt = DefaultMediaType(typ)
	}
	writer, ok := providers.MessageBodyWriter(typ, mt)
	if !ok {
		return nil, nil, fmt.Errorf("%w for %s as %q", ErrNoWriter, typ, mt)
	}
	var body bytes.Buffer
	if err := writer.WriteTo(entity.Value, typ, mt, header, &body); err != nil {
		return nil, nil, fmt.Errorf("write %s as %q: %w", typ, mt, err)
	}
	if header.Get("Content-Type") == "" {
		header.Set("Content-Type", mt.WithCharset())
	}
	return header, &body, nil
}
