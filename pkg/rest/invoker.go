package rest

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"strings"

	"github.com/kkutopiaa/tdd-restful-service/pkg/rest/convert"
)

var (
	errorType           = reflect.TypeFor[error]()
	contextType         = reflect.TypeFor[context.Context]()
	requestType         = reflect.TypeFor[*http.Request]()
	headerType          = reflect.TypeFor[http.Header]()
	uriInfoType         = reflect.TypeFor[*URIInfo]()
	uriInfoBuilderType  = reflect.TypeFor[URIInfoBuilder]()
	resourceContextType = reflect.TypeFor[ResourceContext]()
	providersType       = reflect.TypeFor[Providers]()
	responseType        = reflect.TypeFor[*Response]()
)

type boundParam struct {
	spec ParamSpec
	typ  reflect.Type
}

// invoker calls a resource function with the last matched resource as its
// receiver and injected request values as the remaining arguments.
type invoker struct {
	fn     reflect.Value
	recv   reflect.Type
	params []boundParam
	out    reflect.Type
	hasErr bool
	name   string
}

func newInvoker(fn any, recv reflect.Type, specs []ParamSpec) (*invoker, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T is not a function", ErrInvalidMethod, fn)
	}
	t := v.Type()
	name := funcName(v, recv)
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: %s is variadic", ErrInvalidMethod, name)
	}
	if t.NumIn() == 0 || !recv.AssignableTo(t.In(0)) {
		return nil, fmt.Errorf("%w: %s does not accept %s as its first parameter", ErrInvalidMethod, name, recv)
	}
	if len(specs) > t.NumIn()-1 {
		return nil, fmt.Errorf("%w: %s has %d parameters, %d bound", ErrInvalidMethod, name, t.NumIn()-1, len(specs))
	}

	inv := &invoker{fn: v, recv: t.In(0), name: name}
	for i := 1; i < t.NumIn(); i++ {
		spec := Context()
		if i-1 < len(specs) {
			spec = specs[i-1]
		}
		pt := t.In(i)
		switch spec.source {
		case SourcePath, SourceQuery, SourceHeader:
			if !convert.Supported(pt) {
				return nil, fmt.Errorf("%w: %s %s parameter %q: no converter for %s",
					ErrInvalidMethod, name, spec.source, spec.name, pt)
			}
		}
		inv.params = append(inv.params, boundParam{spec: spec, typ: pt})
	}

	switch t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) == errorType {
			inv.hasErr = true
		} else {
			inv.out = t.Out(0)
		}
	case 2:
		if t.Out(1) != errorType {
			return nil, fmt.Errorf("%w: %s second result must be error", ErrInvalidMethod, name)
		}
		inv.out, inv.hasErr = t.Out(0), true
	default:
		return nil, fmt.Errorf("%w: %s returns too many results", ErrInvalidMethod, name)
	}
	return inv, nil
}

// invoke returns the non-error result, which is the zero Value when the
// function has none.
func (inv *invoker) invoke(rc ResourceContext, b URIInfoBuilder) (reflect.Value, error) {
	resource := b.LastMatchedResource()
	rv := reflect.ValueOf(resource)
	if !rv.IsValid() || !rv.Type().AssignableTo(inv.recv) {
		return reflect.Value{}, fmt.Errorf("%s: resource %T is not a %s", inv.name, resource, inv.recv)
	}

	info := b.CreateURIInfo()
	args := make([]reflect.Value, 0, len(inv.params)+1)
	args = append(args, rv)
	for _, p := range inv.params {
		arg, err := inject(p, rc, b, info)
		if err != nil {
			return reflect.Value{}, err
		}
		args = append(args, arg)
	}

	out := inv.fn.Call(args)
	if inv.hasErr {
		if errv := out[len(out)-1]; !errv.IsNil() {
			return reflect.Value{}, errv.Interface().(error)
		}
	}
	if inv.out == nil {
		return reflect.Value{}, nil
	}
	return out[0], nil
}

func inject(p boundParam, rc ResourceContext, b URIInfoBuilder, info *URIInfo) (reflect.Value, error) {
	switch p.spec.source {
	case SourcePath:
		return convertParam(p, info.PathParameters[p.spec.name], http.StatusNotFound)
	case SourceQuery:
		return convertParam(p, info.QueryParameters[p.spec.name], http.StatusNotFound)
	case SourceHeader:
		var values []string
		if r := b.Request(); r != nil {
			values = r.Header.Values(p.spec.name)
		}
		return convertParam(p, values, http.StatusBadRequest)
	case SourceEntity:
		return readEntity(p.typ, rc, b.Request())
	}
	return injectContext(p.typ, rc, b, info)
}

func convertParam(p boundParam, values []string, status int) (reflect.Value, error) {
	if len(values) == 0 && p.spec.hasDefault {
		values = []string{p.spec.def}
	}
	v, err := convert.Convert(values, p.typ)
	if err != nil {
		return reflect.Value{}, NewWebApplicationError(status).
			WithCause(fmt.Errorf("%s parameter %q: %w", p.spec.source, p.spec.name, err))
	}
	return v, nil
}

func readEntity(t reflect.Type, rc ResourceContext, r *http.Request) (reflect.Value, error) {
	if r == nil {
		return reflect.Value{}, NewWebApplicationError(http.StatusBadRequest).
			WithCause(fmt.Errorf("no request to read %s from", t))
	}
	p, err := ResourceOf[Providers](rc)
	if err != nil {
		return reflect.Value{}, err
	}
	mt := ParseMediaType(r.Header.Get("Content-Type"))
	reader, ok := p.MessageBodyReader(t, mt)
	if !ok {
		return reflect.Value{}, NewWebApplicationError(http.StatusUnsupportedMediaType).
			WithCause(fmt.Errorf("no reader for %s as %q", t, mt))
	}
	body := r.Body
	if body == nil {
		body = http.NoBody
	}
	v, err := reader.ReadFrom(t, mt, r.Header, body)
	if err != nil {
		return reflect.Value{}, NewWebApplicationError(http.StatusBadRequest).WithCause(err)
	}
	if v == nil {
		return reflect.Zero(t), nil
	}
	return reflect.ValueOf(v), nil
}

func injectContext(t reflect.Type, rc ResourceContext, b URIInfoBuilder, info *URIInfo) (reflect.Value, error) {
	r := b.Request()
	switch t {
	case resourceContextType:
		return reflect.ValueOf(&rc).Elem(), nil
	case uriInfoType:
		return reflect.ValueOf(info), nil
	case uriInfoBuilderType:
		return reflect.ValueOf(&b).Elem(), nil
	case requestType:
		return reflect.ValueOf(r), nil
	case headerType:
		if r == nil {
			return reflect.Zero(t), nil
		}
		return reflect.ValueOf(r.Header), nil
	case contextType:
		ctx := context.Background()
		if r != nil {
			ctx = r.Context()
		}
		return reflect.ValueOf(&ctx).Elem(), nil
	}
	v, err := rc.Resource(t)
	if err != nil {
		return reflect.Value{}, err
	}
	if v == nil {
		return reflect.Zero(t), nil
	}
	if !reflect.TypeOf(v).AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("%w: got %T for %s", ErrUnknownResource, v, t)
	}
	return reflect.ValueOf(v), nil
}

// funcName renders fn as "Type.Method" for method expressions and falls back
// to the bare function name otherwise.
func funcName(fn reflect.Value, recv reflect.Type) string {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return simpleTypeName(recv) + ".func"
	}
	name := f.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if _, rest, ok := strings.Cut(name, "."); ok {
		name = rest
	}
	name = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(name)
	return strings.TrimSuffix(name, "-fm")
}
