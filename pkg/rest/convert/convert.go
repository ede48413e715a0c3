// Package convert turns request strings (path, query and header values) into
// Go values of a requested type.
//
// Conversion is attempted in order:
//  1. primitive kinds (string, bool, signed and unsigned integers, floats) and
//     slices of them, which take every value instead of the first one;
//  2. types implementing encoding.TextUnmarshaler;
//  3. factory functions registered with Register, keyed by the exact type.
package convert

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"sync"
)

// ErrNoConverter is returned when no conversion exists for the target type.
var ErrNoConverter = errors.New("no converter for type")

// Factory builds a value of a registered type from its string form.
type Factory func(value string) (any, error)

var (
	mu        sync.RWMutex
	factories = map[reflect.Type]Factory{}
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Register installs a factory converter for T, replacing any previous one.
func Register[T any](fn func(string) (T, error)) {
	RegisterType(reflect.TypeFor[T](), func(s string) (any, error) {
		return fn(s)
	})
}

// RegisterType installs a factory converter for t.
func RegisterType(t reflect.Type, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[t] = fn
}

func factoryFor(t reflect.Type) (Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := factories[t]
	return fn, ok
}

// Supported reports whether values of t can be produced from strings.
func Supported(t reflect.Type) bool {
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		return Supported(t.Elem())
	}
	if isPrimitive(t.Kind()) {
		return true
	}
	if reflect.PointerTo(t).Implements(textUnmarshalerType) || t.Implements(textUnmarshalerType) {
		return true
	}
	_, ok := factoryFor(t)
	return ok
}

// Convert converts values into a value of type t. Slice types consume every
// value; other types consume the first one. An empty values slice yields the
// zero value of t.
func Convert(values []string, t reflect.Type) (reflect.Value, error) {
	if t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8 {
		out := reflect.MakeSlice(t, 0, len(values))
		for _, v := range values {
			elem, err := One(v, t.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			out = reflect.Append(out, elem)
		}
		return out, nil
	}
	if len(values) == 0 {
		return reflect.Zero(t), nil
	}
	return One(values[0], t)
}

// One converts a single string into a value of type t.
func One(value string, t reflect.Type) (reflect.Value, error) {
	if isPrimitive(t.Kind()) {
		return primitive(value, t)
	}
	if v, ok, err := text(value, t); ok {
		return v, err
	}
	if fn, ok := factoryFor(t); ok {
		out, err := fn(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		return reflect.ValueOf(out), nil
	}
	return reflect.Value{}, fmt.Errorf("%w %s", ErrNoConverter, t)
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func primitive(value string, t reflect.Type) (reflect.Value, error) {
	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, t.Bits())
		if err != nil {
			return reflect.Value{}, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		out.SetFloat(f)
	}
	return out, nil
}

// text handles encoding.TextUnmarshaler implementations, either on T itself
// when T is a pointer type or on *T.
func text(value string, t reflect.Type) (reflect.Value, bool, error) {
	switch {
	case t.Kind() == reflect.Pointer && t.Implements(textUnmarshalerType):
		ptr := reflect.New(t.Elem())
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value)); err != nil {
			return reflect.Value{}, true, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		return ptr, true, nil
	case reflect.PointerTo(t).Implements(textUnmarshalerType):
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(value)); err != nil {
			return reflect.Value{}, true, fmt.Errorf("convert %q to %s: %w", value, t, err)
		}
		return ptr.Elem(), true, nil
	}
	return reflect.Value{}, false, nil
}
