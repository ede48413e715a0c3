package convert

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mode has no primitive kind and no UnmarshalText, so only a registered
// factory can build it.
type mode struct{ name string }

var (
	modePrimitive   = mode{"primitive"}
	modeConstructor = mode{"constructor"}
	modeFactory     = mode{"factory"}
)

func parseMode(s string) (mode, error) {
	for _, m := range []mode{modePrimitive, modeConstructor, modeFactory} {
		if m.name == s {
			return m, nil
		}
	}
	return mode{}, errors.New("unknown mode")
}

type plain struct{}

func TestConvertPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  any
	}{
		{"string", "string", "string"},
		{"float64", "3.14", 3.14},
		{"float32", "1.1", float32(1.1)},
		{"int64", "2", int64(2)},
		{"int", "1", 1},
		{"int16", "128", int16(128)},
		{"int8", "127", int8(127)},
		{"uint", "7", uint(7)},
		{"bool upper case", "TRUE", true},
		{"bool lower case", "false", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert([]string{tt.value}, reflect.TypeOf(tt.want))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestConvertUsesFirstValue(t *testing.T) {
	got, err := Convert([]string{"1", "2"}, reflect.TypeFor[int]())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Interface())
}

func TestConvertEmptyValuesYieldZero(t *testing.T) {
	got, err := Convert(nil, reflect.TypeFor[int]())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Interface())
}

func TestConvertSlices(t *testing.T) {
	got, err := Convert([]string{"1", "2", "3"}, reflect.TypeFor[[]int]())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.Interface())

	_, err = Convert([]string{"1", "x"}, reflect.TypeFor[[]int]())
	assert.Error(t, err)
}

func TestConvertTextUnmarshaler(t *testing.T) {
	t.Run("value type", func(t *testing.T) {
		got, err := Convert([]string{"12345"}, reflect.TypeFor[decimal.Decimal]())
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12345").Equal(got.Interface().(decimal.Decimal)))
	})

	t.Run("pointer type", func(t *testing.T) {
		got, err := Convert([]string{"12.5"}, reflect.TypeFor[*decimal.Decimal]())
		require.NoError(t, err)
		assert.Equal(t, "12.5", got.Interface().(*decimal.Decimal).String())
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := Convert([]string{"not-a-number"}, reflect.TypeFor[decimal.Decimal]())
		assert.Error(t, err)
	})
}

func TestConvertFactory(t *testing.T) {
	Register(parseMode)

	got, err := Convert([]string{"factory"}, reflect.TypeFor[mode]())
	require.NoError(t, err)
	assert.Equal(t, modeFactory, got.Interface())

	_, err = Convert([]string{"other"}, reflect.TypeFor[mode]())
	assert.Error(t, err)
}

func TestConvertFailures(t *testing.T) {
	_, err := Convert([]string{"abc"}, reflect.TypeFor[int]())
	assert.Error(t, err)

	_, err = Convert([]string{"300"}, reflect.TypeFor[int8]())
	assert.Error(t, err)

	_, err = Convert([]string{"x"}, reflect.TypeFor[plain]())
	assert.ErrorIs(t, err, ErrNoConverter)
}

func TestSupported(t *testing.T) {
	Register(parseMode)

	assert.True(t, Supported(reflect.TypeFor[string]()))
	assert.True(t, Supported(reflect.TypeFor[[]bool]()))
	assert.True(t, Supported(reflect.TypeFor[decimal.Decimal]()))
	assert.True(t, Supported(reflect.TypeFor[mode]()))
	assert.False(t, Supported(reflect.TypeFor[plain]()))
	assert.False(t, Supported(reflect.TypeFor[[]plain]()))
}
