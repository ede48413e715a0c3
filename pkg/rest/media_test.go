package rest

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMediaType(t *testing.T) {
	assert.Equal(t, ApplicationJSON, ParseMediaType("application/json; charset=utf-8"))
	assert.Equal(t, TextPlain, ParseMediaType("TEXT/Plain"))
	assert.Equal(t, MediaType(""), ParseMediaType(""))
	assert.Equal(t, MediaType(""), ParseMediaType("not a media type;;"))
}

func TestMediaTypeCompatible(t *testing.T) {
	tests := []struct {
		a, b MediaType
		want bool
	}{
		{TextPlain, TextPlain, true},
		{TextPlain, "text/*", true},
		{Wildcard, ApplicationJSON, true},
		{"", ApplicationJSON, true},
		{TextPlain, ApplicationJSON, false},
		{TextPlain, TextHTML, false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s~%s", tt.a, tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compatible(tt.b))
			assert.Equal(t, tt.want, tt.b.Compatible(tt.a))
		})
	}
}

func TestMediaTypeWithCharset(t *testing.T) {
	assert.Equal(t, "text/plain; charset=utf-8", TextPlain.WithCharset())
	assert.Equal(t, "application/json; charset=utf-8", ApplicationJSON.WithCharset())
	assert.Equal(t, "application/problem+json; charset=utf-8", MediaType("application/problem+json").WithCharset())
	assert.Equal(t, "application/octet-stream", ApplicationOctetStream.WithCharset())
}

func TestNegotiate(t *testing.T) {
	offers := []MediaType{TextPlain, ApplicationJSON}

	mt, ok := negotiate("application/json", offers)
	assert.True(t, ok)
	assert.Equal(t, ApplicationJSON, mt)

	mt, ok = negotiate("", offers)
	assert.True(t, ok)
	assert.Equal(t, TextPlain, mt)

	mt, ok = negotiate("text/*;q=0.2, application/*;q=0.9", offers)
	assert.True(t, ok)
	assert.Equal(t, ApplicationJSON, mt)

	_, ok = negotiate("image/png", offers)
	assert.False(t, ok)

	_, ok = negotiate("*/*", nil)
	assert.False(t, ok)

	_, ok = negotiate("*/*", []MediaType{"broken"})
	assert.False(t, ok)
}

func TestDefaultMediaType(t *testing.T) {
	assert.Equal(t, TextPlain, DefaultMediaType(reflect.TypeFor[string]()))
	assert.Equal(t, TextPlain, DefaultMediaType(reflect.TypeFor[[]byte]()))
	assert.Equal(t, TextPlain, DefaultMediaType(reflect.TypeFor[shout]()))
	assert.Equal(t, TextPlain, DefaultMediaType(nil))
	assert.Equal(t, ApplicationJSON, DefaultMediaType(reflect.TypeFor[payload]()))
	assert.Equal(t, ApplicationJSON, DefaultMediaType(reflect.TypeFor[[]string]()))
}
