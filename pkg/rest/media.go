package rest

import (
	"fmt"
	"mime"
	"reflect"
	"strings"

	"github.com/munnerz/goautoneg"
)

// MediaType is a "type/subtype" media type without parameters.
type MediaType string

const (
	Wildcard               MediaType = "*/*"
	TextPlain              MediaType = "text/plain"
	TextHTML               MediaType = "text/html"
	ApplicationJSON        MediaType = "application/json"
	ApplicationOctetStream MediaType = "application/octet-stream"
)

// ParseMediaType parses a Content-Type style value, dropping parameters. It
// returns the empty media type for empty or malformed input.
func ParseMediaType(value string) MediaType {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(value)
	if err != nil {
		return ""
	}
	return MediaType(mt)
}

func (m MediaType) String() string {
	return string(m)
}

func (m MediaType) parts() (string, string) {
	typ, sub, found := strings.Cut(string(m), "/")
	if !found {
		return typ, "*"
	}
	return typ, sub
}

// Compatible reports whether m and o can describe the same content, treating
// "*" on either side as a wildcard. The empty media type is compatible with
// everything.
func (m MediaType) Compatible(o MediaType) bool {
	if m == "" || o == "" {
		return true
	}
	mt, ms := m.parts()
	ot, os := o.parts()
	if mt != "*" && ot != "*" && !strings.EqualFold(mt, ot) {
		return false
	}
	return ms == "*" || os == "*" || strings.EqualFold(ms, os)
}

// IsJSON reports whether m is application/json or a +json suffix type.
func (m MediaType) IsJSON() bool {
	_, sub := m.parts()
	return strings.EqualFold(sub, "json") || strings.HasSuffix(strings.ToLower(sub), "+json")
}

// WithCharset renders m as a Content-Type header value. Text types get a
// UTF-8 charset parameter.
func (m MediaType) WithCharset() string {
	typ, _ := m.parts()
	if strings.EqualFold(typ, "text") || m.IsJSON() {
		return mime.FormatMediaType(string(m), map[string]string{"charset": "utf-8"})
	}
	return string(m)
}

// negotiate picks the offer that best satisfies an Accept header. An empty
// header accepts anything.
func negotiate(accept string, offers []MediaType) (MediaType, bool) {
	if len(offers) == 0 {
		return "", false
	}
	if strings.TrimSpace(accept) == "" {
		accept = string(Wildcard)
	}
	alternatives := make([]string, 0, len(offers))
	for _, o := range offers {
		if strings.Contains(string(o), "/") {
			alternatives = append(alternatives, string(o))
		}
	}
	best := goautoneg.Negotiate(accept, alternatives)
	if best == "" {
		return "", false
	}
	return MediaType(best), true
}

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	bytesType    = reflect.TypeFor[[]byte]()
)

// DefaultMediaType is the media type used for an entity of type t when the
// resource method does not declare what it produces.
func DefaultMediaType(t reflect.Type) MediaType {
	if t == nil {
		return TextPlain
	}
	switch {
	case t.Kind() == reflect.String, t == bytesType, t.Implements(stringerType):
		return TextPlain
	}
	return ApplicationJSON
}
