package rest

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// Messages and friends mirror a typical nested resource tree.
type Messages struct {
	served int
}

func (m *Messages) Get() string {
	m.served++
	return "messages"
}

func (*Messages) Ah() string           { return "ah" }
func (*Messages) Hello() string        { return "hello" }
func (*Messages) PostHello() string    { return "postHello" }
func (*Messages) PutHello() string     { return "putHello" }
func (*Messages) DeleteHello() string  { return "deleteHello" }
func (*Messages) PatchHello() string   { return "patchHello" }
func (*Messages) HeadHello() string    { return "headHello" }
func (*Messages) OptionsHello() string { return "optionsHello" }
func (*Messages) TopicID() string      { return "topicId" }
func (*Messages) Topic1234() string    { return "topic1234" }
func (*Messages) ByID() *Message       { return &Message{} }

type Message struct{}

func (*Message) Content() string    { return "content" }
func (*Message) Body() *MessageBody { return &MessageBody{} }

type MessageBody struct{}

func (*MessageBody) Get() string { return "get" }

var (
	messageBodyClass = MustSubClass[*MessageBody](
		GET("/get", (*MessageBody).Get).Produces(TextPlain),
	)
	messageClass = MustSubClass[*Message](
		GET("/content", (*Message).Content).Produces(TextPlain),
		Locator("/body", (*Message).Body, messageBodyClass),
	)
	messagesClass = MustClass[*Messages]("/messages",
		GET("", (*Messages).Get).Produces(TextPlain),
		GET("/ah", (*Messages).Ah).Produces(TextPlain),
		GET("/hello", (*Messages).Hello).Produces(TextPlain),
		POST("/hello", (*Messages).PostHello).Produces(TextPlain),
		PUT("/hello", (*Messages).PutHello).Produces(TextPlain),
		DELETE("/hello", (*Messages).DeleteHello).Produces(TextPlain),
		PATCH("/hello", (*Messages).PatchHello).Produces(TextPlain),
		HEAD("/hello", (*Messages).HeadHello).Produces(TextPlain),
		OPTIONS("/hello", (*Messages).OptionsHello).Produces(TextPlain),
		GET("/topics/{id}", (*Messages).TopicID).Produces(TextPlain),
		GET("/topics/1234", (*Messages).Topic1234).Produces(TextPlain),
		Locator("/{id}", (*Messages).ByID, messageClass),
	)
)

type MissingMessages struct{}

func (*MissingMessages) Get() string   { return "missing" }
func (*MissingMessages) Sub() *Message { return &Message{} }

var missingMessagesClass = MustClass[*MissingMessages]("/missing-messages",
	GET("", (*MissingMessages).Get).Produces(TextPlain),
	Locator("/sub", (*MissingMessages).Sub, messageClass),
)

// stubContext resolves fixed instances by type.
type stubContext map[reflect.Type]any

func (s stubContext) Resource(t reflect.Type) (any, error) {
	if t == resourceContextType {
		return s, nil
	}
	if v, ok := s[t]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownResource, t)
}

func contextWith(values ...any) stubContext {
	s := stubContext{providersType: NewProviders()}
	for _, v := range values {
		s[reflect.TypeOf(v)] = v
	}
	return s
}

// Service is something resources ask the context for.
type Service interface {
	Name() string
}

type namedService string

func (n namedService) Name() string { return string(n) }

var errBoom = errors.New("boom")

func newRequest(method, target string) *http.Request {
	r, err := http.NewRequest(method, target, nil)
	if err != nil {
		panic(err)
	}
	return r
}
