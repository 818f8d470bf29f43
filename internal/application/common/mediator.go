package common

import (
	"context"
	"fmt"
	"reflect"
)

// Request is a command or query sent through the mediator
type Request interface{}

// Response is the result of handling a request
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// Mediator routes expedition commands to their handlers so the CLI never
// touches the session directly
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
}

type mediator struct {
	routes map[reflect.Type]RequestHandler
}

// NewMediator creates an empty mediator
func NewMediator() Mediator {
	return &mediator{routes: make(map[reflect.Type]RequestHandler)}
}

// Register binds a request type to its handler. Each type gets exactly
// one handler.
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	switch {
	case requestType == nil:
		return fmt.Errorf("cannot register a nil request type")
	case handler == nil:
		return fmt.Errorf("cannot register a nil handler for %s", requestType)
	}
	if _, taken := m.routes[requestType]; taken {
		return fmt.Errorf("duplicate handler registration for %s", requestType)
	}
	m.routes[requestType] = handler
	return nil
}

// Send routes a request to the handler registered for its dynamic type
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("cannot send a nil request")
	}
	handler, ok := m.routes[reflect.TypeOf(request)]
	if !ok {
		return nil, fmt.Errorf("no handler registered for %T", request)
	}
	return handler.Handle(ctx, request)
}

// RegisterHandler registers a handler keyed by the request type parameter
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	return m.Register(reflect.TypeOf((*T)(nil)).Elem(), handler)
}
