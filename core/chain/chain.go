package chain

import (
	"sync/atomic"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
)

// Chain is an ordered, request-scoped list of handlers.
type Chain struct {
	handlers []handler.HandlerFunc
}

// New returns a chain holding a copy of handlers.
func New(handlers ...handler.HandlerFunc) *Chain {
	c := &Chain{handlers: make([]handler.HandlerFunc, 0, len(handlers))}
	return c.Append(handlers...)
}

// Append adds handlers to the end of the chain. Nil handlers are skipped.
func (c *Chain) Append(handlers ...handler.HandlerFunc) *Chain {
	for _, h := range handlers {
		if h != nil {
			c.handlers = append(c.handlers, h)
		}
	}
	return c
}

// Len returns the number of handlers in the chain.
func (c *Chain) Len() int {
	return len(c.handlers)
}

// Execute invokes the first handler. An empty chain does nothing.
func (c *Chain) Execute(req *handler.Request, res *response.Writer) {
	c.run(0, req, res)
}

func (c *Chain) run(i int, req *handler.Request, res *response.Writer) {
	if i >= len(c.handlers) {
		return
	}

	var called atomic.Bool
	next := func() {
		if called.CompareAndSwap(false, true) {
			c.run(i+1, req, res)
		}
	}

	c.handlers[i](req, res, next)
}
