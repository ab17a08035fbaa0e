package handler

import "github.com/dmitrymomot/waypoint/core/response"

// Next passes control to the following handler in the chain.
type Next func()

// HandlerFunc processes a request. Call next to continue the chain.
type HandlerFunc func(req *Request, res *response.Writer, next Next)
