package router

import "errors"

var (
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrEmptyParam     = errors.New("empty parameter name")
	ErrDuplicateParam = errors.New("duplicate parameter name")
	ErrNoHandlers     = errors.New("route has no handlers")
)
