package router

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/pathmatch"
)

var methods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
}

// Route is a registered method, pattern and handler list. It is not
// modified after registration.
type Route struct {
	method   string
	pattern  string
	segments []string
	params   []string
	handlers []handler.HandlerFunc
}

// Method returns the HTTP method the route answers.
func (rt *Route) Method() string { return rt.method }

// Pattern returns the pattern as registered.
func (rt *Route) Pattern() string { return rt.pattern }

// Segments returns a copy of the split pattern.
func (rt *Route) Segments() []string { return slices.Clone(rt.segments) }

// ParamNames returns the placeholder names in order of appearance.
func (rt *Route) ParamNames() []string { return slices.Clone(rt.params) }

// Handlers returns a copy of the route handlers.
func (rt *Route) Handlers() []handler.HandlerFunc { return slices.Clone(rt.handlers) }

// String returns "METHOD pattern".
func (rt *Route) String() string { return rt.method + " " + rt.pattern }

// ResolvedRoute is the result of a successful Resolve. It is built per
// request and owns its maps.
type ResolvedRoute struct {
	*Route
	Params map[string]string
	Query  map[string]string
	// Match is the pattern with placeholders replaced by request segments.
	Match []string
}

// Compile validates pattern and returns its segments and placeholder names.
func Compile(pattern string) (segments, params []string, err error) {
	if !strings.HasPrefix(pattern, pathmatch.Separator) {
		return nil, nil, fmt.Errorf("%w: %q must start with %q", ErrInvalidPattern, pattern, pathmatch.Separator)
	}

	segments = pathmatch.Split(pattern)
	seen := make(map[string]struct{})
	for _, segment := range segments {
		if !pathmatch.IsPlaceholder(segment) {
			continue
		}
		name := pathmatch.Name(segment)
		if name == "" {
			return nil, nil, fmt.Errorf("%w: in %q", ErrEmptyParam, pattern)
		}
		if _, ok := seen[name]; ok {
			return nil, nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, pattern)
		}
		seen[name] = struct{}{}
		params = append(params, name)
	}
	return segments, params, nil
}

func newRoute(method, pattern string, handlers []handler.HandlerFunc) (*Route, error) {
	if _, ok := methods[method]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}

	segments, params, err := Compile(pattern)
	if err != nil {
		return nil, err
	}

	hs := make([]handler.HandlerFunc, 0, len(handlers))
	for _, h := range handlers {
		if h != nil {
			hs = append(hs, h)
		}
	}
	if len(hs) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoHandlers, method, pattern)
	}

	return &Route{
		method:   method,
		pattern:  pattern,
		segments: segments,
		params:   params,
		handlers: hs,
	}, nil
}
