package waypoint

import "errors"

// ErrNoResponse is logged when a handler chain returns without writing a response.
var ErrNoResponse = errors.New("handler chain finished without a response")
