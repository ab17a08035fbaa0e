package response

import "errors"

var (
	ErrAlreadySent           = errors.New("response already sent")
	ErrMissingRedirectTarget = errors.New("redirect target is required")
	ErrEncodeBody            = errors.New("failed to encode response body")
)
