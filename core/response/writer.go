package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"sync/atomic"
)

// Content types written by Send.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain"
)

// HTMX request and redirect headers.
const (
	HeaderHXRequest  = "HX-Request"
	HeaderHXLocation = "HX-Location"
)

// Writer wraps http.ResponseWriter with status, send and redirect helpers.
type Writer struct {
	w       http.ResponseWriter
	r       *http.Request
	pending int
	status  int
	sent    atomic.Bool
}

// New wraps w for the exchange started by r. r may be nil.
func New(w http.ResponseWriter, r *http.Request) *Writer {
	return &Writer{w: w, r: r}
}

// Status records the status code used by the next Send.
func (rw *Writer) Status(code int) *Writer {
	rw.pending = code
	return rw
}

// Send writes body with the pending status, or 200 when none was set.
func (rw *Writer) Send(body any) error {
	payload, contentType, err := encode(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncodeBody, err)
	}

	if !rw.sent.CompareAndSwap(false, true) {
		return ErrAlreadySent
	}

	status := rw.pending
	if status == 0 {
		status = http.StatusOK
	}

	rw.w.Header().Set("Content-Type", contentType)
	rw.status = status
	rw.w.WriteHeader(status)
	if len(payload) == 0 {
		return nil
	}
	_, err = rw.w.Write(payload)
	return err
}

// Redirect responds with 302 Found and a Location header.
func (rw *Writer) Redirect(url string) error {
	return rw.RedirectWithStatus(url, http.StatusFound)
}

// RedirectWithStatus responds with code and a Location header.
// Codes outside the 3xx range fall back to 302 Found.
// HTMX requests get HX-Location with 200 OK instead.
func (rw *Writer) RedirectWithStatus(url string, code int) error {
	if url == "" {
		return ErrMissingRedirectTarget
	}
	if code < 300 || code > 399 {
		code = http.StatusFound
	}

	if !rw.sent.CompareAndSwap(false, true) {
		return ErrAlreadySent
	}

	if rw.r != nil && rw.r.Header.Get(HeaderHXRequest) == "true" {
		rw.w.Header().Set(HeaderHXLocation, url)
		rw.status = http.StatusOK
		rw.w.WriteHeader(http.StatusOK)
		return nil
	}

	rw.w.Header().Set("Location", url)
	rw.status = code
	rw.w.WriteHeader(code)
	return nil
}

// Header returns the header map that will be sent.
func (rw *Writer) Header() http.Header {
	return rw.w.Header()
}

// Sent reports whether the exchange has been finished.
func (rw *Writer) Sent() bool {
	return rw.sent.Load()
}

// StatusCode returns the status written, or 0 before anything was sent.
func (rw *Writer) StatusCode() int {
	if !rw.Sent() {
		return 0
	}
	return rw.status
}

// Unwrap returns the underlying http.ResponseWriter.
func (rw *Writer) Unwrap() http.ResponseWriter {
	return rw.w
}

func encode(body any) ([]byte, string, error) {
	switch v := body.(type) {
	case nil:
		return []byte("null"), ContentTypeJSON, nil
	case string:
		return []byte(v), ContentTypeText, nil
	case []byte:
		return v, ContentTypeText, nil
	case json.RawMessage:
		return v, ContentTypeJSON, nil
	}

	switch reflect.ValueOf(body).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Pointer, reflect.Interface:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}
		return data, ContentTypeJSON, nil
	default:
		return []byte(fmt.Sprint(body)), ContentTypeText, nil
	}
}
