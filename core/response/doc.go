// Package response decorates http.ResponseWriter with the small set of
// operations handlers use to finish an exchange.
//
//	func show(req *handler.Request, res *response.Writer, next handler.Next) {
//		res.Status(http.StatusCreated).Send(map[string]any{"id": 1})
//	}
//
// Send picks the encoding from the value: strings and byte slices are
// written as text/plain, maps, slices, structs, pointers and nil are
// encoded as application/json, other scalars are formatted as text.
//
// A Writer finishes at most one exchange. Once Send or Redirect succeeded,
// further calls return ErrAlreadySent and write nothing.
package response
