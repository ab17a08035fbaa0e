package health

import (
	"net/http"

	"github.com/dmitrymomot/waypoint/core/handler"
	"github.com/dmitrymomot/waypoint/core/response"
)

// Liveness always responds "ALIVE" with 200 OK.
func Liveness(_ *handler.Request, res *response.Writer, _ handler.Next) {
	_ = res.Send("ALIVE")
}

// NoContent responds 204 without a body.
func NoContent(_ *handler.Request, res *response.Writer, _ handler.Next) {
	_ = res.Status(http.StatusNoContent).Send("")
}
