// Package waypoint is a small HTTP application framework: routes with
// ":param" segments, a per-request middleware chain driven by explicit
// continuations, and a response writer with status, send and redirect.
//
//	app := waypoint.New(waypoint.WithLogger(log))
//
//	app.Use(middleware.JSON(middleware.JSONConfig{}))
//
//	app.Get("/todos/:id", auth, func(req *handler.Request, res *response.Writer, next handler.Next) {
//		res.Send(map[string]string{"id": req.Param("id")})
//	})
//
//	err := app.Listen(ctx, ":3000", func() {
//		log.Info("listening", "addr", app.Addr())
//	})
//
// For every request the app resolves the first registered route whose
// method and pattern match, then runs the global middleware followed by the
// route handlers. Requests with no matching route get 404 with the body
// "404 not found" and do not run global middleware. A chain that finishes
// without sending anything is answered with 500.
//
// Related packages:
//   - core/pathmatch: pattern and query matching
//   - core/router: route table and resolution
//   - core/chain: continuation-passing handler chain
//   - core/response: response writer
//   - core/server: graceful HTTP server
//   - middleware: body parsing, request IDs, logging, recovery, auth, rate limiting
package waypoint
