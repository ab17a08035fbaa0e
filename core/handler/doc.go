// Package handler defines the request descriptor and the handler signature
// shared by the router, the middleware chain and the application adapter.
//
// A handler receives the request, the response writer and a continuation:
//
//	func hello(req *handler.Request, res *response.Writer, next handler.Next) {
//		res.Send("Hello, " + req.Param("name"))
//	}
//
// Middleware is just a handler that calls next to pass control on:
//
//	func timing(req *handler.Request, res *response.Writer, next handler.Next) {
//		start := time.Now()
//		next()
//		log.Println(req.URL.Path, time.Since(start))
//	}
//
// A handler that neither responds nor calls next ends the chain.
package handler
