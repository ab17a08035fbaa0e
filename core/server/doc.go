// Package server runs an http.Handler with production timeouts and graceful
// shutdown.
//
//	srv := server.New(":8080", server.WithLogger(log))
//	err := srv.Listen(ctx, handler, func(addr net.Addr) {
//		log.Info("listening", "addr", addr.String())
//	})
//
// Listen binds the address before it calls the ready hook, so a port of 0
// can be used and the chosen address read from the hook or from Addr.
// When ctx is cancelled the server stops accepting connections and waits up
// to the shutdown timeout for in-flight requests.
//
// Servers can also be built from environment configuration:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg)
package server
