// Package config loads environment variables into typed structs and caches
// the result per type.
//
// A .env file in the working directory is loaded once on first use. A
// missing file is not an error. Parsing uses caarlos0/env struct tags:
//
//	type ServerConfig struct {
//		Addr string `env:"SERVER_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Every later call with the same type returns the cached value, so
// changes to the environment after the first load are not observed.
// Use MustLoad at startup to panic on failure.
package config
