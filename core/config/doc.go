// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file is loaded once on first use, then struct fields are populated
// from the environment via the caarlos0/env library:
//
//	type APIConfig struct {
//		BaseURL string `env:"API_BASE_URL,required"`
//		Locale  string `env:"DEFAULT_LOCALE" envDefault:"fr"`
//	}
//
//	var cfg APIConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is parsed only once per process; subsequent Load
// calls for the same type return the cached value. MustLoad panics on failure
// and is intended for application startup.
package config
