// Package api assembles the API module: domain systems, session handling,
// and route registration under the configured base path.
package api

import (
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/config"
	"github.com/surjithprasanna/proz-portal/internal/infrastructure"
	"github.com/surjithprasanna/proz-portal/pkg/metrics"
	"github.com/surjithprasanna/proz-portal/pkg/middleware"
	"github.com/surjithprasanna/proz-portal/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(metrics.Middleware())

	return m, nil
}
