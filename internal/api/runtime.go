package api

import (
	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/internal/config"
	"github.com/surjithprasanna/proz-portal/internal/infrastructure"
	"github.com/surjithprasanna/proz-portal/internal/notify"
	"github.com/surjithprasanna/proz-portal/pkg/pagination"
)

// Runtime extends Infrastructure with API-scoped dependencies: pagination
// limits, session issuance, the admin authenticator, and the notifier.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination    pagination.Config
	Sessions      *auth.Sessions
	Authenticator auth.Authenticator
	Notifier      notify.System
	CookieSecure  bool
	ClientDomain  string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	logger := infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logger,
			Database:  infra.Database,
			Storage:   infra.Storage,
			Events:    infra.Events,
		},
		Pagination:    cfg.API.Pagination,
		Sessions:      auth.NewSessions(&cfg.Auth),
		Authenticator: auth.NewSharedSecret(cfg.Auth.AdminSecret),
		Notifier:      notify.New(&cfg.Notify, logger),
		CookieSecure:  cfg.Auth.CookieSecure,
		ClientDomain:  cfg.Auth.ClientDomain,
	}
}
