package api

import (
	"net/http"

	"github.com/surjithprasanna/proz-portal/internal/auth"
	"github.com/surjithprasanna/proz-portal/internal/config"
	"github.com/surjithprasanna/proz-portal/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	session := newSessionHandler(runtime, domain.Clients)
	portal := newClientPortal(domain.Projects, domain.Phases, runtime.Logger)
	attachments := newAttachmentHandler(
		runtime.Storage, runtime.Logger, cfg.API.MaxUploadSizeBytes())
	relay := newNotifyHandler(runtime.Notifier, runtime.Logger)

	clientsHandler := domain.Clients.Handler()
	requestsHandler := domain.Requests.Handler()
	projectsHandler := domain.Projects.Handler()
	phasesHandler := domain.Phases.Handler()

	admin := routes.Group{
		Prefix: "/admin",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/create-client", Handler: projectsHandler.Provision},
		},
		Children: []routes.Group{
			requestsHandler.AdminRoutes(),
			projectsHandler.Routes(),
			phasesHandler.Routes(),
			clientsHandler.Routes(),
			attachments.uploadRoutes(),
		},
	}

	client := routes.Group{
		Prefix: "/client",
		Children: []routes.Group{
			portal.routes(),
			requestsHandler.ClientRoutes(),
		},
	}

	requireAdmin := auth.RequireAdmin(runtime.Sessions, runtime.Logger)
	requireClient := auth.RequireClient(runtime.Sessions, runtime.Logger)

	routes.Register(
		mux,
		session.publicRoutes(),
		requestsHandler.PublicRoutes(),
		relay.routes(),
		attachments.downloadRoutes(),
		guard(requireAdmin, admin),
		guard(requireClient, client),
	)
}

// guard wraps every route in the group, including children, with the given
// middleware.
func guard(mw func(http.Handler) http.Handler, group routes.Group) routes.Group {
	for i, route := range group.Routes {
		group.Routes[i].Handler = mw(route.Handler).ServeHTTP
	}
	for i, child := range group.Children {
		group.Children[i] = guard(mw, child)
	}
	return group
}
