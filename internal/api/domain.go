package api

import (
	"github.com/surjithprasanna/proz-portal/internal/clients"
	"github.com/surjithprasanna/proz-portal/internal/phases"
	"github.com/surjithprasanna/proz-portal/internal/projects"
	"github.com/surjithprasanna/proz-portal/internal/requests"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Clients  clients.System
	Requests requests.System
	Projects projects.System
	Phases   phases.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	clientsSystem := clients.New(
		runtime.Database.Connection(),
		runtime.ClientDomain,
		runtime.Logger,
		runtime.Pagination,
	)

	requestsSystem := requests.New(
		runtime.Database.Connection(),
		clientsSystem,
		runtime.Notifier,
		runtime.Logger,
		runtime.Pagination,
	)

	phasesSystem := phases.New(
		runtime.Database.Connection(),
		runtime.Events,
		runtime.Logger,
	)

	projectsSystem := projects.New(
		runtime.Database.Connection(),
		requestsSystem,
		clientsSystem,
		phasesSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Clients:  clientsSystem,
		Requests: requestsSystem,
		Projects: projectsSystem,
		Phases:   phasesSystem,
	}
}
