// Package projects implements the active-project domain: conversion of an
// accepted request into a tracked project and admin management of project
// status and progress.
package projects

import (
	"time"

	"github.com/google/uuid"
)

// Project status values, in delivery order. Status and progress are
// independently settable by the admin; no derivation between them.
const (
	StatusDiscovery   = "Discovery"
	StatusDesign      = "Design"
	StatusDevelopment = "Development"
	StatusTesting     = "Testing"
	StatusDeployed    = "Deployed"
)

// Project represents an active client engagement.
type Project struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"client_id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Progress    int       `json:"progress"`
	Price       *string   `json:"price"`
	PricingPlan *string   `json:"pricing_plan"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ConvertCommand converts a request into a project. Optional fields override
// values carried on the request.
type ConvertCommand struct {
	RequestID  uuid.UUID `json:"request_id"`
	Name       *string   `json:"name"`
	AccessCode *string   `json:"access_code"`
	Progress   *int      `json:"progress"`
}

// UpdateCommand patches a project. Nil fields are untouched.
type UpdateCommand struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Progress    *int    `json:"progress"`
	Price       *string `json:"price"`
	PricingPlan *string `json:"pricing_plan"`
}

// UpdateRequest targets a project with an update for the admin endpoint.
type UpdateRequest struct {
	ProjectID uuid.UUID `json:"project_id"`
	UpdateCommand
}

// ValidStatus reports whether s is a recognized project status.
func ValidStatus(s string) bool {
	switch s {
	case StatusDiscovery, StatusDesign, StatusDevelopment, StatusTesting, StatusDeployed:
		return true
	}
	return false
}
