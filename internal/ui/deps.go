// Package ui provides the GTK4 presentation layer of Protodesk.
package ui

import (
	"context"

	"github.com/nemuelw/protodesk/internal/bootstrap"
	"github.com/nemuelw/protodesk/internal/ui/theme"
)

// Dependencies holds everything the UI layer needs at startup.
type Dependencies struct {
	Ctx context.Context
	App *bootstrap.AppContext

	// InitialService is the sidebar entry loaded first; empty means mail.
	InitialService string
	// DeveloperExtras enables the web inspector.
	DeveloperExtras bool

	Theme *theme.Manager
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.App == nil {
		return ErrMissingDependency("App")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
