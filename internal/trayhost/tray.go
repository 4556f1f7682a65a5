package trayhost

import (
	"context"

	"github.com/PolarWolf314/envtray/internal/tray"
)

// MenuItem is one installed entry.
type MenuItem interface {
	Disable()
	Click(fn func())
}

// Tray is the subset of a system tray the host needs.
type Tray interface {
	ResetMenu()
	AddMenuItem(title, tooltip string) MenuItem
	AddSeparator()
	Quit()
}

// Applier performs an activated configuration.
type Applier interface {
	Apply(ctx context.Context, event tray.ApplyEvent) error
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(ctx context.Context, event tray.ApplyEvent) error

func (f ApplierFunc) Apply(ctx context.Context, event tray.ApplyEvent) error {
	return f(ctx, event)
}

// TreeSource provides the current tray hierarchy.
type TreeSource interface {
	Tree(ctx context.Context) ([]tray.Project, error)
}

// TreeSourceFunc adapts a function to TreeSource.
type TreeSourceFunc func(ctx context.Context) ([]tray.Project, error)

func (f TreeSourceFunc) Tree(ctx context.Context) ([]tray.Project, error) {
	return f(ctx)
}
