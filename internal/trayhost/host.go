package trayhost

import (
	"context"
	"errors"
	"sync"

	logger "github.com/PolarWolf314/envtray/internal/logging"
	"github.com/PolarWolf314/envtray/internal/tray"
)

// Options configures a Host. Tray is required; a nil Applier or Source makes
// the corresponding operation a no-op.
type Options struct {
	Tray    Tray
	Applier Applier
	Source  TreeSource
	Logger  logger.Logger
}

// Host owns the installed menu and dispatches clicks.
type Host struct {
	ctx     context.Context
	tray    Tray
	applier Applier
	source  TreeSource
	log     logger.Logger

	mu   sync.Mutex
	menu tray.Menu
}

// NewHost returns a host whose click handlers run with ctx.
func NewHost(ctx context.Context, opts Options) *Host {
	return &Host{
		ctx:     ctx,
		tray:    opts.Tray,
		applier: opts.Applier,
		source:  opts.Source,
		log:     opts.Logger,
	}
}

// Update replaces the installed menu with menu.
func (h *Host) Update(menu tray.Menu) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.tray.ResetMenu()
	for _, node := range menu.Nodes {
		switch node.Kind {
		case tray.NodeSeparator:
			h.tray.AddSeparator()
		case tray.NodeHeader:
			h.tray.AddMenuItem(node.Label, "").Disable()
		case tray.NodeAction:
			token := node.Token
			h.tray.AddMenuItem(node.Label, "").Click(func() {
				h.Activate(h.ctx, token)
			})
		}
	}
	h.menu = menu
	h.log.Debugf("Installed tray menu with %d entries", len(menu.Nodes))
}

// Menu returns the installed menu.
func (h *Host) Menu() tray.Menu {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.menu
}

// Activate resolves a clicked token and acts on it. It never panics; apply
// failures are logged. The resolved activation is returned for callers that
// want to report it.
func (h *Host) Activate(ctx context.Context, token string) tray.Activation {
	h.mu.Lock()
	defer h.mu.Unlock()

	activation := tray.ResolveActivation(token)
	switch a := activation.(type) {
	case tray.Terminate:
		h.log.Infof("Quit requested from tray")
		h.tray.Quit()
	case tray.Ignored:
		h.log.Debugf("Ignoring activation of %q", a.Token)
	case tray.ApplyConfiguration:
		h.apply(ctx, a)
	case tray.ResolutionFailed:
		h.log.Errorf("Could not resolve tray item %q: %v", a.Token, a.Err)
	}
	return activation
}

func (h *Host) apply(ctx context.Context, a tray.ApplyConfiguration) {
	if h.applier == nil {
		h.log.Debugf("No applier configured; dropping %+v", a.Event())
		return
	}

	defer func() {
		if r := recover(); r != nil {
			h.log.Errorf("Applying group %s panicked: %v", a.GroupID, r)
		}
	}()

	if err := h.applier.Apply(ctx, a.Event()); err != nil {
		h.log.Errorf("Failed to apply group %s to %s: %v", a.GroupID, a.EnvFilePath, err)
		return
	}
	h.log.Infof("Applied group %s to %s", a.GroupID, a.EnvFilePath)
}

// Refresh rebuilds the menu from the tree source and installs it. Groups
// whose ids cannot be encoded are logged and left out; the rest of the menu
// is still installed.
func (h *Host) Refresh(ctx context.Context) error {
	if h.source == nil {
		h.Update(tray.Menu{Nodes: []tray.MenuNode{tray.Action(tray.QuitLabel, tray.QuitToken)}})
		return nil
	}

	tree, err := h.source.Tree(ctx)
	if err != nil {
		h.log.Errorf("Failed to load projects for the tray: %v", err)
		return err
	}

	menu, err := tray.BuildMenu(tree)
	var buildErr *tray.BuildError
	if errors.As(err, &buildErr) {
		for _, f := range buildErr.Failures {
			h.log.Warnf("Skipping group %q (%s) of %s: %v", f.GroupName, f.GroupID, f.EnvFilePath, f.Err)
		}
	}

	h.Update(menu)
	return nil
}

// WatchStore refreshes the menu whenever the store file at path changes.
// It returns once the watch is established; watching stops with ctx.
func (h *Host) WatchStore(ctx context.Context, path string) error {
	errs, err := Watch(ctx, path, func() {
		h.log.Debugf("Project store changed, rebuilding tray menu")
		_ = h.Refresh(ctx)
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errs {
			h.log.Warnf("Store watcher: %v", err)
		}
	}()
	return nil
}
