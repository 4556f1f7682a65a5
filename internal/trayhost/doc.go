// Package trayhost connects the menu engine in package tray to a system tray.
//
// The tray runtime is an injected capability: Host talks to the Tray and
// MenuItem interfaces, Systray implements them on fyne.io/systray, and tests
// use an in-memory fake.
//
// # Lifecycle
//
//	host := trayhost.NewHost(ctx, trayhost.Options{Tray: st, Applier: a, Source: s})
//	host.Refresh(ctx)           // build and install the first menu
//	host.WatchStore(ctx, path)  // rebuild whenever the store file changes
//
// Update replaces the whole menu; the host never patches individual items.
// Update and Activate are serialised by a mutex, so a click is always
// resolved against a fully installed menu.
package trayhost
