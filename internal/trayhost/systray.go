package trayhost

import (
	_ "embed"
	"sync"

	"fyne.io/systray"
)

//go:embed icon.png
var iconData []byte

// Appearance is what the tray shows before any menu is installed.
type Appearance struct {
	Title   string
	Tooltip string
}

// Systray implements Tray on fyne.io/systray. Click handlers of items from
// a previous menu stop when ResetMenu is called.
type Systray struct {
	mu   sync.Mutex
	done chan struct{}
}

var _ Tray = (*Systray)(nil)

func NewSystray() *Systray {
	return &Systray{done: make(chan struct{})}
}

// Run starts the tray event loop and blocks until Quit. It must be called
// from the main goroutine. onReady runs once the tray exists.
func (s *Systray) Run(appearance Appearance, onReady func(), onExit func()) {
	systray.Run(func() {
		systray.SetIcon(iconData)
		if appearance.Title != "" {
			systray.SetTitle(appearance.Title)
		}
		systray.SetTooltip(appearance.Tooltip)
		if onReady != nil {
			onReady()
		}
	}, func() {
		s.mu.Lock()
		close(s.done)
		s.done = make(chan struct{})
		s.mu.Unlock()
		if onExit != nil {
			onExit()
		}
	})
}

func (s *Systray) ResetMenu() {
	s.mu.Lock()
	close(s.done)
	s.done = make(chan struct{})
	s.mu.Unlock()

	systray.ResetMenu()
}

func (s *Systray) AddMenuItem(title, tooltip string) MenuItem {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()

	return &systrayItem{item: systray.AddMenuItem(title, tooltip), done: done}
}

func (s *Systray) AddSeparator() {
	systray.AddSeparator()
}

func (s *Systray) Quit() {
	systray.Quit()
}

type systrayItem struct {
	item *systray.MenuItem
	done <-chan struct{}
}

func (i *systrayItem) Disable() {
	i.item.Disable()
}

func (i *systrayItem) Click(fn func()) {
	go func() {
		for {
			select {
			case <-i.item.ClickedCh:
				fn()
			case <-i.done:
				return
			}
		}
	}()
}
