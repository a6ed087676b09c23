package router

import (
	"github.com/abhisek/prepdeck/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Router holds the active screen. The host swaps screens with Reset when
// the session mode changes; screens never navigate on their own.
type Router struct {
	active screen.Screen
}

// New creates a new Router showing initial.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Reset replaces the active screen with s and calls its Init().
func (r *Router) Reset(s screen.Screen) tea.Cmd {
	r.active = s
	return s.Init()
}

// Active returns the screen being shown.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
