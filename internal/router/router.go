package router

import (
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// Router shows one screen per orchestrator state. The orchestrator decides
// which state is visible; the router only follows it.
type Router struct {
	screens map[orchestrator.State]screen.Screen
	current orchestrator.State
}

// New creates a Router showing initial. screens must contain initial.
func New(screens map[orchestrator.State]screen.Screen, initial orchestrator.State) *Router {
	return &Router{
		screens: screens,
		current: initial,
	}
}

// Show switches to the screen for state and calls its Init(). Showing the
// current state again is a no-op.
func (r *Router) Show(state orchestrator.State) tea.Cmd {
	if state == r.current {
		return nil
	}
	s, ok := r.screens[state]
	if !ok {
		return nil
	}
	r.current = state
	return s.Init()
}

// Current returns the state whose screen is shown.
func (r *Router) Current() orchestrator.State {
	return r.current
}

// Active returns the shown screen.
func (r *Router) Active() screen.Screen {
	return r.screens[r.current]
}

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.screens[r.current] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
