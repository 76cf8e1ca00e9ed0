// Package minigame defines the contract between the orchestrator and the
// individual mini-games, and the registry games are selected from.
package minigame

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jonboulle/clockwork"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/antigravity/petit/internal/assets"
	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/sched"
)

// Env is everything a game may use during one session.
type Env struct {
	// Phone is the primary surface that receives input.
	Phone *canvas.Surface
	// TV mirrors the phone unless the game implements TVRenderer.
	TV *canvas.Surface

	// Tasks schedules delayed callbacks. It is cancelled when the session
	// ends, so callbacks never run against a torn-down game.
	Tasks *sched.Scope

	Audio  *audio.Emitter
	Clock  clockwork.Clock
	Rand   *rand.Rand
	Assets *assets.Library
	Logger *slog.Logger

	// Resolve reports the outcome. Only the first call per session counts.
	Resolve func(success bool)
}

// Game is implemented by every mini-game.
type Game interface {
	// Init prepares a fresh round. Instances are reused across sessions, so
	// Init must reset all per-round state.
	Init(env Env)
	Start()
	ButtonDown(pos canvas.Point)
	ButtonUp(hold time.Duration, pos canvas.Point)
}

// TimeoutHandler games decide the outcome themselves when the round
// expires. Games without it fail on timeout.
type TimeoutHandler interface {
	OnTimeout()
}

// TVRenderer games draw the TV surface themselves instead of having the
// phone scaled onto it.
type TVRenderer interface {
	RenderTV()
}

// Cleaner games release resources when the session ends.
type Cleaner interface {
	Cleanup()
}

// Animator games redraw on every frame while the session is live.
type Animator interface {
	Animate(now time.Time)
}

// Titled games carry a localizable title for the TV title bar.
type Titled interface {
	Title() *goi18n.Message
}

// Title returns the localized title of g, or a generic one.
func Title(g Game, id int, l *i18n.Localizer) string {
	if t, ok := g.(Titled); ok && t != nil {
		if msg := t.Title(); msg != nil {
			return l.Localize(msg, nil)
		}
	}
	return fmt.Sprintf("Game %d", id)
}
