package app

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/antigravity/petit/internal/assets"
	"github.com/antigravity/petit/internal/audio"
	"github.com/antigravity/petit/internal/canvas"
	"github.com/antigravity/petit/internal/config"
	"github.com/antigravity/petit/internal/games"
	"github.com/antigravity/petit/internal/i18n"
	"github.com/antigravity/petit/internal/minigame"
	"github.com/antigravity/petit/internal/orchestrator"
	"github.com/antigravity/petit/internal/router"
	"github.com/antigravity/petit/internal/sched"
	"github.com/antigravity/petit/internal/screen"
	"github.com/antigravity/petit/internal/screens/game"
	"github.com/antigravity/petit/internal/screens/home"
	"github.com/antigravity/petit/internal/screens/result"
	"github.com/antigravity/petit/internal/timer"
	"github.com/antigravity/petit/internal/ui/layout"
)

// Options configures New. Only Config is required.
type Options struct {
	Config config.Config
	Logger *slog.Logger
	Clock  clockwork.Clock

	// Sink receives audio cues. When nil, cues ring the terminal bell on
	// Bell (stderr by default) unless the config mutes them.
	Sink audio.Sink
	Bell io.Writer

	// StartGame, when non-zero, is selected as soon as the program starts.
	StartGame int
}

// New wires the arcade together from opts.
func New(opts Options) (AppModel, error) {
	cfg := opts.Config
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Sink == nil {
		opts.Sink = newSink(cfg, opts.Bell, opts.Logger)
	}

	loc, err := i18n.New(cfg.Locale)
	if err != nil {
		return AppModel{}, err
	}

	reg := minigame.NewRegistry()
	if err := games.RegisterAll(reg); err != nil {
		return AppModel{}, err
	}

	s := sched.New()
	em := audio.New(opts.Sink, s, opts.Logger)
	lib := assets.New(assetFS(cfg.AssetDir), opts.Logger)
	phone := canvas.New(cfg.Phone.Width, cfg.Phone.Height)
	tv := canvas.New(cfg.TV.Width, cfg.TV.Height)

	orch := orchestrator.New(orchestrator.Options{
		Registry: reg,
		Timer: timer.New(opts.Clock, s, timer.Config{
			Interval:     cfg.TimerInterval,
			WarnFraction: cfg.WarnFraction,
		}),
		Scheduler:     s,
		Phone:         phone,
		TV:            tv,
		Audio:         em,
		Assets:        lib,
		Clock:         opts.Clock,
		Rand:          newRand(cfg.Seed),
		Logger:        opts.Logger,
		RoundDuration: cfg.RoundDuration,
		SettleDelay:   cfg.SettleDelay,
	})

	r := router.New(map[orchestrator.State]screen.Screen{
		orchestrator.StateHome:   home.New(orch, reg, loc, em),
		orchestrator.StateInGame: game.New(orch, loc, s, cfg.RepeatGrace),
		orchestrator.StateResult: result.New(orch, loc, em, lib),
	}, orchestrator.StateHome)

	minW, minH := layout.MinSize(game.PanelSize(phone, tv))

	opts.Logger.Info("arcade ready", "locale", loc.Tag().String(), "games", reg.Len(), "phone", fmt.Sprintf("%dx%d", phone.Width(), phone.Height()), "tv", fmt.Sprintf("%dx%d", tv.Width(), tv.Height()))

	return AppModel{
		router:    r,
		orch:      orch,
		sched:     s,
		loc:       loc,
		clock:     opts.Clock,
		frames:    s.NewScope(),
		frameRate: cfg.FrameInterval(),
		startGame: opts.StartGame,
		minWidth:  minW,
		minHeight: minH,
	}, nil
}

func newSink(cfg config.Config, bell io.Writer, logger *slog.Logger) audio.Sink {
	if cfg.Mute {
		return audio.NopSink{}
	}
	if bell == nil {
		bell = os.Stderr
	}
	return audio.MultiSink{
		audio.NewBellSink(bell, cfg.Cues()),
		audio.LogSink{Logger: logger},
	}
}

func assetFS(dir string) fs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}

// newRand seeds from seed, or from the clock when seed is zero.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}
