// Package config holds runtime settings. Values are layered: built-in
// defaults, then an optional YAML file, then PETIT_* environment variables.
// Command-line flags are applied last by the cmd package.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/antigravity/petit/internal/audio"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Size is a surface size in pixels.
type Size struct {
	Width  int `yaml:"width" env:"WIDTH"`
	Height int `yaml:"height" env:"HEIGHT"`
}

// Config holds all runtime settings.
type Config struct {
	Locale string `yaml:"locale" env:"PETIT_LOCALE"`

	// RoundDuration is the countdown length of every session.
	RoundDuration time.Duration `yaml:"round_duration" env:"PETIT_ROUND_DURATION"`
	// WarnFraction places the low-time warning as a fraction of the round.
	WarnFraction float64 `yaml:"warn_fraction" env:"PETIT_WARN_FRACTION"`
	// SettleDelay separates an outcome from the result screen.
	SettleDelay   time.Duration `yaml:"settle_delay" env:"PETIT_SETTLE_DELAY"`
	TimerInterval time.Duration `yaml:"timer_interval" env:"PETIT_TIMER_INTERVAL"`
	FrameRate     int           `yaml:"frame_rate" env:"PETIT_FRAME_RATE"`
	// RepeatGrace is how long a held key may go quiet before it counts as
	// released, for terminals that do not report key releases.
	RepeatGrace time.Duration `yaml:"repeat_grace" env:"PETIT_REPEAT_GRACE"`

	Phone Size `yaml:"phone" envPrefix:"PETIT_PHONE_"`
	TV    Size `yaml:"tv" envPrefix:"PETIT_TV_"`

	Mute     bool     `yaml:"mute" env:"PETIT_MUTE"`
	BellCues []string `yaml:"bell_cues" env:"PETIT_BELL_CUES" envSeparator:","`
	AssetDir string   `yaml:"asset_dir" env:"PETIT_ASSET_DIR"`

	LogFile  string `yaml:"log_file" env:"PETIT_LOG_FILE"`
	LogLevel string `yaml:"log_level" env:"PETIT_LOG_LEVEL"`

	// Seed fixes the random source. Zero picks a time-based seed.
	Seed int64 `yaml:"seed" env:"PETIT_SEED"`
}

// Default returns a Config with the standard round timings.
func Default() Config {
	return Config{
		Locale:        "en",
		RoundDuration: 5 * time.Second,
		WarnFraction:  0.4,
		SettleDelay:   500 * time.Millisecond,
		TimerInterval: 50 * time.Millisecond,
		FrameRate:     30,
		RepeatGrace:   120 * time.Millisecond,
		Phone:         Size{Width: 36, Height: 48},
		TV:            Size{Width: 64, Height: 36},
		BellCues:      []string{string(audio.CueSuccess), string(audio.CueFail)},
		LogLevel:      "info",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// FrameInterval returns the animation tick spacing.
func (c Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Cues returns the parsed bell cues. Unknown names are skipped; Validate
// reports them.
func (c Config) Cues() []audio.Cue {
	var cues []audio.Cue
	for _, name := range c.BellCues {
		if cue, ok := audio.ParseCue(strings.TrimSpace(name)); ok {
			cues = append(cues, cue)
		}
	}
	return cues
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalid, c.Locale, err)
	}
	if c.RoundDuration <= 0 {
		return fmt.Errorf("%w: round_duration must be positive", ErrInvalid)
	}
	if c.WarnFraction <= 0 || c.WarnFraction >= 1 {
		return fmt.Errorf("%w: warn_fraction must be between 0 and 1", ErrInvalid)
	}
	if c.SettleDelay <= 0 {
		return fmt.Errorf("%w: settle_delay must be positive", ErrInvalid)
	}
	if c.TimerInterval <= 0 {
		return fmt.Errorf("%w: timer_interval must be positive", ErrInvalid)
	}
	if c.FrameRate <= 0 || c.FrameRate > 120 {
		return fmt.Errorf("%w: frame_rate must be in 1..120", ErrInvalid)
	}
	if c.RepeatGrace <= 0 {
		return fmt.Errorf("%w: repeat_grace must be positive", ErrInvalid)
	}
	for name, s := range map[string]Size{"phone": c.Phone, "tv": c.TV} {
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("%w: %s size must be positive, got %dx%d", ErrInvalid, name, s.Width, s.Height)
		}
	}
	for _, name := range c.BellCues {
		if _, ok := audio.ParseCue(strings.TrimSpace(name)); !ok {
			return fmt.Errorf("%w: unknown bell cue %q", ErrInvalid, name)
		}
	}
	if !slices.Contains(logLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("%w: log_level must be one of %s", ErrInvalid, strings.Join(logLevels, ", "))
	}
	return nil
}
