package timer

import (
	"math"
	"time"
)

// Stage is the visual stage of the countdown gauge.
type Stage int

const (
	StageFull Stage = iota // 5
	StageCalm              // 4, 3
	StageWarn              // 2
	StageLast              // 1
	StageDone              // 0
)

// DisplaySeconds is the whole-second value shown on the gauge.
func DisplaySeconds(remaining time.Duration) int {
	return int(math.Ceil(remaining.Seconds()))
}

// StageFor maps remaining time to a gauge stage.
func StageFor(remaining time.Duration) Stage {
	switch s := DisplaySeconds(remaining); {
	case s >= 5:
		return StageFull
	case s >= 3:
		return StageCalm
	case s == 2:
		return StageWarn
	case s == 1:
		return StageLast
	default:
		return StageDone
	}
}
