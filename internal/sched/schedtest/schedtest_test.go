package schedtest

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"

	"github.com/antigravity/petit/internal/sched"
)

func TestAdvanceFiresInDueOrder(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := sched.New()
	d := New(clock, s)
	start := clock.Now()

	var order []string
	var firedAt []time.Duration
	sc := s.NewScope()
	sc.After(300*time.Millisecond, func() {
		order = append(order, "late")
		firedAt = append(firedAt, clock.Since(start))
	})
	sc.After(100*time.Millisecond, func() {
		order = append(order, "early")
		firedAt = append(firedAt, clock.Since(start))
	})

	d.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"early"}, order)

	d.Advance(time.Second)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 300 * time.Millisecond}, firedAt)
	assert.Equal(t, 1200*time.Millisecond, clock.Since(start))
}

func TestAdvanceRepeatsAndChains(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := sched.New()
	d := New(clock, s)

	sc := s.NewScope()
	ticks := 0
	sc.Every(100*time.Millisecond, func() { ticks++ })
	chained := false
	sc.After(150*time.Millisecond, func() {
		sc.After(100*time.Millisecond, func() { chained = true })
	})

	d.Advance(time.Second)
	assert.Equal(t, 10, ticks)
	assert.True(t, chained)

	sc.Cancel()
	d.Advance(time.Second)
	assert.Equal(t, 10, ticks)
}
