package manager

import (
	"time"

	"torus-snake/game"
)

// PacerState is the run state of a FramePacer
type PacerState int

const (
	Running PacerState = iota
	Paused
)

func (s PacerState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// FramePacer turns variable frame deltas into fixed simulation ticks.
// At most one tick is taken per Update; any further backlog is dropped
// so the snake never jumps forward in a burst after a stall.
type FramePacer struct {
	interval    time.Duration
	accumulated time.Duration
	state       PacerState
	ticks       int
}

// NewFramePacer creates a running pacer that ticks every interval
func NewFramePacer(interval time.Duration) *FramePacer {
	if interval <= 0 {
		panic("manager: tick interval must be positive")
	}
	return &FramePacer{interval: interval}
}

// TogglePause switches between running and paused
func (p *FramePacer) TogglePause() {
	if p.state == Running {
		p.state = Paused
	} else {
		p.state = Running
	}
}

func (p *FramePacer) State() PacerState {
	return p.state
}

func (p *FramePacer) Paused() bool {
	return p.state == Paused
}

// Ticks returns how many steps the pacer has taken
func (p *FramePacer) Ticks() int {
	return p.ticks
}

// Accumulated returns the time banked toward the next tick
func (p *FramePacer) Accumulated() time.Duration {
	return p.accumulated
}

// Update banks elapsed time and steps g once the bank exceeds the interval.
// Paused pacers bank nothing. A finished game is never stepped.
// It reports whether a step was taken and its outcome.
func (p *FramePacer) Update(g *game.Game, elapsed time.Duration) (game.Outcome, bool) {
	if p.state == Paused || g.Over() {
		return game.OutcomeIdle, false
	}

	p.accumulated += elapsed
	if p.accumulated <= p.interval {
		return game.OutcomeIdle, false
	}

	// One step per update. Whole intervals still banked are dropped,
	// keeping only the phase toward the next tick.
	p.accumulated = (p.accumulated - p.interval) % p.interval

	g.AllowTurn()
	p.ticks++
	return g.Step(), true
}
