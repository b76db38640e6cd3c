package pattern

import (
	"time"

	"github.com/vovakirdan/tui-patterns/internal/core"
)

// Renderer paints a snapshot. It never calls back into the game.
type Renderer interface {
	Draw(v Snapshot)
}

// FrameResult reports what happened during one frame.
type FrameResult struct {
	Quit        bool
	Regenerated bool      // A new level replaced a completed one
	Outcomes    []Outcome // Outcomes of handled events, OutcomeNone omitted
}

// Loop drives a State one frame at a time.
type Loop struct {
	state  *State
	frames uint64
}

// NewLoop creates a loop around a state.
func NewLoop(state *State) *Loop {
	return &Loop{state: state}
}

// State returns the loop's game state.
func (l *Loop) State() *State {
	return l.state
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one iteration: timers first, then rendering, then the input
// gathered since the previous frame. A quit event stops dispatch; events
// after it are dropped. r may be nil.
func (l *Loop) Frame(now time.Time, events []core.Event, r Renderer) FrameResult {
	l.frames++

	res := FrameResult{
		Regenerated: l.state.Advance(now),
	}

	if r != nil {
		r.Draw(l.state.Snapshot())
	}

	for _, ev := range events {
		out := l.state.Handle(ev, now)
		if out.Kind == OutcomeNone {
			continue
		}
		res.Outcomes = append(res.Outcomes, out)
		if out.Kind == OutcomeQuit {
			res.Quit = true
			break
		}
	}

	return res
}
