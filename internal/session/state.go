// Package session holds the dashboard's interactive state and the timed
// transitions between moods.
//
// State is a plain value with pure transition methods. Session owns one State,
// hands the timers those transitions ask for to a Scheduler, and reports each
// change to observers.
package session

import (
	"strings"
	"time"

	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/theme"
)

// Phase is where a session is in the submit cycle.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseProcessing
	PhaseRecalibrating
)

func (p Phase) String() string {
	switch p {
	case PhaseProcessing:
		return "processing"
	case PhaseRecalibrating:
		return "recalibrating"
	default:
		return "idle"
	}
}

// Delays are the fixed waits of the submit cycle.
type Delays struct {
	// Thinking is the wait before recalibration starts on a mood change.
	Thinking time.Duration
	// Recalibrate is how long the loader shows before the new mood commits.
	Recalibrate time.Duration
	// Refresh is the wait before committing when the mood is unchanged.
	Refresh time.Duration
}

func DefaultDelays() Delays {
	return Delays{
		Thinking:    300 * time.Millisecond,
		Recalibrate: 1200 * time.Millisecond,
		Refresh:     800 * time.Millisecond,
	}
}

// Event is what a Timer delivers when it fires.
type Event uint8

const (
	EventRecalibrate Event = iota + 1
	EventCommit
)

func (e Event) String() string {
	switch e {
	case EventRecalibrate:
		return "recalibrate"
	case EventCommit:
		return "commit"
	}
	return "unknown"
}

// Timer asks the owner to call Fire(Event) after the given delay.
type Timer struct {
	After time.Duration
	Event Event
}

// State is one session's interactive state.
type State struct {
	InputText     string
	Current       model.MoodResult
	Mode          model.DisplayMode
	Processing    bool
	Recalibrating bool

	// Next is the classified result waiting to be committed.
	// Only meaningful while Processing.
	Next model.MoodResult
}

// NewState starts a session at the mood of seed.
func NewState(seed string, mode model.DisplayMode) State {
	if mode != model.Light {
		mode = model.Dark
	}
	return State{Current: intent.Classify(seed), Mode: mode}
}

func (s State) Phase() Phase {
	switch {
	case s.Recalibrating:
		return PhaseRecalibrating
	case s.Processing:
		return PhaseProcessing
	}
	return PhaseIdle
}

// Theme resolves the current mood in the current display mode.
func (s State) Theme() model.ThemeConfig {
	return theme.Resolve(s.Current, s.Mode)
}

// WithInput replaces the editable text.
func (s State) WithInput(text string) State {
	s.InputText = text
	return s
}

// ToggleDisplayMode flips dark and light. It never touches the mood or a
// transition in flight.
func (s State) ToggleDisplayMode() State {
	s.Mode = s.Mode.Toggle()
	return s
}

// Busy reports whether a submission is waiting on a timer.
func (s State) Busy() bool { return s.Processing }

// Submit classifies InputText and starts the submit cycle.
//
// Blank input and submissions made while a previous one is still in flight
// are ignored: the state comes back unchanged with a nil Timer.
func (s State) Submit(d Delays) (State, *Timer) {
	if strings.TrimSpace(s.InputText) == "" || s.Processing {
		return s, nil
	}
	s.Next = intent.Classify(s.InputText)
	s.Processing = true
	if s.Next.Mood != s.Current.Mood {
		return s, &Timer{After: d.Thinking, Event: EventRecalibrate}
	}
	return s, &Timer{After: d.Refresh, Event: EventCommit}
}

// Fire applies a timer event. Events that do not fit the current phase are
// dropped.
func (s State) Fire(ev Event, d Delays) (State, *Timer) {
	if !s.Processing {
		return s, nil
	}
	switch ev {
	case EventRecalibrate:
		if s.Recalibrating {
			return s, nil
		}
		s.Recalibrating = true
		return s, &Timer{After: d.Recalibrate, Event: EventCommit}
	case EventCommit:
		s.Current = s.Next
		s.Next = model.MoodResult{}
		s.Processing = false
		s.Recalibrating = false
		s.InputText = ""
	}
	return s, nil
}
