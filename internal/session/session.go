package session

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
)

// ChangeKind says what a Change did.
type ChangeKind uint8

const (
	ChangeSubmitted ChangeKind = iota + 1
	ChangeIgnored
	ChangeRecalibrating
	ChangeCommitted
	ChangeModeToggled
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSubmitted:
		return "submitted"
	case ChangeIgnored:
		return "ignored"
	case ChangeRecalibrating:
		return "recalibrating"
	case ChangeCommitted:
		return "committed"
	case ChangeModeToggled:
		return "mode-toggled"
	}
	return "unknown"
}

// Change is reported to observers after every state transition.
type Change struct {
	Kind  ChangeKind
	Text  string // submitted or ignored text
	State State  // state after the change
}

// Session owns one State. Every method, and every callback handed to the
// Scheduler, must run on the same goroutine.
type Session struct {
	id        string
	state     State
	delays    Delays
	sched     Scheduler
	log       *zap.Logger
	observers []func(Change)
}

type Option func(*Session)

func WithDelays(d Delays) Option { return func(s *Session) { s.delays = d } }

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSeed sets the phrase classified for the first mood.
func WithSeed(seed string) Option {
	return func(s *Session) { s.state.Current = intent.Classify(seed) }
}

func WithDisplayMode(m model.DisplayMode) Option {
	return func(s *Session) {
		if m == model.Light {
			s.state.Mode = model.Light
		}
	}
}

// WithObserver registers fn to be called after each Change.
func WithObserver(fn func(Change)) Option {
	return func(s *Session) { s.observers = append(s.observers, fn) }
}

// New creates a session in the dark display mode at the seed phrase's mood.
func New(sched Scheduler, opts ...Option) *Session {
	s := &Session{
		id:     uuid.New().String(),
		state:  NewState(intent.SeedPhrase, model.Dark),
		delays: DefaultDelays(),
		sched:  sched,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(zap.String("session_id", s.id))
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State { return s.state }

func (s *Session) Theme() model.ThemeConfig { return s.state.Theme() }

// SetInput replaces the editable text, as typing or picking a hint does.
func (s *Session) SetInput(text string) { s.state = s.state.WithInput(text) }

// Submit puts text in the input and starts the submit cycle. Blank text is a
// silent no-op that leaves the input alone. A submission while another is in
// flight is ignored and reported as ChangeIgnored. It reports whether the
// cycle started.
func (s *Session) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if s.state.Busy() {
		s.log.Debug("submission ignored while busy",
			zap.String("text", text),
			zap.Stringer("phase", s.state.Phase()))
		s.notify(Change{Kind: ChangeIgnored, Text: text, State: s.state})
		return false
	}

	next, timer := s.state.WithInput(text).Submit(s.delays)
	if timer == nil {
		return false
	}
	s.state = next
	s.log.Debug("submitted",
		zap.String("text", text),
		zap.Stringer("from", s.state.Current.Mood),
		zap.Stringer("to", s.state.Next.Mood))
	s.notify(Change{Kind: ChangeSubmitted, Text: text, State: s.state})
	s.schedule(timer)
	return true
}

// ToggleDisplayMode flips dark and light at any phase.
func (s *Session) ToggleDisplayMode() {
	s.state = s.state.ToggleDisplayMode()
	s.log.Debug("display mode toggled", zap.String("mode", string(s.state.Mode)))
	s.notify(Change{Kind: ChangeModeToggled, State: s.state})
}

func (s *Session) schedule(t *Timer) {
	ev := t.Event
	s.sched.Schedule(t.After, func() { s.fire(ev) })
}

func (s *Session) fire(ev Event) {
	prev := s.state
	next, timer := s.state.Fire(ev, s.delays)
	s.state = next

	switch {
	case !prev.Recalibrating && next.Recalibrating:
		s.log.Debug("recalibrating", zap.Stringer("to", next.Next.Mood))
		s.notify(Change{Kind: ChangeRecalibrating, State: next})
	case prev.Processing && !next.Processing:
		s.log.Info("mood committed",
			zap.Stringer("from", prev.Current.Mood),
			zap.Stringer("to", next.Current.Mood),
			zap.String("mode", string(next.Mode)))
		s.notify(Change{Kind: ChangeCommitted, State: next})
	}
	if timer != nil {
		s.schedule(timer)
	}
}

func (s *Session) notify(c Change) {
	for _, fn := range s.observers {
		fn(c)
	}
}
