package ui

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/chameleon/internal/intent"
	"github.com/idilsaglam/chameleon/internal/model"
	"github.com/idilsaglam/chameleon/internal/session"
)

// fireMsg carries a session timer callback back onto the update loop.
type fireMsg struct{ fire func() }

// tickScheduler turns session timers into tea.Tick commands. Callbacks run
// inside Update, so the session is only ever touched by the event loop.
type tickScheduler struct {
	pending []tea.Cmd
}

func (t *tickScheduler) Schedule(d time.Duration, fire func()) {
	t.pending = append(t.pending, tea.Tick(d, func(time.Time) tea.Msg { return fireMsg{fire: fire} }))
}

func (t *tickScheduler) flush() tea.Cmd {
	if len(t.pending) == 0 {
		return nil
	}
	cmd := tea.Batch(t.pending...)
	t.pending = nil
	return cmd
}

type keyMap struct {
	Submit   key.Binding
	NextHint key.Binding
	PrevHint key.Binding
	Toggle   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.NextHint, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.NextHint, k.PrevHint},
		{k.Toggle, k.Help, k.Quit},
	}
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sync mind")),
		NextHint: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next hint")),
		PrevHint: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev hint")),
		Toggle:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "dark/light")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "exit system")),
	}
}

// Options configure the dashboard.
type Options struct {
	Seed          string
	Mode          model.DisplayMode
	Delays        session.Delays
	ShowConsole   bool
	AmbientEmojis bool
	Logger        *zap.Logger
}

// Dashboard is the Bubble Tea model for the adaptive dashboard.
type Dashboard struct {
	sess  *session.Session
	sched *tickScheduler

	input textinput.Model
	spin  spinner.Model
	help  help.Model
	keys  keyMap

	hint          int // index into intent.Hints, -1 before the first pick
	width, height int

	showConsole bool
	ambient     bool
}

func NewDashboard(opts Options) Dashboard {
	if opts.Seed == "" {
		opts.Seed = intent.SeedPhrase
	}
	if opts.Delays == (session.Delays{}) {
		opts.Delays = session.DefaultDelays()
	}
	sched := &tickScheduler{}
	sess := session.New(sched,
		session.WithSeed(opts.Seed),
		session.WithDisplayMode(opts.Mode),
		session.WithDelays(opts.Delays),
		session.WithLogger(opts.Logger),
	)

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = "Describe your current mood or state of mind..."
	ti.CharLimit = 200
	ti.Focus()

	return Dashboard{
		sess:        sess,
		sched:       sched,
		input:       ti,
		spin:        spinner.New(),
		help:        help.New(),
		keys:        defaultKeys(),
		hint:        -1,
		width:       80,
		height:      24,
		showConsole: opts.ShowConsole,
		ambient:     opts.AmbientEmojis,
	}
}

// Session exposes the underlying session, mostly for tests.
func (m Dashboard) Session() *session.Session { return m.sess }

// Run starts the dashboard full screen and blocks until the user exits.
func Run(opts Options) error {
	p := tea.NewProgram(NewDashboard(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Dashboard) Init() tea.Cmd { return textinput.Blink }

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case fireMsg:
		wasRecalibrating := m.sess.State().Recalibrating
		msg.fire()
		st := m.sess.State()
		if st.InputText != m.input.Value() {
			m.input.SetValue(st.InputText)
		}
		cmds := []tea.Cmd{m.sched.flush()}
		if st.Recalibrating && !wasRecalibrating {
			m.spin.Spinner = loaderSpinner(st.Next.Mood)
			cmds = append(cmds, m.spin.Tick)
		}
		return m, tea.Batch(cmds...)

	case spinner.TickMsg:
		if !m.sess.State().Recalibrating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.sess.ToggleDisplayMode()
			return m, nil
		case key.Matches(msg, m.keys.NextHint):
			m.pickHint(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevHint):
			m.pickHint(-1)
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			m.sess.Submit(m.input.Value())
			return m, m.sched.flush()
		case key.Matches(msg, m.keys.Help) && m.input.Value() == "":
			// "?" only toggles help on an empty input; otherwise it is typed.
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetInput(m.input.Value())
	return m, cmd
}

// pickHint moves through the quick hints and fills the input as if typed.
func (m *Dashboard) pickHint(step int) {
	n := len(intent.Hints)
	if m.hint < 0 && step < 0 {
		m.hint = 0
	}
	m.hint = ((m.hint+step)%n + n) % n
	m.input.SetValue(intent.Hints[m.hint])
	m.input.CursorEnd()
	m.sess.SetInput(m.input.Value())
}

// loaderSpinner cycles the mood's loader symbols.
func loaderSpinner(mood model.Mood) spinner.Spinner {
	symbols := mood.LoaderSymbols()
	frames := make([]string, len(symbols))
	for i := range symbols {
		rotated := append(append([]string{}, symbols[i:]...), symbols[:i]...)
		frames[i] = strings.Join(rotated, "   ")
	}
	return spinner.Spinner{Frames: frames, FPS: time.Second / 4}
}

func (m Dashboard) View() string {
	st := m.sess.State()
	styles := NewStyles(st.Theme())
	body := styles
	if st.Recalibrating {
		body = styles.Dimmed()
	}
	w := m.width - 2
	if w < 20 {
		w = 20
	}

	sections := []string{
		m.header(styles, st, w),
		m.inputBar(styles, st, w),
		m.hintLine(styles),
	}
	if m.ambient {
		if amb := st.Current.Ambient(); len(amb) > 0 {
			sections = append(sections, styles.Muted.Render(strings.Join(amb, "  ")))
		}
	}
	if st.Recalibrating {
		sections = append(sections, m.loader(styles, st, w))
	}
	sections = append(sections, RenderLayout(st.Current, body, w))
	if m.showConsole && st.Current.Mood != model.MoodPower {
		sections = append(sections, consolePanel(body, st.Current, w))
	}
	sections = append(sections, m.help.View(m.keys))

	return styles.Page.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Dashboard) header(s Styles, st session.State, w int) string {
	modeBadge := "☾ DARK"
	if st.Mode == model.Light {
		modeBadge = "☀ LIGHT"
	}
	if st.Current.Mood == model.MoodPower {
		modeBadge = "⚡ POWER"
	}
	left := s.Heading("Chameleon") + "  " + s.Muted.Render("ADAPTIVE INTERFACE v1")
	right := s.Badge.Render(strings.ToUpper(st.Current.Mood.String())) + " " + s.Muted.Render(modeBadge)
	gap := w - visibleWidth(left) - visibleWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Dashboard) inputBar(s Styles, st session.State, w int) string {
	action := s.Accent.Render("SYNC MIND ⏎")
	if st.Processing {
		action = s.Muted.Render("PROCESSING...")
	}
	return s.Box("", m.input.View()+"\n"+action, w)
}

func (m Dashboard) hintLine(s Styles) string {
	parts := make([]string, len(intent.Hints))
	for i, h := range intent.Hints {
		if i == m.hint {
			parts[i] = s.Badge.Render(h)
		} else {
			parts[i] = s.Muted.Render(h)
		}
	}
	return strings.Join(parts, s.Muted.Render(" · "))
}

func (m Dashboard) loader(s Styles, st session.State, w int) string {
	box := s.Panel.Padding(1, 4).Render(
		m.spin.View() + "\n\n" + s.Label("recalibrating → "+st.Next.Mood.String()))
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, box)
}

// consolePanel shows the raw mood result as the engine produced it.
func consolePanel(s Styles, r model.MoodResult, w int) string {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		b = []byte(err.Error())
	}
	body := s.Muted.Render(string(b)) + "\n\n" +
		s.Text.Render("SYSTEM MOOD ") + s.Accent.Render(strings.ToUpper(r.Mood.String()))
	return s.Box("Raw Neural Output", body, w)
}
