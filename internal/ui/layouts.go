package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/chameleon/internal/model"
)

// frame is what a layout needs to draw itself.
type frame struct {
	st    Styles
	mood  model.MoodResult
	width int
}

// layout draws the dashboard body for one mood.
type layout interface {
	render(f frame) string
}

type (
	intelligentLayout struct{}
	happyLayout       struct{}
	sadLayout         struct{}
	angryLayout       struct{}
	powerLayout       struct{}
)

var layouts = [...]layout{
	model.MoodIntelligent: intelligentLayout{},
	model.MoodHappy:       happyLayout{},
	model.MoodSad:         sadLayout{},
	model.MoodAngry:       angryLayout{},
	model.MoodPower:       powerLayout{},
}

// Fails to compile unless there is exactly one layout per mood.
var _ = [1]struct{}{}[len(layouts)-model.NumMoods]

// RenderLayout draws the body for r's mood at the given width.
func RenderLayout(r model.MoodResult, st Styles, width int) string {
	l := layouts[model.MoodIntelligent]
	if int(r.Mood) < len(layouts) {
		l = layouts[r.Mood]
	}
	return l.render(frame{st: st, mood: r, width: width})
}

// columns lays blocks side by side when there is room, otherwise stacks them.
func columns(width int, blocks ...func(w int) string) string {
	const gap = 1
	n := len(blocks)
	if n == 0 {
		return ""
	}
	if width < 40*n {
		out := make([]string, n)
		for i, b := range blocks {
			out[i] = b(width)
		}
		return lipgloss.JoinVertical(lipgloss.Left, out...)
	}
	w := (width - gap*(n-1)) / n
	out := make([]string, 0, 2*n-1)
	for i, b := range blocks {
		if i > 0 {
			out = append(out, strings.Repeat(" ", gap))
		}
		out = append(out, b(w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}

func tiles(st Styles, glyphs []string) string {
	cells := make([]string, len(glyphs))
	for i, g := range glyphs {
		cells[i] = st.Panel.Padding(0, 1).Render(g)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// --- intelligent ---

func (intelligentLayout) render(f frame) string {
	st, w := f.st, f.width
	var b strings.Builder
	b.WriteString(st.Heading("Emotional Intelligence") + "\n")
	b.WriteString(st.Muted.Render("SUBCONSCIOUS PROCESSING GRID") + "\n\n")
	b.WriteString(tiles(st, f.mood.Mood.Tiles()) + "\n\n")
	for _, m := range []struct {
		label string
		pct   int
	}{{"Stability", 82}, {"Clarity", 91}, {"Focus", 76}, {"Energy", 64}} {
		b.WriteString(st.Meter(fmt.Sprintf("%-9s", strings.ToUpper(m.label)), m.pct, w-4) + "\n")
	}
	return st.Box("", strings.TrimRight(b.String(), "\n"), w)
}

// --- happy ---

func (happyLayout) render(f frame) string {
	st := f.st
	joy := func(w int) string {
		body := st.Heading("98%") + "\n" + st.Meter("JOY", 98, w-4) + "\n" +
			st.Muted.Render("Vibe Check: Optimal 😎")
		return st.Box("Joy Level", body, w)
	}
	playground := func(w int) string {
		body := strings.Join([]string{"🍦", "🎈", "🍭", "🧸", "🎨", "🪁", "🌈", "🍕"}, " ")
		return st.Box("Interactive Playground", body, w)
	}
	reactions := func(w int) string {
		var cells []string
		for _, r := range []struct{ glyph, label string }{
			{"🚀", "BOOST"}, {"💎", "SPARKLE"}, {"🔮", "GLOW"}, {"☁️", "FLOAT"},
		} {
			cells = append(cells, r.glyph+" "+st.Accent.Render(r.label))
		}
		return st.Box("Reactions", strings.Join(cells, "  "), w)
	}
	badges := func(w int) string {
		return st.Box("Unlocked Essence", "🥇 🏆 🎖️", w)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		columns(f.width, joy, playground),
		columns(f.width, reactions, badges),
	)
}

// --- sad ---

func (sadLayout) render(f frame) string {
	st := f.st
	nowPlaying := func(w int) string {
		body := st.Heading("Ethereal Drift") + "\n" +
			st.Accent.Render("Subconscious Echoes") + "\n" +
			st.Accent.Render(ProgressBar(64, w-12, st.Fill, st.Empty)) + "\n" +
			st.Muted.Render("02:14 / 04:45")
		return st.Box("Now Playing", body, w)
	}
	calm := func(w int) string {
		return st.Box("Calm Meter", st.Meter("SOFT", 75, w-4), w)
	}
	playlists := func(w int) string {
		var lines []string
		for _, p := range []string{"Soft Comfort", "Healing Vibes", "Rainy Night", "Alone Time"} {
			lines = append(lines, st.Text.Render(strings.ToUpper(p))+"  "+st.Muted.Render("curated comfort"))
		}
		return st.Box("Playlists", strings.Join(lines, "\n"), w)
	}
	genres := func(w int) string {
		return st.Box("Genre Tiles", tiles(st, []string{"Lo-fi", "Ambient", "Acoustic", "Piano"}), w)
	}
	quote := func(w int) string {
		body := st.Text.Italic(true).Render(`"Sometimes you need to let the rain wash away the noise."`) + "\n" +
			st.Muted.Render("Track: Whisper in the Dark")
		return st.Box("", body, w)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		columns(f.width, nowPlaying, calm),
		columns(f.width, playlists, genres),
		quote(f.width),
	)
}

// --- angry ---

func (angryLayout) render(f frame) string {
	st := f.st
	impact := func(w int) string {
		body := st.Heading("Release Impact") + "\n" + st.Muted.Render("tap to vent intensity")
		return st.Box("", body, w)
	}
	rage := func(w int) string {
		body := st.Text.Render("SYSTEM INTENSITY ") + st.Accent.Render("CRITICAL") + "\n" +
			st.Meter("RAGE", 94, w-4)
		return st.Box("", body, w)
	}
	rhythm := func(w int) string {
		body := st.Accent.Render("Breathe") + "\n" +
			strings.Join([]string{"RELEASE", "STABILIZE", "RESET"}, "  ·  ")
		return st.Box("Control Rhythm", body, w)
	}
	alert := func(w int) string {
		body := st.Text.Render("Neural spikes detected in sector 4-G. Immediate stabilizing actions recommended.")
		return st.Box("Intensity Alert", body, w)
	}
	pulse := func(w int) string {
		lines := []string{
			"[00:01] spike 212 bpm",
			"[00:04] spike 198 bpm",
			"[00:09] plateau 176 bpm",
			"[00:13] cooling 151 bpm",
		}
		for i, l := range lines {
			lines[i] = st.Muted.Render(l)
		}
		return st.Box("Pulse Log", strings.Join(lines, "\n"), w)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		columns(f.width, impact, rage),
		columns(f.width, rhythm, alert),
		pulse(f.width),
	)
}

// --- power ---

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

func sparkline(values []int, width int) string {
	var b strings.Builder
	for i := 0; i < width; i++ {
		v := values[i%len(values)]
		b.WriteRune(sparkRunes[v*(len(sparkRunes)-1)/100])
	}
	return b.String()
}

func (powerLayout) render(f frame) string {
	st := f.st
	params := func(w int) string {
		var lines []string
		for _, p := range []struct {
			label string
			pct   int
		}{{"Neural Gain", 88}, {"Data Density", 97}, {"Refresh Rate", 72}, {"Logic Latency", 12}} {
			lines = append(lines, st.Meter(fmt.Sprintf("%-13s", strings.ToUpper(p.label)), p.pct, w-4))
		}
		return st.Box("System Parameters", strings.Join(lines, "\n"), w)
	}
	chart := func(title string, series []int) func(w int) string {
		return func(w int) string {
			return st.Box(title, st.Accent.Render(sparkline(series, w-4)), w)
		}
	}
	table := func(w int) string {
		header := fmt.Sprintf("%-8s %8s %7s %-7s %-5s %5s", "TICKER", "VOL", "DELTA", "STAT", "REF", "LOAD")
		rows := []string{st.Muted.Render(header)}
		for _, r := range [][6]string{
			{"NX-01", "4.21M", "+2.4%", "SYNCED", "0x1F", "64%"},
			{"NX-02", "3.87M", "-0.8%", "SYNCED", "0x2A", "71%"},
			{"NX-03", "5.02M", "+5.1%", "SYNCED", "0x3C", "88%"},
			{"NX-04", "2.66M", "+0.3%", "SYNCED", "0x44", "42%"},
		} {
			rows = append(rows, st.Text.Render(fmt.Sprintf("%-8s %8s %7s %-7s %-5s %5s", r[0], r[1], r[2], r[3], r[4], r[5])))
		}
		return st.Box("Active Node Filter", strings.Join(rows, "\n"), w)
	}
	console := func(w int) string {
		var lines []string
		for i := 0; i < 6; i++ {
			lines = append(lines, st.Accent.Render(fmt.Sprintf("[SYS_%d]", i))+
				st.Muted.Render(fmt.Sprintf(" INITIALIZING_STREAM_%04X... OK", 0x3A7F+i*0x111)))
		}
		lines = append(lines, st.Accent.Render("_ WAITING_FOR_INPUT..."), "",
			st.Muted.Render("MODE_STATUS ")+st.Accent.Render("BEAST_MODE_ACTIVE"))
		return st.Box("Neural Console", strings.Join(lines, "\n"), w)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		columns(f.width,
			params,
			chart("Volumetric Delta", []int{20, 35, 30, 55, 70, 62, 80, 95}),
			chart("YoY Performance", []int{40, 42, 50, 48, 60, 66, 71, 77}),
		),
		columns(f.width,
			table,
			chart("Cluster Heatmap", []int{90, 10, 75, 30, 60, 5, 85, 45}),
			chart("Network Topology", []int{15, 65, 25, 95, 35, 55, 5, 75}),
		),
		console(f.width),
	)
}
