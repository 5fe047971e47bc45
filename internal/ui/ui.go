package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/morse-tui/internal/morse"
	"github.com/DaanHessen/morse-tui/internal/util"
)

const (
	viewTranslate = "translate"
	viewChart     = "chart"
	viewSettings  = "settings"
	viewHelp      = "help"
)

const (
	directionEncode = "encode"
	directionDecode = "decode"
)

// Cycle presets for the string-valued settings rows. Free-form editing is
// intentionally out: delimiters interact with decode splitting, so the UI
// offers combinations that are known to round-trip.
var (
	replacementPresets = []string{"?", "#", "*", "<?>"}
	letterDelimPresets = []string{" ", "_", "|", ""}
	wordDelimPresets   = []string{" / ", "|", " // ", "  "}
)

const settingsRows = 6 // policy, replacement, preserve case, letter delim, word delim, theme

type model struct {
	cfg       morse.Config
	tr        *morse.Translator
	theme     string
	version   string
	direction string
	view      string

	input    string
	output   string
	transErr string

	width  int
	height int

	// settings cursor
	settingsIndex int

	// chart scrolling
	chartRendered string
	chartScroll   int
}

func initialModel(cfg util.Config, version string) model {
	return model{
		cfg:       cfg.Codec(),
		tr:        morse.NewTranslator(),
		theme:     cfg.Theme,
		version:   version,
		direction: directionEncode,
		view:      viewTranslate,
	}
}

// translate recomputes output from the current input, direction and config.
// Cheap enough to run on every keystroke.
func (m *model) translate() {
	m.transErr = ""
	var out string
	var err error
	if m.direction == directionEncode {
		out, err = m.tr.Encode(m.input, m.cfg)
	} else {
		out, err = m.tr.Decode(m.input, m.cfg)
	}
	if err != nil {
		m.output = ""
		m.transErr = err.Error()
		return
	}
	m.output = out
}

func (m *model) toggleDirection() {
	if m.direction == directionEncode {
		m.direction = directionDecode
	} else {
		m.direction = directionEncode
	}
	// Swapping sides keeps the session flowing: the previous result becomes
	// the next input when there is one.
	if m.output != "" {
		m.input = m.output
	}
	m.translate()
}

func (m *model) buildChart() {
	renderer, _ := glamour.NewTermRenderer(glamour.WithAutoStyle())
	rendered, err := renderer.Render(morse.Chart())
	if err != nil {
		rendered = morse.Chart()
	}
	m.chartRendered = rendered
	m.chartScroll = 0
}

func cyclePreset(presets []string, current string, step int) string {
	idx := 0
	for i, p := range presets {
		if p == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(presets)
	if idx < 0 {
		idx += len(presets)
	}
	return presets[idx]
}

func cyclePolicy(current morse.UnknownPolicy, step int) morse.UnknownPolicy {
	idx := 0
	for i, p := range morse.AllPolicies {
		if p == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(morse.AllPolicies)
	if idx < 0 {
		idx += len(morse.AllPolicies)
	}
	return morse.AllPolicies[idx]
}

// adjustSetting steps the selected settings row and retranslates.
func (m *model) adjustSetting(step int) {
	switch m.settingsIndex {
	case 0:
		m.cfg.Unknown = cyclePolicy(m.cfg.Unknown, step)
	case 1:
		m.cfg.Replacement = cyclePreset(replacementPresets, m.cfg.Replacement, step)
	case 2:
		m.cfg.PreserveCase = !m.cfg.PreserveCase
	case 3:
		m.cfg.LetterDelimiter = cyclePreset(letterDelimPresets, m.cfg.LetterDelimiter, step)
	case 4:
		m.cfg.WordDelimiter = cyclePreset(wordDelimPresets, m.cfg.WordDelimiter, step)
	case 5:
		m.theme = nextThemeName(m.theme, step)
	}
	m.translate()
}

func isRuneInput(k string) bool {
	return len([]rune(k)) == 1
}

// tea.Model implementation ---------------------------------------------------

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		k := msg.String()
		switch k {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			if m.view == viewHelp {
				m.view = viewTranslate
			} else {
				m.view = viewHelp
			}
			return m, nil
		case "f2":
			m.buildChart()
			m.view = viewChart
			return m, nil
		case "f3":
			m.view = viewSettings
			return m, nil
		}
		switch m.view {
		case viewChart:
			switch k {
			case "pgdown", "ctrl+f":
				m.chartScroll += 12
			case "pgup", "ctrl+b":
				m.chartScroll -= 12
			case "down", "j":
				m.chartScroll += 3
			case "up", "k":
				m.chartScroll -= 3
			case "home":
				m.chartScroll = 0
			case "end":
				m.chartScroll = 1 << 30
			case "esc", "q":
				m.view = viewTranslate
			}
			if m.chartScroll < 0 {
				m.chartScroll = 0
			}
			return m, nil
		case viewSettings:
			switch k {
			case "up", "k":
				if m.settingsIndex > 0 {
					m.settingsIndex--
				}
			case "down", "j":
				if m.settingsIndex < settingsRows-1 {
					m.settingsIndex++
				}
			case "left", "h":
				m.adjustSetting(-1)
			case "right", "l", "enter", " ":
				m.adjustSetting(1)
			case "d":
				m.cfg = morse.DefaultConfig()
				m.translate()
			case "esc", "q":
				m.view = viewTranslate
			}
			return m, nil
		case viewHelp:
			if k == "esc" || k == "q" {
				m.view = viewTranslate
			}
			return m, nil
		}
		// translate view
		switch k {
		case "tab":
			m.toggleDirection()
		case "ctrl+u":
			m.input = ""
			m.output = ""
			m.transErr = ""
		case "backspace":
			if len(m.input) > 0 {
				runes := []rune(m.input)
				m.input = string(runes[:len(runes)-1])
				m.translate()
			}
		case "esc":
			return m, tea.Quit
		default:
			if isRuneInput(k) {
				m.input += k
				m.translate()
			}
		}
	}
	return m, nil
}

func (m model) View() string {
	switch m.view {
	case viewChart:
		return m.renderChart()
	case viewSettings:
		return m.renderSettings()
	case viewHelp:
		return m.renderHelp()
	default:
		return m.renderTranslate()
	}
}

// Layout rendering -----------------------------------------------------------

func (m *model) usableWidth() int {
	w := m.width
	if w <= 0 {
		w = 100
	}
	return w
}

func (m *model) renderTopBar() string {
	p := paletteFor(m.theme)
	dir := "TEXT → MORSE"
	if m.direction == directionDecode {
		dir = "MORSE → TEXT"
	}
	left := strings.Join([]string{
		"MORSE",
		dir,
		"unknown:" + string(m.cfg.Unknown),
		m.theme,
	}, " • ")
	right := "v" + m.version
	w := m.usableWidth()
	gap := w - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(bar)
}

func (m *model) renderBottomBar() string {
	p := paletteFor(m.theme)
	hints := "[Tab] swap direction  [Ctrl+U] clear  [F1] help  [F2] chart  [F3] settings  [Esc] quit"
	line := lipgloss.NewStyle().Foreground(p.Muted).Render(hints)
	if m.transErr != "" {
		line += "\n" + lipgloss.NewStyle().Foreground(p.Warning).Render(m.transErr)
	}
	return line
}

func (m *model) renderTranslate() string {
	p := paletteFor(m.theme)
	w := m.usableWidth()
	panel := lipgloss.NewStyle().
		Width(w - 4).
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)
	label := lipgloss.NewStyle().Foreground(p.Muted)

	inLabel, outLabel := "Text", "Morse"
	if m.direction == directionDecode {
		inLabel, outLabel = "Morse", "Text"
	}
	in := m.input
	if in == "" {
		in = " "
	}
	out := m.output
	if out == "" {
		out = " "
	}
	outStyled := lipgloss.NewStyle().Foreground(p.Code).Render(out)

	body := lipgloss.JoinVertical(lipgloss.Left,
		label.Render(inLabel),
		panel.Render(lipgloss.NewStyle().Foreground(p.Text).Render(in)),
		label.Render(outLabel),
		panel.Render(outStyled),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.renderBottomBar())
}

func (m *model) renderChart() string {
	lines := strings.Split(m.chartRendered, "\n")
	if m.chartScroll > len(lines) {
		m.chartScroll = len(lines)
	}
	viewLines := lines
	availHeight := m.height - 3
	if availHeight > 5 && len(lines) > availHeight {
		if m.chartScroll+availHeight > len(lines) {
			m.chartScroll = len(lines) - availHeight
		}
		viewLines = lines[m.chartScroll : m.chartScroll+availHeight]
	}
	p := paletteFor(m.theme)
	footer := lipgloss.NewStyle().Foreground(p.Muted).Render("[↑/↓] scroll  [Esc] back")
	return m.renderTopBar() + "\n" + strings.Join(viewLines, "\n") + "\n" + footer
}

func (m *model) settingsValue(row int) string {
	switch row {
	case 0:
		return string(m.cfg.Unknown)
	case 1:
		return fmt.Sprintf("%q", m.cfg.Replacement)
	case 2:
		if m.cfg.PreserveCase {
			return "on"
		}
		return "off"
	case 3:
		return fmt.Sprintf("%q", m.cfg.LetterDelimiter)
	case 4:
		return fmt.Sprintf("%q", m.cfg.WordDelimiter)
	default:
		return m.theme
	}
}

func (m *model) renderSettings() string {
	p := paletteFor(m.theme)
	labels := []string{
		"Unknown symbols",
		"Replacement",
		"Preserve case",
		"Letter delimiter",
		"Word delimiter",
		"Theme",
	}
	var b strings.Builder
	b.WriteString(m.renderTopBar() + "\n\n")
	selected := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	normal := lipgloss.NewStyle().Foreground(p.Text)
	for i, lbl := range labels {
		cursor := "  "
		style := normal
		if i == m.settingsIndex {
			cursor = "> "
			style = selected
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%-18s %s", cursor, lbl, m.settingsValue(i))) + "\n")
	}
	b.WriteString("\n" + lipgloss.NewStyle().Foreground(p.Muted).Render("[↑/↓] select  [←/→] change  [D] defaults  [Esc] back"))
	return b.String()
}

func (m *model) renderHelp() string {
	p := paletteFor(m.theme)
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	body := lipgloss.NewStyle().Foreground(p.Text)
	var b strings.Builder
	b.WriteString(title.Render("Morse translator") + "\n\n")
	b.WriteString(body.Render(strings.Join([]string{
		"Type to translate live. Tab swaps direction and carries the result",
		"over as the new input, so encode→decode round trips are one key.",
		"",
		"Unknown symbols follow the configured policy: error stops the",
		"translation, ignore drops them, replace substitutes the placeholder.",
		"",
		"F2 shows the full reference chart. F3 opens settings.",
	}, "\n")))
	b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(p.Muted).Render("[Esc] back"))
	return b.String()
}
