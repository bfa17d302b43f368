package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/contnorm/gensym"
	"github.com/wippyai/contnorm/normalize"
	"github.com/wippyai/contnorm/rewrite"
)

// Rows taken by the title, the input line and the help line.
const chromeHeight = 5

// History scrolls with arrows and paging keys only; letters go to the input.
var historyKeys = viewport.KeyMap{
	Up:       key.NewBinding(key.WithKeys("up")),
	Down:     key.NewBinding(key.WithKeys("down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
}

type interactiveModel struct {
	cfg     normalize.Config
	opts    outputOptions
	input   textinput.Model
	history viewport.Model
	entries []string
	ready   bool
}

type normalizedMsg struct {
	err     error
	source  string
	results []normalize.Result
}

func newInteractiveModel(cfg normalize.Config) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "(bash (call k v))"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()

	return &interactiveModel{
		cfg:   cfg,
		opts:  outputOptions{pretty: true, stats: true, color: true},
		input: ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			source := strings.TrimSpace(m.input.Value())
			if source == "" {
				return m, nil
			}
			m.input.Reset()
			return m, m.normalize(source)
		}

	case tea.WindowSizeMsg:
		height := msg.Height - chromeHeight
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.history = viewport.New(msg.Width, height)
			m.history.KeyMap = historyKeys
			m.ready = true
		} else {
			m.history.Width = msg.Width
			m.history.Height = height
		}
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.refresh()

	case normalizedMsg:
		m.entries = append(m.entries, m.renderEntry(msg))
		m.refresh()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.history, cmd = m.history.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// normalize runs each submission as its own program, so names restart.
func (m *interactiveModel) normalize(source string) tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		results, err := normalize.Source(source, cfg)
		return normalizedMsg{source: source, results: results, err: err}
	}
}

func (m *interactiveModel) renderEntry(msg normalizedMsg) string {
	var b strings.Builder
	b.WriteString(m.opts.style(promptStyle, "> "+msg.source))
	for _, res := range msg.results {
		b.WriteString("\n")
		b.WriteString(m.opts.style(resultStyle, formatTree(res.Tree, m.opts.pretty)))
		style := helpStyle
		if !res.Converged {
			style = warnStyle
		}
		b.WriteString("\n")
		b.WriteString(m.opts.style(style, formatStats(res)))
	}
	if msg.err != nil {
		b.WriteString("\n")
		b.WriteString(m.opts.style(errorStyle, fmt.Sprintf("Error: %v", msg.err)))
	}
	return b.String()
}

func (m *interactiveModel) refresh() {
	if !m.ready {
		return
	}
	m.history.SetContent(strings.Join(m.entries, "\n\n"))
	m.history.GotoBottom()
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("contnorm"))
	b.WriteString(" ")
	b.WriteString(fmt.Sprintf("prefix %s, at most %d rounds", m.prefix(), m.maxIterations()))
	b.WriteString("\n\n")

	if m.ready {
		b.WriteString(m.history.View())
	} else {
		b.WriteString(strings.Join(m.entries, "\n\n"))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter normalize • ↑/↓ pgup/pgdn scroll • esc quit"))

	return b.String()
}

func (m *interactiveModel) prefix() string {
	if m.cfg.Prefix == "" {
		return gensym.DefaultPrefix
	}
	return m.cfg.Prefix
}

func (m *interactiveModel) maxIterations() int {
	if m.cfg.MaxIterations < 1 {
		return rewrite.MaxIterations
	}
	return m.cfg.MaxIterations
}

func runInteractive(cfg normalize.Config) error {
	p := tea.NewProgram(newInteractiveModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
