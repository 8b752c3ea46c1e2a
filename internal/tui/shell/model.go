// Package shell is the full-screen Bubble Tea REPL for RecipeLang.
// Lines are routed through an interp.Session; the four meta commands
// (help, recipe, clear, quit) are handled here, outside the grammar.
package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/recipelang/recipelang/internal/interp"
	"github.com/recipelang/recipelang/internal/lang"
)

const welcome = "Welcome to RecipeLang. Type 'help' for commands, 'quit' to exit."

// Model is the bubbletea model for the interactive shell.
type Model struct {
	session *interp.Session

	input    textinput.Model
	viewport viewport.Model
	keys     KeyMap
	help     help.Model

	// scrollback holds everything printed so far, newest last.
	scrollback []string

	width    int
	height   int
	ready    bool
	quitting bool
}

// New creates a shell model around an existing session. prompt is the
// configured prompt text, e.g. "RecipeLang> ".
func New(session *interp.Session, prompt string) *Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt)
	ti.Placeholder = "mix flour and eggs"
	ti.Focus()

	h := help.New()
	h.ShowAll = false

	return &Model{
		session:    session,
		input:      ti,
		keys:       DefaultKeyMap(),
		help:       h,
		scrollback: []string{noticeStyle.Render(welcome), ""},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle("RecipeLang"))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.viewport.ViewUp()
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.viewport.ViewDown()
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			line := m.input.Value()
			m.input.SetValue("")
			if cmd := m.submit(line); cmd != nil {
				return m, cmd
			}
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// submit handles one entered line: meta commands first, then the
// grammar. Returns a tea.Cmd only for quit.
func (m *Model) submit(line string) tea.Cmd {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	m.print(noticeStyle.Render("> " + trimmed))

	switch strings.ToLower(trimmed) {
	case "quit", "exit":
		m.quitting = true
		return tea.Quit
	case "help":
		m.print(interp.HelpText())
		return nil
	case "recipe":
		m.print(m.session.Recipe().Render())
		return nil
	case "clear":
		m.session.Reset()
		m.print(echoStyle.Render("✓ Recipe cleared!"))
		return nil
	}

	res, err := m.session.Eval(trimmed)
	switch {
	case errors.Is(err, lang.ErrSkip):
		// comment typed at the prompt; nothing to do
	case err != nil:
		m.print(errStyle.Render("Error: " + err.Error()))
	default:
		m.print(echoStyle.Render("✓ ") + stepText(res))
	}
	return nil
}

func stepText(res interp.Result) string {
	return fmt.Sprintf("Step %d: %s", res.StepNumber, res.Text)
}

// print appends lines to the scrollback and keeps the viewport pinned
// to the bottom.
func (m *Model) print(s string) {
	m.scrollback = append(m.scrollback, strings.Split(s, "\n")...)
	m.syncViewport()
}

func (m *Model) resize() {
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 3
	}
	// title, input, help, plus a separator line
	vpHeight := m.height - 3 - helpHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vpHeight
	}
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 2
	m.help.Width = m.width
	m.syncViewport()
}

func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.scrollback, "\n"))
	m.viewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("RecipeLang"))
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
