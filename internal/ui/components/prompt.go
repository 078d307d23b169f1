package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/ui/theme"
)

// PromptSubmitMsg is emitted when the user confirms the prompt.
type PromptSubmitMsg struct {
	Tag   string
	Input string
}

// PromptCancelMsg is emitted when the user presses esc.
type PromptCancelMsg struct{ Tag string }

var promptStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Peach).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// Prompt is a one-line modal input overlay backed by bubbles/textinput.
// Tag identifies which question is being asked when several callers
// share the overlay.
type Prompt struct {
	input   textinput.Model
	title   string
	tag     string
	visible bool
	width   int
}

// NewPrompt creates an inactive Prompt ready to be opened.
func NewPrompt() Prompt {
	ti := textinput.New()
	ti.CharLimit = 512
	return Prompt{input: ti}
}

// Visible reports whether the prompt is currently shown.
func (p Prompt) Visible() bool { return p.visible }

// Open shows the prompt with a title and placeholder, clears the input,
// and returns the focus command.
func (p *Prompt) Open(tag, title, placeholder string) tea.Cmd {
	p.visible = true
	p.tag = tag
	p.title = title
	p.input.Placeholder = placeholder
	p.input.SetValue("")
	return p.input.Focus()
}

// SetWidth sets the render width for the overlay.
func (p *Prompt) SetWidth(w int) { p.width = w }

func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			tag := p.tag
			return p, func() tea.Msg { return PromptCancelMsg{Tag: tag} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			tag := p.tag
			return p, func() tea.Msg { return PromptSubmitMsg{Tag: tag, Input: val} }
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p Prompt) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.title) + "\n")
	sb.WriteString("> " + p.input.View())

	w := p.width
	if w < 20 {
		w = 64
	}
	return promptStyle.Width(w - 2).Render(sb.String())
}
