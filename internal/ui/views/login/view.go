package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fittrack/internal/modules/auth/dto"
	"fittrack/internal/platform/apiclient"
	apperrors "fittrack/internal/platform/errors"
	"fittrack/internal/ui/theme"
)

type AuthPort interface {
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Register(ctx context.Context, input authdto.RegisterInput) error
}

// LoggedInMsg bubbles up to the app model, which switches to the
// authenticated views.
type LoggedInMsg struct {
	Session authdto.SessionOutput
}

type loginDoneMsg struct {
	session authdto.SessionOutput
	err     error
}

type registerDoneMsg struct{ err error }

type mode int

const (
	modeLogin mode = iota
	modeRegister
)

const (
	fieldUsername = iota
	fieldEmail
	fieldPassword
	fieldCount
)

// Model is the unauthenticated screen: a login form that can flip into
// a registration form.
type Model struct {
	port    AuthPort
	mode    mode
	inputs  [fieldCount]textinput.Model
	focused int
	busy    bool
	notice  string
	isError bool
	width   int
	height  int
}

func New(port AuthPort) Model {
	var inputs [fieldCount]textinput.Model

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()
	inputs[fieldUsername] = username

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	inputs[fieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	inputs[fieldPassword] = password

	return Model{port: port, inputs: inputs}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = failureText(msg.err, "Invalid username or password")
			m.isError = true
			return m, nil
		}
		session := msg.session
		return m, func() tea.Msg { return LoggedInMsg{Session: session} }

	case registerDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = failureText(msg.err, "Registration failed")
			m.isError = true
			return m, nil
		}
		m.mode = modeLogin
		m.notice = "account created, sign in"
		m.isError = false
		return m, m.focusField(fieldUsername)

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "down":
			return m, m.focusField(m.nextField(1))
		case "shift+tab", "up":
			return m, m.focusField(m.nextField(-1))
		case "ctrl+r":
			if m.mode == modeLogin {
				m.mode = modeRegister
			} else {
				m.mode = modeLogin
			}
			m.notice = ""
			return m, m.focusField(fieldUsername)
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	if m.mode == modeLogin {
		sb.WriteString(theme.Title.Render("Sign in to FitTrack") + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render("Create a FitTrack account") + "\n\n")
	}

	sb.WriteString(m.renderField("username", fieldUsername))
	if m.mode == modeRegister {
		sb.WriteString(m.renderField("email", fieldEmail))
	}
	sb.WriteString(m.renderField("password", fieldPassword))

	if m.busy {
		sb.WriteString("\n" + theme.Muted.Render("working…"))
	} else if m.notice != "" {
		style := theme.Good
		if m.isError {
			style = theme.Bad
		}
		sb.WriteString("\n" + style.Render(m.notice))
	}

	hint := "enter: sign in  ctrl+r: register instead  ctrl+c: quit"
	if m.mode == modeRegister {
		hint = "enter: create account  ctrl+r: back to sign in  ctrl+c: quit"
	}
	sb.WriteString("\n\n" + theme.Muted.Render(hint))

	card := theme.Card.Width(52).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// Typing reports whether a form field currently has focus, so the app
// model leaves keys like q alone.
func (m Model) Typing() bool { return !m.busy }

// failureText prefers the server's message, then the generic fallback
// for rejected credentials, then the raw error for anything else.
func failureText(err error, fallback string) string {
	if text, ok := apiclient.ServerMessage(err); ok {
		return text
	}
	if errors.Is(err, apperrors.ErrUnauthorized) {
		return fallback
	}
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return fallback
	}
	return err.Error()
}

func (m Model) renderField(label string, idx int) string {
	return theme.Muted.Render(label+": ") + m.inputs[idx].View() + "\n"
}

func (m Model) nextField(dir int) int {
	next := m.focused
	for {
		next = (next + dir + fieldCount) % fieldCount
		if next == fieldEmail && m.mode == modeLogin {
			continue
		}
		return next
	}
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = idx
	return m.inputs[idx].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	username := strings.TrimSpace(m.inputs[fieldUsername].Value())
	password := m.inputs[fieldPassword].Value()

	m.busy = true
	m.notice = ""
	if m.mode == modeLogin {
		return m, func() tea.Msg {
			session, err := m.port.Login(context.Background(), authdto.LoginInput{
				Username: username,
				Password: password,
			})
			return loginDoneMsg{session: session, err: err}
		}
	}

	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	return m, func() tea.Msg {
		err := m.port.Register(context.Background(), authdto.RegisterInput{
			Username: username,
			Email:    email,
			Password: password,
		})
		return registerDoneMsg{err: err}
	}
}
