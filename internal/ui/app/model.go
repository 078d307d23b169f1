package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	authdto "fittrack/internal/modules/auth/dto"
	profiledto "fittrack/internal/modules/profile/dto"
	workoutdto "fittrack/internal/modules/workout/dto"
	apperrors "fittrack/internal/platform/errors"
	"fittrack/internal/ui/theme"
	dashboardview "fittrack/internal/ui/views/dashboard"
	editorview "fittrack/internal/ui/views/editor"
	loginview "fittrack/internal/ui/views/login"
	profileview "fittrack/internal/ui/views/profile"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type authPort interface {
	Restore(ctx context.Context) (authdto.SessionOutput, error)
	Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error)
	Register(ctx context.Context, input authdto.RegisterInput) error
	Logout(ctx context.Context) error
}

type workoutPort interface {
	List(ctx context.Context, input workoutdto.ListInput) ([]workoutdto.WorkoutOutput, error)
	Get(ctx context.Context, id int64) (workoutdto.WorkoutDetailOutput, error)
	Create(ctx context.Context, input workoutdto.DraftInput) error
	Update(ctx context.Context, id int64, input workoutdto.DraftInput) error
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context, cached bool) (workoutdto.StatsOutput, error)
}

type profilePort interface {
	Get(ctx context.Context) (profiledto.ProfileOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.ProfileOutput, error)
	UploadImage(ctx context.Context, path string) (profiledto.UploadOutput, error)
}

type clockPort interface{ Now() time.Time }

// ─── screens and tabs ────────────────────────────────────────────────────────

type screen int

const (
	screenRestoring screen = iota
	screenLogin
	screenMain
	screenEditor
)

type tabID int

const (
	tabDashboard tabID = iota
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Profile"}

// ─── async messages ───────────────────────────────────────────────────────────

type restoredMsg struct {
	session authdto.SessionOutput
	err     error
}

type loggedOutMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Help   key.Binding
	New    key.Binding
	Edit   key.Binding
	Logout key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new workout")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit workout")),
		Logout: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "log out")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.New, k.Edit},
		{k.Logout, k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It runs session restore before
// deciding between the login and main screens, owns tab routing and the
// status bar, and delegates everything else to sub-views.
type Model struct {
	auth    authPort
	clock   clockPort
	session authdto.SessionOutput

	loginView loginview.Model
	dashView  dashboardview.Model
	editView  editorview.Model
	profView  profileview.Model

	screen    screen
	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(auth authPort, workout workoutPort, profile profilePort, clk clockPort) Model {
	return Model{
		auth:      auth,
		clock:     clk,
		loginView: loginview.New(auth),
		dashView:  dashboardview.New(workout),
		editView:  editorview.New(workout),
		profView:  profileview.New(profile),
		screen:    screenRestoring,
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "restoring session…",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loginView.Init(), m.restoreCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case restoredMsg:
		m.session = msg.session
		switch {
		case msg.err != nil && errors.Is(msg.err, apperrors.ErrSessionExpired):
			m.screen = screenLogin
			m.status = "session expired, sign in again"
		case msg.err != nil:
			m.screen = screenLogin
			m.status = "restore failed: " + msg.err.Error()
		case msg.session.Authenticated:
			m.screen = screenMain
			m.status = "welcome back, " + msg.session.User.Username
			cmds = append(cmds, m.dashView.Init(), m.profView.Init())
		default:
			m.screen = screenLogin
			m.status = "ready"
		}

	case loginview.LoggedInMsg:
		m.session = msg.Session
		m.screen = screenMain
		m.activeTab = tabDashboard
		m.status = "signed in as " + msg.Session.User.Username
		cmds = append(cmds, m.dashView.Init(), m.profView.Init())

	case loggedOutMsg:
		if msg.err != nil {
			m.status = "logout: " + msg.err.Error()
		} else {
			m.session = authdto.SessionOutput{}
			m.screen = screenLogin
			m.loginView = loginview.New(m.auth)
			m.status = "signed out"
			cmds = append(cmds, m.loginView.Init())
		}

	case editorview.SavedMsg:
		m.screen = screenMain
		m.status = "workout saved"
		cmds = append(cmds, m.dashView.Reload())

	case editorview.ClosedMsg:
		m.screen = screenMain
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if handled, model, cmd := m.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	// Propagate the message to the active screen.
	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.loginView, cmd = m.loginView.Update(msg)
	case screenEditor:
		m.editView, cmd = m.editView.Update(msg)
	case screenMain:
		switch m.activeTab {
		case tabDashboard:
			m.dashView, cmd = m.dashView.Update(msg)
		case tabProfile:
			m.profView, cmd = m.profView.Update(msg)
		}
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleGlobalKey consumes app-level keys. Keys are left to the active
// view while the user is typing in a field or filter.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return true, m, tea.Quit
	}
	if m.typing() {
		return false, m, nil
	}

	switch m.screen {
	case screenLogin, screenRestoring:
		if msg.String() == "q" {
			return true, m, tea.Quit
		}
	case screenMain:
		switch msg.String() {
		case "q":
			return true, m, tea.Quit
		case "?":
			m.showHelp = true
			return true, m, nil
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return true, m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return true, m, nil
		case "ctrl+l":
			return true, m, m.logoutCmd()
		case "n":
			if m.activeTab == tabDashboard {
				m.screen = screenEditor
				return true, m, m.editView.OpenCreate(m.clock.Now())
			}
		case "e":
			if m.activeTab == tabDashboard {
				if id, ok := m.dashView.SelectedWorkoutID(); ok {
					m.screen = screenEditor
					return true, m, m.editView.OpenEdit(id)
				}
			}
		}
	}
	return false, m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.screen == screenRestoring {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Restoring session…"))
	}
	if m.screen == screenLogin {
		return m.loginView.View()
	}

	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.screen == screenEditor:
		content = m.editView.View()
	case m.activeTab == tabProfile:
		content = m.profView.View()
	default:
		content = m.dashView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab && m.screen == screenMain {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "fittrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.session.Authenticated {
		left = theme.Good.Render("● "+m.session.User.Username) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  ctrl+l:logout  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// typing reports whether the active view owns the keyboard, in which
// case global bindings must yield.
func (m Model) typing() bool {
	switch m.screen {
	case screenLogin:
		return m.loginView.Typing()
	case screenEditor:
		return true
	case screenMain:
		if m.activeTab == tabDashboard {
			return m.dashView.Filtering()
		}
		return m.profView.Typing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.loginView, _ = m.loginView.Update(sz)
	m.dashView, _ = m.dashView.Update(sz)
	m.editView, _ = m.editView.Update(sz)
	m.profView, _ = m.profView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		session, err := m.auth.Restore(context.Background())
		return restoredMsg{session: session, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return loggedOutMsg{err: m.auth.Logout(context.Background())}
	}
}
