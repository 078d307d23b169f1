package profile

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	profiledto "fittrack/internal/modules/profile/dto"
	"fittrack/internal/ui/components"
	"fittrack/internal/ui/theme"
)

type ProfilePort interface {
	Get(ctx context.Context) (profiledto.ProfileOutput, error)
	Update(ctx context.Context, input profiledto.UpdateInput) (profiledto.ProfileOutput, error)
	UploadImage(ctx context.Context, path string) (profiledto.UploadOutput, error)
}

type ProfileLoadedMsg struct {
	Profile profiledto.ProfileOutput
	Err     error
}

type uploadDoneMsg struct {
	out profiledto.UploadOutput
	err error
}

const (
	promptWeight = "weight"
	promptHeight = "height"
	promptGoal   = "goal"
	promptName   = "fullname"
	promptAvatar = "avatar"
)

// Model is the account screen: profile fields, the derived BMI, and
// prompt-driven edits.
type Model struct {
	port ProfilePort

	profile profiledto.ProfileOutput
	prompt  components.Prompt
	loaded  bool
	notice  string
	isError bool
	width   int
	height  int
}

func New(port ProfilePort) Model {
	return Model{port: port, prompt: components.NewPrompt()}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.prompt.SetWidth(min(m.width-4, 64))

	case ProfileLoadedMsg:
		if msg.Err != nil {
			m.notice = msg.Err.Error()
			m.isError = true
			return m, nil
		}
		m.loaded = true
		m.profile = msg.Profile

	case uploadDoneMsg:
		if msg.err != nil {
			m.notice = msg.err.Error()
			m.isError = true
			return m, nil
		}
		m.notice = "image uploaded: " + msg.out.ImagePath
		m.isError = false
		return m, m.loadCmd()

	case components.PromptCancelMsg:
		m.notice = ""

	case components.PromptSubmitMsg:
		return m.applyPrompt(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.loadCmd()
		case "n":
			return m, m.prompt.Open(promptName, "Full name", m.profile.FullName)
		case "w":
			return m, m.prompt.Open(promptWeight, "Weight (kg)", "72.5")
		case "h":
			return m, m.prompt.Open(promptHeight, "Height (cm)", "180")
		case "g":
			return m, m.prompt.Open(promptGoal, "Fitness goal", m.profile.FitnessGoal)
		case "a":
			return m, m.prompt.Open(promptAvatar, "Path to image (jpeg, png or gif, up to 5 MiB)", "~/avatar.png")
		}
	}

	return m, nil
}

func (m Model) View() string {
	if m.prompt.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.prompt.View())
	}
	if !m.loaded {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading profile…"))
	}

	p := m.profile
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(p.Username) + "\n\n")
	sb.WriteString(theme.Muted.Render("email:   ") + p.Email + "\n")
	if p.FullName != "" {
		sb.WriteString(theme.Muted.Render("name:    ") + p.FullName + "\n")
	}
	if p.WeightKg > 0 {
		sb.WriteString(fmt.Sprintf("%s%.1f kg\n", theme.Muted.Render("weight:  "), p.WeightKg))
	}
	if p.HeightCm > 0 {
		sb.WriteString(fmt.Sprintf("%s%.0f cm\n", theme.Muted.Render("height:  "), p.HeightCm))
	}
	if bmi := p.BMI; bmi > 0 {
		sb.WriteString(fmt.Sprintf("%s%.1f\n", theme.Muted.Render("bmi:     "), bmi))
	}
	if p.FitnessGoal != "" {
		sb.WriteString(theme.Muted.Render("goal:    ") + p.FitnessGoal + "\n")
	}
	if p.ProfileImage != "" {
		sb.WriteString(theme.Muted.Render("avatar:  ") + p.ProfileImage + "\n")
	}

	if m.notice != "" {
		style := theme.Good
		if m.isError {
			style = theme.Bad
		}
		sb.WriteString("\n" + style.Render(m.notice))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("n: name  w: weight  h: height  g: goal  a: avatar  r: refresh"))

	card := theme.Card.Width(56).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

// Typing reports whether the edit prompt is open, so the app model
// leaves keys alone while the user types.
func (m Model) Typing() bool { return m.prompt.Visible() }

func (m Model) applyPrompt(msg components.PromptSubmitMsg) (Model, tea.Cmd) {
	if msg.Input == "" {
		return m, nil
	}
	switch msg.Tag {
	case promptAvatar:
		path := msg.Input
		return m, func() tea.Msg {
			out, err := m.port.UploadImage(context.Background(), path)
			return uploadDoneMsg{out: out, err: err}
		}
	case promptName:
		return m, m.updateCmd(profiledto.UpdateInput{FullName: &msg.Input})
	case promptGoal:
		return m, m.updateCmd(profiledto.UpdateInput{FitnessGoal: &msg.Input})
	case promptWeight, promptHeight:
		value, err := strconv.ParseFloat(msg.Input, 64)
		if err != nil {
			m.notice = "enter a number"
			m.isError = true
			return m, nil
		}
		input := profiledto.UpdateInput{}
		if msg.Tag == promptWeight {
			input.WeightKg = &value
		} else {
			input.HeightCm = &value
		}
		return m, m.updateCmd(input)
	}
	return m, nil
}

func (m Model) updateCmd(input profiledto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		profile, err := m.port.Update(context.Background(), input)
		return ProfileLoadedMsg{Profile: profile, Err: err}
	}
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		profile, err := m.port.Get(context.Background())
		return ProfileLoadedMsg{Profile: profile, Err: err}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
