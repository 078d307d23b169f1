package editor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workoutdto "fittrack/internal/modules/workout/dto"
	"fittrack/internal/ui/theme"
)

type WorkoutPort interface {
	Get(ctx context.Context, id int64) (workoutdto.WorkoutDetailOutput, error)
	Create(ctx context.Context, input workoutdto.DraftInput) error
	Update(ctx context.Context, id int64, input workoutdto.DraftInput) error
}

// SavedMsg bubbles up so the dashboard can reload.
type SavedMsg struct{}

// ClosedMsg bubbles up when the form is dismissed without saving.
type ClosedMsg struct{}

type loadedMsg struct {
	detail workoutdto.WorkoutDetailOutput
	err    error
}

type savedMsg struct{ err error }

const dateLayout = "2006-01-02"

const (
	fieldName = iota
	fieldDescription
	fieldDate
	fieldDuration
	fieldCalories
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"name", "description", "date", "duration (min)", "calories", "notes",
}

var intensityCycle = []string{"LOW", "MEDIUM", "HIGH"}

// Model is the create/edit workout form. A zero editID means create.
type Model struct {
	port WorkoutPort

	inputs    [fieldCount]textinput.Model
	focused   int
	intensity int
	editID    int64
	busy      bool
	notice    string
	width     int
	height    int
}

func New(port WorkoutPort) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Placeholder = fieldLabels[i]
		inputs[i] = ti
	}
	inputs[fieldName].Focus()
	return Model{port: port, inputs: inputs}
}

// OpenCreate resets the form for a new workout.
func (m *Model) OpenCreate(now time.Time) tea.Cmd {
	m.editID = 0
	m.intensity = 0
	m.notice = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.inputs[fieldDate].SetValue(now.Format(dateLayout))
	return m.focusField(fieldName)
}

// OpenEdit loads an existing workout into the form.
func (m *Model) OpenEdit(id int64) tea.Cmd {
	m.editID = id
	m.busy = true
	m.notice = ""
	return tea.Batch(m.focusField(fieldName), func() tea.Msg {
		detail, err := m.port.Get(context.Background(), id)
		return loadedMsg{detail: detail, err: err}
	})
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

	case loadedMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		d := msg.detail
		m.inputs[fieldName].SetValue(d.Name)
		m.inputs[fieldDescription].SetValue(d.Description)
		m.inputs[fieldDate].SetValue(d.Date.Format(dateLayout))
		m.inputs[fieldDuration].SetValue(strconv.Itoa(d.DurationMinutes))
		m.inputs[fieldCalories].SetValue(strconv.Itoa(d.CaloriesBurned))
		m.inputs[fieldNotes].SetValue(d.Notes)
		for i, level := range intensityCycle {
			if level == d.Intensity {
				m.intensity = i
			}
		}
		return m, nil

	case savedMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = msg.err.Error()
			return m, nil
		}
		return m, func() tea.Msg { return SavedMsg{} }

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return ClosedMsg{} }
		case "tab", "down":
			return m, m.focusField((m.focused + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.focusField((m.focused + fieldCount - 1) % fieldCount)
		case "ctrl+i":
			m.intensity = (m.intensity + 1) % len(intensityCycle)
			return m, nil
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
	if m.editID == 0 {
		sb.WriteString(theme.Title.Render("New workout") + "\n\n")
	} else {
		sb.WriteString(theme.Title.Render(fmt.Sprintf("Edit workout #%d", m.editID)) + "\n\n")
	}

	for i := range m.inputs {
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-15s", fieldLabels[i]+":")) + m.inputs[i].View() + "\n")
	}
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%-15s", "intensity:")) + theme.Hot.Render(intensityCycle[m.intensity]) + "\n")

	if m.busy {
		sb.WriteString("\n" + theme.Muted.Render("working…"))
	} else if m.notice != "" {
		sb.WriteString("\n" + theme.Bad.Render(m.notice))
	}
	sb.WriteString("\n\n" + theme.Muted.Render("enter: save  ctrl+i: intensity  tab: next field  esc: back"))

	card := theme.Card.Width(64).Render(sb.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m *Model) focusField(idx int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = idx
	return m.inputs[idx].Focus()
}

func (m Model) submit() (Model, tea.Cmd) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(m.inputs[fieldDate].Value()))
	if err != nil {
		m.notice = "date must be YYYY-MM-DD"
		return m, nil
	}
	duration, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldDuration].Value()))
	if err != nil {
		m.notice = "duration must be a number of minutes"
		return m, nil
	}
	calories := 0
	if v := strings.TrimSpace(m.inputs[fieldCalories].Value()); v != "" {
		calories, err = strconv.Atoi(v)
		if err != nil {
			m.notice = "calories must be a number"
			return m, nil
		}
	}

	input := workoutdto.DraftInput{
		Name:            strings.TrimSpace(m.inputs[fieldName].Value()),
		Description:     strings.TrimSpace(m.inputs[fieldDescription].Value()),
		Date:            date,
		DurationMinutes: duration,
		CaloriesBurned:  calories,
		Intensity:       intensityCycle[m.intensity],
		Notes:           strings.TrimSpace(m.inputs[fieldNotes].Value()),
	}

	m.busy = true
	m.notice = ""
	id := m.editID
	return m, func() tea.Msg {
		var err error
		if id == 0 {
			err = m.port.Create(context.Background(), input)
		} else {
			err = m.port.Update(context.Background(), id, input)
		}
		return savedMsg{err: err}
	}
}
