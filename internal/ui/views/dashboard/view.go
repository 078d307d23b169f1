package dashboard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	workoutdto "fittrack/internal/modules/workout/dto"
	"fittrack/internal/ui/theme"
)

type WorkoutPort interface {
	List(ctx context.Context, input workoutdto.ListInput) ([]workoutdto.WorkoutOutput, error)
	Stats(ctx context.Context, cached bool) (workoutdto.StatsOutput, error)
	Delete(ctx context.Context, id int64) error
}

type WorkoutsLoadedMsg struct {
	Workouts []workoutdto.WorkoutOutput
	Err      error
}

type StatsLoadedMsg struct {
	Stats workoutdto.StatsOutput
	Err   error
}

type DeletedMsg struct {
	ID  int64
	Err error
}

// intensityCycle is the order the intensity filter steps through.
var intensityCycle = []string{"ALL", "LOW", "MEDIUM", "HIGH"}

type workoutItem struct {
	workout workoutdto.WorkoutOutput
}

func (i workoutItem) Title() string { return i.workout.Name }
func (i workoutItem) Description() string {
	return fmt.Sprintf("%s  %dmin  %dkcal  %s",
		i.workout.Date.Format("2006-01-02"), i.workout.DurationMinutes,
		i.workout.CaloriesBurned, i.workout.Intensity)
}
func (i workoutItem) FilterValue() string { return i.workout.Name }

// Model is the main authenticated screen: aggregate stat cards, the
// weekly goal bar, and the workout list with local filtering.
type Model struct {
	port WorkoutPort

	list      list.Model
	bar       progress.Model
	spinner   spinner.Model
	stats     workoutdto.StatsOutput
	intensity int
	loading   bool
	confirmID int64
	width     int
	height    int
}

func New(port WorkoutPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Workouts"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	bar := progress.New(progress.WithGradient(string(theme.Sapphire), string(theme.Green)))

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, bar: bar, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.spinner.Tick)
}

// Reload refetches the list and the statistics.
func (m Model) Reload() tea.Cmd {
	level := intensityCycle[m.intensity]
	return tea.Batch(
		func() tea.Msg {
			workouts, err := m.port.List(context.Background(), workoutdto.ListInput{Intensity: level})
			return WorkoutsLoadedMsg{Workouts: workouts, Err: err}
		},
		func() tea.Msg {
			stats, err := m.port.Stats(context.Background(), false)
			return StatsLoadedMsg{Stats: stats, Err: err}
		},
	)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case WorkoutsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Workouts: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Workouts"
		items := make([]list.Item, len(msg.Workouts))
		for i, w := range msg.Workouts {
			items[i] = workoutItem{workout: w}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case StatsLoadedMsg:
		if msg.Err == nil {
			m.stats = msg.Stats
		}

	case DeletedMsg:
		if msg.Err == nil {
			cmds = append(cmds, m.Reload())
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.confirmID != 0 {
			id := m.confirmID
			m.confirmID = 0
			if msg.String() == "y" {
				return m, m.deleteCmd(id)
			}
			return m, nil
		}
		if !m.Filtering() {
			switch msg.String() {
			case "r":
				m.loading = true
				return m, tea.Batch(m.Reload(), m.spinner.Tick)
			case "i":
				m.intensity = (m.intensity + 1) % len(intensityCycle)
				m.loading = true
				return m, tea.Batch(m.Reload(), m.spinner.Tick)
			case "d":
				if id, ok := m.SelectedWorkoutID(); ok {
					m.confirmID = id
				}
				return m, nil
			}
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading workouts…")
	}

	header := m.renderStats()
	headerH := lipgloss.Height(header)

	listH := m.height - headerH
	if listH < 1 {
		listH = 1
	}
	m.list.SetSize(m.width, listH)

	body := m.list.View()
	if m.confirmID != 0 {
		body = lipgloss.Place(m.width, listH, lipgloss.Center, lipgloss.Center,
			theme.Card.BorderForeground(theme.Red).Render(
				theme.Bad.Render("Delete this workout?")+"\n"+theme.Muted.Render("y: delete  any other key: keep")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// SelectedWorkoutID returns the current selection's ID, if any.
func (m Model) SelectedWorkoutID() (int64, bool) {
	if item, ok := m.list.SelectedItem().(workoutItem); ok {
		return item.workout.ID, true
	}
	return 0, false
}

// Filtering reports whether the list's search filter is currently
// active. The app model checks this to avoid consuming keys mid-search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) resize() {
	m.bar.Width = m.width - 28
	if m.bar.Width < 10 {
		m.bar.Width = 10
	}
	m.list.SetSize(m.width, m.height-8)
}

func (m Model) renderStats() string {
	s := m.stats
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Workouts", fmt.Sprintf("%d", s.Total)),
		statCard("Minutes", fmt.Sprintf("%d", s.TotalMinutes)),
		statCard("Calories", fmt.Sprintf("%d", s.TotalCalories)),
		statCard("Avg min", fmt.Sprintf("%d", s.AvgDuration)),
	)

	goal := fmt.Sprintf("week %d  goal %dmin  ", s.ThisWeek, s.WeeklyGoalMinutes)
	barLine := theme.Muted.Render(goal) + m.bar.ViewAs(s.WeeklyProgressPct/100)
	if s.FromCache {
		barLine += theme.Muted.Render("  (cached)")
	}

	filter := theme.Muted.Render("intensity: ") + theme.Hot.Render(intensityCycle[m.intensity])
	hints := theme.Muted.Render("  /: search  i: intensity  n: new  e: edit  d: delete  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, cards, barLine, filter+hints) + "\n"
}

func statCard(label, value string) string {
	return theme.Card.Render(theme.Muted.Render(label) + "\n" + theme.Hot.Render(value))
}

func (m Model) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		err := m.port.Delete(context.Background(), id)
		return DeletedMsg{ID: id, Err: err}
	}
}
