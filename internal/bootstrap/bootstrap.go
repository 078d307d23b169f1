package bootstrap

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	authinadapter "fittrack/internal/modules/auth/adapter/in"
	authoutadapter "fittrack/internal/modules/auth/adapter/out"
	authusecase "fittrack/internal/modules/auth/usecase"
	profileinadapter "fittrack/internal/modules/profile/adapter/in"
	profileoutadapter "fittrack/internal/modules/profile/adapter/out"
	profileservice "fittrack/internal/modules/profile/service"
	profileusecase "fittrack/internal/modules/profile/usecase"
	workoutinadapter "fittrack/internal/modules/workout/adapter/in"
	workoutoutadapter "fittrack/internal/modules/workout/adapter/out"
	workoutservice "fittrack/internal/modules/workout/service"
	workoutusecase "fittrack/internal/modules/workout/usecase"
	"fittrack/internal/platform/apiclient"
	"fittrack/internal/platform/clock"
	"fittrack/internal/platform/config"
	"fittrack/internal/platform/logger"
	uiapp "fittrack/internal/ui/app"

	authin "fittrack/internal/modules/auth/port/in"
	workoutin "fittrack/internal/modules/workout/port/in"
)

// App holds the wired handlers the front ends consume.
type App struct {
	AuthCLI    authinadapter.CLIHandler
	WorkoutCLI workoutinadapter.CLIHandler
	ProfileCLI *profileinadapter.CLIHandler

	authUC    authin.Usecase
	workoutUC workoutin.Usecase
	clock     clock.SystemClock

	logCloser io.Closer
	cache     *workoutoutadapter.SQLiteCache
}

// New wires the full dependency graph: credential store, API client
// with the 401 safety net, the workout display cache, and one usecase
// per module.
func New(cfg config.Config) (*App, error) {
	log, logCloser, err := logger.New(logger.Options{Level: cfg.LogLevel, Dir: cfg.StateDir})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	clk := clock.SystemClock{}
	store := authoutadapter.NewFileCredentialStore(cfg.StateDir)

	// Any 401 wipes the stored credential so the next start lands on
	// the login screen instead of looping on a dead token.
	client := apiclient.New(cfg.APIBaseURL, store, func(ctx context.Context) {
		if err := store.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("clear credentials after 401")
		}
	}, log)

	authUC := authusecase.NewInteractor(store, authoutadapter.NewHTTPAuthAPI(client), clk, log)

	cache, err := workoutoutadapter.NewSQLiteCache(filepath.Join(cfg.StateDir, "cache.db"))
	if err != nil {
		return nil, fmt.Errorf("open workout cache: %w", err)
	}
	workoutSvc := workoutservice.NewWorkoutService(clk, cfg.WeeklyGoalMinutes)
	workoutUC := workoutusecase.NewInteractor(workoutSvc, workoutoutadapter.NewHTTPWorkoutAPI(client), cache, log)

	profileSvc := profileservice.NewProfileService(cfg.MaxUploadBytes)
	profileUC := profileusecase.NewInteractor(profileSvc, profileoutadapter.NewHTTPProfileAPI(client), log)

	return &App{
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		WorkoutCLI: workoutinadapter.NewCLIHandler(workoutUC),
		ProfileCLI: profileinadapter.NewCLIHandler(profileUC),
		authUC:     authUC,
		workoutUC:  workoutUC,
		clock:      clk,
		logCloser:  logCloser,
		cache:      cache,
	}, nil
}

// Close releases the cache and the log file.
func (a *App) Close() error {
	var firstErr error
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			firstErr = err
		}
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// RunTUI starts the Bubble Tea program on the alt screen.
func RunTUI(app *App) error {
	model := uiapp.NewModel(app.authUC, app.workoutUC, app.ProfileCLI, app.clock)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
