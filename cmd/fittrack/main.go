package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fittrack/internal/bootstrap"
	authdto "fittrack/internal/modules/auth/dto"
	profiledto "fittrack/internal/modules/profile/dto"
	workoutdto "fittrack/internal/modules/workout/dto"
	"fittrack/internal/platform/apiclient"
	"fittrack/internal/platform/config"
	apperrors "fittrack/internal/platform/errors"
)

const dateLayout = "2006-01-02"

func main() {
	// A missing .env is fine; environment variables win either way.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		if text, ok := apiclient.ServerMessage(err); ok {
			err = fmt.Errorf("%s", text)
		}
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fittrack",
		Short:         "Fitness tracking client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newTUICmd())
	root.AddCommand(newLoginCmd())
	root.AddCommand(newLogoutCmd())
	root.AddCommand(newRegisterCmd())
	root.AddCommand(newWhoamiCmd())
	root.AddCommand(newAccountCmd())
	root.AddCommand(newWorkoutCmd())
	root.AddCommand(newProfileCmd())
	return root
}

// withApp wires the dependency graph for one command invocation and
// releases the cache and log file afterwards.
func withApp(fn func(app *bootstrap.App) error) error {
	cfg, err := config.Load(context.Background())
	if err != nil {
		return err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the fittrack terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(bootstrap.RunTUI)
		},
	}
}

func newLoginCmd() *cobra.Command {
	var username, password string
	login := &cobra.Command{
		Use:   "login --username <name> --password <password>",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				session, err := app.AuthCLI.Login(context.Background(), username, password)
				if err != nil {
					if _, ok := apiclient.ServerMessage(err); !ok && errors.Is(err, apperrors.ErrUnauthorized) {
						return fmt.Errorf("invalid username or password")
					}
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s <%s>\n", session.User.Username, session.User.Email)
				return nil
			})
		},
	}
	login.Flags().StringVar(&username, "username", "", "account username")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				if err := app.AuthCLI.Logout(context.Background()); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "signed out")
				return nil
			})
		},
	}
}

func newRegisterCmd() *cobra.Command {
	var input authdto.RegisterInput
	var weight, height float64
	register := &cobra.Command{
		Use:   "register --username <name> --email <email> --password <password>",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("weight") {
				input.Weight = &weight
			}
			if cmd.Flags().Changed("height") {
				input.Height = &height
			}
			return withApp(func(app *bootstrap.App) error {
				if err := app.AuthCLI.Register(context.Background(), input); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "account created, sign in with fittrack login")
				return nil
			})
		},
	}
	register.Flags().StringVar(&input.Username, "username", "", "account username")
	register.Flags().StringVar(&input.Email, "email", "", "account email")
	register.Flags().StringVar(&input.Password, "password", "", "account password")
	register.Flags().StringVar(&input.FullName, "full-name", "", "full name (optional)")
	register.Flags().Float64Var(&weight, "weight", 0, "weight in kg (optional)")
	register.Flags().Float64Var(&height, "height", 0, "height in cm (optional)")
	register.Flags().StringVar(&input.FitnessGoal, "goal", "", "fitness goal (optional)")
	return register
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				session, err := app.AuthCLI.Restore(context.Background())
				if err != nil {
					return err
				}
				if !session.Authenticated {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
					return nil
				}
				u := session.User
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username: %s\nemail:    %s\n", u.Username, u.Email)
				if len(u.Roles) > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "roles:    %s\n", strings.Join(u.Roles, ", "))
				}
				return nil
			})
		},
	}
}

func newAccountCmd() *cobra.Command {
	account := &cobra.Command{Use: "account", Short: "Stored account commands"}

	var username, email string
	update := &cobra.Command{
		Use:   "update [--username <name>] [--email <email>]",
		Short: "Update the stored account fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input authdto.UpdateUserInput
			if cmd.Flags().Changed("username") {
				input.Username = &username
			}
			if cmd.Flags().Changed("email") {
				input.Email = &email
			}
			if input.Username == nil && input.Email == nil {
				return fmt.Errorf("nothing to update, pass --username or --email")
			}
			return withApp(func(app *bootstrap.App) error {
				if _, err := app.AuthCLI.Restore(context.Background()); err != nil {
					return err
				}
				session, err := app.AuthCLI.UpdateUser(context.Background(), input)
				if err != nil {
					return err
				}
				if !session.Authenticated {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "not signed in")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account updated: %s <%s>\n", session.User.Username, session.User.Email)
				return nil
			})
		},
	}
	update.Flags().StringVar(&username, "username", "", "new username")
	update.Flags().StringVar(&email, "email", "", "new email")
	account.AddCommand(update)
	return account
}

func newWorkoutCmd() *cobra.Command {
	workout := &cobra.Command{Use: "workout", Short: "Workout commands"}

	var query, intensity string
	var cached bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List workouts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				workouts, err := app.WorkoutCLI.List(context.Background(), workoutdto.ListInput{
					Query: query, Intensity: intensity, Cached: cached,
				})
				if err != nil {
					return err
				}
				if len(workouts) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no workouts")
					return nil
				}
				for _, w := range workouts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%dmin\t%dkcal\t%s\n",
						w.ID, w.Date.Format(dateLayout), w.Name, w.DurationMinutes, w.CaloriesBurned, w.Intensity)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&query, "query", "", "name substring filter")
	list.Flags().StringVar(&intensity, "intensity", "all", "intensity filter: all|low|medium|high")
	list.Flags().BoolVar(&cached, "cached", false, "read from the local cache instead of the API")
	workout.AddCommand(list)

	var showID int64
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show workout details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showID == 0 {
				return fmt.Errorf("--id is required")
			}
			return withApp(func(app *bootstrap.App) error {
				w, err := app.WorkoutCLI.Get(context.Background(), showID)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "id: %d\nname: %s\ndate: %s\nduration: %dmin\ncalories: %d\nintensity: %s\n",
					w.ID, w.Name, w.Date.Format(dateLayout), w.DurationMinutes, w.CaloriesBurned, w.Intensity)
				if w.Description != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "description: %s\n", w.Description)
				}
				if w.Notes != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "notes: %s\n", w.Notes)
				}
				for _, e := range w.Exercises {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exercise: %s %dx%d\n", e.Name, e.Sets, e.Reps)
				}
				return nil
			})
		},
	}
	show.Flags().Int64Var(&showID, "id", 0, "workout id")
	workout.AddCommand(show)

	buildDraftFlags := func(cmd *cobra.Command, draft *draftFlags) {
		cmd.Flags().StringVar(&draft.name, "name", "", "workout name")
		cmd.Flags().StringVar(&draft.description, "description", "", "description (optional)")
		cmd.Flags().StringVar(&draft.date, "date", "", "date as YYYY-MM-DD (defaults to today)")
		cmd.Flags().IntVar(&draft.duration, "duration", 0, "duration in minutes")
		cmd.Flags().IntVar(&draft.calories, "calories", 0, "calories burned (optional)")
		cmd.Flags().StringVar(&draft.intensity, "intensity", "MEDIUM", "intensity: low|medium|high")
		cmd.Flags().StringVar(&draft.notes, "notes", "", "notes (optional)")
		cmd.Flags().StringVar(&draft.exercises, "exercises", "", `exercises as JSON, e.g. [{"name":"squat","sets":3,"reps":10}]`)
	}

	var createDraft draftFlags
	create := &cobra.Command{
		Use:   "create --name <name> --duration <minutes>",
		Short: "Create a workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := createDraft.toInput()
			if err != nil {
				return err
			}
			return withApp(func(app *bootstrap.App) error {
				if err := app.WorkoutCLI.Create(context.Background(), input); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "workout created")
				return nil
			})
		},
	}
	buildDraftFlags(create, &createDraft)
	workout.AddCommand(create)

	var updateID int64
	var updateDraft draftFlags
	update := &cobra.Command{
		Use:   "update --id <id>",
		Short: "Replace a workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if updateID == 0 {
				return fmt.Errorf("--id is required")
			}
			input, err := updateDraft.toInput()
			if err != nil {
				return err
			}
			return withApp(func(app *bootstrap.App) error {
				if err := app.WorkoutCLI.Update(context.Background(), updateID, input); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "workout updated")
				return nil
			})
		},
	}
	update.Flags().Int64Var(&updateID, "id", 0, "workout id")
	buildDraftFlags(update, &updateDraft)
	workout.AddCommand(update)

	var deleteID int64
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a workout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deleteID == 0 {
				return fmt.Errorf("--id is required")
			}
			return withApp(func(app *bootstrap.App) error {
				if err := app.WorkoutCLI.Delete(context.Background(), deleteID); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "workout deleted")
				return nil
			})
		},
	}
	deleteCmd.Flags().Int64Var(&deleteID, "id", 0, "workout id")
	workout.AddCommand(deleteCmd)

	var statsCached bool
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show workout statistics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				s, err := app.WorkoutCLI.Stats(context.Background(), statsCached)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "workouts: %d\nminutes:  %d\ncalories: %d\navg:      %dmin\n",
					s.Total, s.TotalMinutes, s.TotalCalories, s.AvgDuration)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "this week: %d workouts, %.0f%% of %dmin goal\n",
					s.ThisWeek, s.WeeklyProgressPct, s.WeeklyGoalMinutes)
				if s.FromCache {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "(from local cache)")
				}
				return nil
			})
		},
	}
	stats.Flags().BoolVar(&statsCached, "cached", false, "compute from the local cache instead of the API")
	workout.AddCommand(stats)

	return workout
}

type draftFlags struct {
	name        string
	description string
	date        string
	duration    int
	calories    int
	intensity   string
	notes       string
	exercises   string
}

func (d draftFlags) toInput() (workoutdto.DraftInput, error) {
	date := time.Now()
	if strings.TrimSpace(d.date) != "" {
		parsed, err := time.Parse(dateLayout, d.date)
		if err != nil {
			return workoutdto.DraftInput{}, fmt.Errorf("--date must be YYYY-MM-DD")
		}
		date = parsed
	}
	return workoutdto.DraftInput{
		Name:            d.name,
		Description:     d.description,
		Date:            date,
		DurationMinutes: d.duration,
		CaloriesBurned:  d.calories,
		Intensity:       d.intensity,
		Notes:           d.notes,
		ExercisesJSON:   d.exercises,
	}, nil
}

func newProfileCmd() *cobra.Command {
	profile := &cobra.Command{Use: "profile", Short: "Profile commands"}

	profile.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the account profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(func(app *bootstrap.App) error {
				p, err := app.ProfileCLI.Get(context.Background())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "username: %s\nemail:    %s\n", p.Username, p.Email)
				if p.FullName != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "name:     %s\n", p.FullName)
				}
				if p.WeightKg > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weight:   %.1f kg\n", p.WeightKg)
				}
				if p.HeightCm > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "height:   %.0f cm\n", p.HeightCm)
				}
				if p.BMI > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bmi:      %.1f\n", p.BMI)
				}
				if p.FitnessGoal != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal:     %s\n", p.FitnessGoal)
				}
				if p.ProfileImage != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "avatar:   %s\n", p.ProfileImage)
				}
				return nil
			})
		},
	})

	var fullName, goal string
	var weight, height float64
	update := &cobra.Command{
		Use:   "update [--full-name <name>] [--weight <kg>] [--height <cm>] [--goal <text>]",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input profiledto.UpdateInput
			if cmd.Flags().Changed("full-name") {
				input.FullName = &fullName
			}
			if cmd.Flags().Changed("weight") {
				input.WeightKg = &weight
			}
			if cmd.Flags().Changed("height") {
				input.HeightCm = &height
			}
			if cmd.Flags().Changed("goal") {
				input.FitnessGoal = &goal
			}
			if input.FullName == nil && input.WeightKg == nil && input.HeightCm == nil && input.FitnessGoal == nil {
				return fmt.Errorf("nothing to update")
			}
			return withApp(func(app *bootstrap.App) error {
				p, err := app.ProfileCLI.Update(context.Background(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "profile updated")
				if p.BMI > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (bmi %.1f)", p.BMI)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				return nil
			})
		},
	}
	update.Flags().StringVar(&fullName, "full-name", "", "full name")
	update.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	update.Flags().Float64Var(&height, "height", 0, "height in cm")
	update.Flags().StringVar(&goal, "goal", "", "fitness goal")
	profile.AddCommand(update)

	upload := &cobra.Command{
		Use:   "upload-image <path>",
		Short: "Upload a profile image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *bootstrap.App) error {
				out, err := app.ProfileCLI.UploadImage(context.Background(), args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "image uploaded: %s\n", out.ImagePath)
				return nil
			})
		},
	}
	profile.AddCommand(upload)

	return profile
}
