package out_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	adapter "fittrack/internal/modules/workout/adapter/out"
	"fittrack/internal/modules/workout/domain"
	workoutout "fittrack/internal/modules/workout/port/out"
	"fittrack/internal/platform/apiclient"
	apperrors "fittrack/internal/platform/errors"
)

type staticToken string

func (s staticToken) Token(context.Context) string { return string(s) }

func newAPI(t *testing.T, handler http.Handler) *adapter.HTTPWorkoutAPI {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return adapter.NewHTTPWorkoutAPI(apiclient.New(server.URL, staticToken("tok-1"), nil, zerolog.Nop()))
}

func TestListDecodesWorkouts(t *testing.T) {
	t.Parallel()
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workouts" || r.Method != http.MethodGet {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("missing bearer token, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":7,"name":"Trail Run","workoutDate":"2026-04-19T08:00:00Z","durationMinutes":40,"caloriesBurned":310,"intensity":"MEDIUM","exercises":[{"name":"hill repeats","sets":4,"reps":1}]}]`))
	}))

	workouts, err := api.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("expected one workout, got %d", len(workouts))
	}
	w := workouts[0]
	if w.ID != 7 || w.Name != "Trail Run" || w.Intensity != domain.IntensityMedium || len(w.Exercises) != 1 {
		t.Fatalf("unexpected workout: %+v", w)
	}
	if !w.Date.Equal(time.Date(2026, 4, 19, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date: %v", w.Date)
	}
}

func TestCreateSendsNonNilExercises(t *testing.T) {
	t.Parallel()
	var body map[string]json.RawMessage
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/workouts" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))

	err := api.Create(context.Background(), workoutout.Draft{
		Name:            "Swim",
		Date:            time.Date(2026, 4, 21, 7, 0, 0, 0, time.UTC),
		DurationMinutes: 30,
		Intensity:       domain.IntensityLow,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if string(body["exercises"]) != "[]" {
		t.Fatalf("exercises must serialize as an empty array, got %s", body["exercises"])
	}
	if _, ok := body["id"]; ok {
		t.Fatalf("create payload must not carry an id")
	}
}

func TestGetMissingWorkoutIsNotFound(t *testing.T) {
	t.Parallel()
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"workout not found"}`, http.StatusNotFound)
	}))

	if _, err := api.Get(context.Background(), 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteTargetsWorkoutPath(t *testing.T) {
	t.Parallel()
	var gotPath, gotMethod string
	api := newAPI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotMethod = r.URL.Path, r.Method
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := api.Delete(context.Background(), 9); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/workouts/9" {
		t.Fatalf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	t.Parallel()
	cache, err := adapter.NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	ctx := context.Background()
	first := []domain.Workout{
		{ID: 1, Name: "Old Row", Date: time.Date(2026, 4, 1, 6, 0, 0, 0, time.UTC), DurationMinutes: 20, Intensity: domain.IntensityLow},
	}
	if err := cache.Replace(ctx, first); err != nil {
		t.Fatalf("first replace: %v", err)
	}

	second := []domain.Workout{
		{ID: 2, Name: "Long Ride", Date: time.Date(2026, 4, 18, 9, 0, 0, 0, time.UTC), DurationMinutes: 90, CaloriesBurned: 600, Intensity: domain.IntensityHigh,
			Exercises: []domain.Exercise{{Name: "intervals", Sets: 6, Reps: 1}}},
		{ID: 3, Name: "Recovery Walk", Date: time.Date(2026, 4, 19, 18, 0, 0, 0, time.UTC), DurationMinutes: 25, Intensity: domain.IntensityLow},
	}
	if err := cache.Replace(ctx, second); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := cache.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("replace must drop stale rows, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 2 {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got[1].Name != "Long Ride" || len(got[1].Exercises) != 1 || got[1].Exercises[0].Sets != 6 {
		t.Fatalf("cached workout lost detail: %+v", got[1])
	}
	if !got[1].Date.Equal(second[0].Date) {
		t.Fatalf("date round-trip mismatch: %v", got[1].Date)
	}
}
