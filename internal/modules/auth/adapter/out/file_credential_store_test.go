package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	adapter "fittrack/internal/modules/auth/adapter/out"
	"fittrack/internal/modules/auth/domain"
	apperrors "fittrack/internal/platform/errors"
)

func TestFileCredentialStoreRoundTrip(t *testing.T) {
	t.Parallel()
	store := adapter.NewFileCredentialStore(t.TempDir())

	user := domain.User{ID: 7, Username: "leo", Roles: []string{"USER"}}
	if err := store.Save(context.Background(), "tok-123", user); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "tok-123" || loaded.Username != "leo" || len(loaded.Roles) != 1 {
		t.Fatalf("unexpected load result: %q %+v", token, loaded)
	}
}

func TestFileCredentialStoreClearsCorruptUserRecord(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	store := adapter.NewFileCredentialStore(dir)

	if err := store.Save(context.Background(), "tok-123", domain.User{ID: 7, Username: "leo"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("corrupt user file: %v", err)
	}

	if _, _, err := store.Load(context.Background()); !errors.Is(err, apperrors.ErrNotAuthenticated) {
		t.Fatalf("corrupt user record must read as unauthenticated, got %v", err)
	}
	for _, name := range []string{"token", "user.json"} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("%s must be removed after corruption, got %v", name, err)
		}
	}
}
