package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fittrack/internal/modules/auth/domain"
	authout "fittrack/internal/modules/auth/port/out"
	apperrors "fittrack/internal/platform/errors"
)

// FileCredentialStore keeps the two durable entries, the raw token and
// the user JSON, as files under the state directory. Writes land in temp
// files first and are renamed into place, so a crash can never leave one
// entry updated without the other being writable.
type FileCredentialStore struct {
	tokenPath string
	userPath  string
}

func NewFileCredentialStore(stateDir string) *FileCredentialStore {
	return &FileCredentialStore{
		tokenPath: filepath.Join(stateDir, "token"),
		userPath:  filepath.Join(stateDir, "user.json"),
	}
}

var _ authout.CredentialStore = (*FileCredentialStore)(nil)

func (s *FileCredentialStore) Save(_ context.Context, token string, user domain.User) error {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	if err := writeAtomic(s.userPath, payload, 0o600); err != nil {
		return fmt.Errorf("write user: %w", err)
	}
	if err := writeAtomic(s.tokenPath, []byte(token), 0o600); err != nil {
		// Roll the user entry back so the pair stays consistent.
		_ = os.Remove(s.userPath)
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (string, domain.User, error) {
	tokenBytes, err := os.ReadFile(s.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.User{}, apperrors.ErrNotAuthenticated
		}
		return "", domain.User{}, fmt.Errorf("read token: %w", err)
	}
	userBytes, err := os.ReadFile(s.userPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", domain.User{}, apperrors.ErrNotAuthenticated
		}
		return "", domain.User{}, fmt.Errorf("read user: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		// An undecodable user record is corrupt credential state, the
		// same class as a missing entry: drop both and start clean.
		_ = os.Remove(s.tokenPath)
		_ = os.Remove(s.userPath)
		return "", domain.User{}, apperrors.ErrNotAuthenticated
	}
	token := strings.TrimSpace(string(tokenBytes))
	if token == "" {
		return "", domain.User{}, apperrors.ErrNotAuthenticated
	}
	return token, user, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	for _, path := range []string{s.tokenPath, s.userPath} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("clear %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// Token satisfies apiclient.TokenSource; absent credentials yield "".
func (s *FileCredentialStore) Token(ctx context.Context) string {
	token, _, err := s.Load(ctx)
	if err != nil {
		return ""
	}
	return token
}

func writeAtomic(path string, payload []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
