package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"fittrack/internal/modules/auth/domain"
	"fittrack/internal/modules/auth/dto"
	authin "fittrack/internal/modules/auth/port/in"
	authout "fittrack/internal/modules/auth/port/out"
	"fittrack/internal/modules/auth/service"
	"fittrack/internal/platform/clock"
	apperrors "fittrack/internal/platform/errors"
	"fittrack/internal/platform/validate"
)

// Interactor owns the session lifecycle: init → authenticated or not →
// cleared. All mutations run to completion before the next fires (both
// front ends are single event loops), so no locking is needed here.
type Interactor struct {
	store     authout.CredentialStore
	api       authout.AuthAPI
	inspector service.TokenInspector
	clock     clock.Clock
	log       zerolog.Logger

	session domain.Session
}

func NewInteractor(store authout.CredentialStore, api authout.AuthAPI, clk clock.Clock, log zerolog.Logger) authin.Usecase {
	return &Interactor{
		store:   store,
		api:     api,
		clock:   clk,
		log:     log,
		session: domain.Session{Restoring: true},
	}
}

// Restore rebuilds the session from the durable store. Expired
// credentials clear the store and surface ErrSessionExpired; unparsable
// ones clear it silently. Either way the initial load is marked done.
func (i *Interactor) Restore(ctx context.Context) (dto.SessionOutput, error) {
	defer func() { i.session.Restoring = false }()
	i.session.User = nil

	token, user, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotAuthenticated) {
			return i.snapshot(), nil
		}
		return i.snapshot(), err
	}

	expiresAt, err := i.inspector.ExpiresAt(token)
	if err != nil {
		// Corrupt credential: not user-caused, clean up without a notice.
		i.log.Warn().Err(err).Msg("discarding unparsable stored token")
		if clearErr := i.store.Clear(ctx); clearErr != nil {
			return i.snapshot(), clearErr
		}
		return i.snapshot(), nil
	}
	if !expiresAt.After(i.clock.Now()) {
		if clearErr := i.store.Clear(ctx); clearErr != nil {
			return i.snapshot(), clearErr
		}
		return i.snapshot(), apperrors.ErrSessionExpired
	}

	i.session.User = &user
	return i.snapshot(), nil
}

// Login authenticates against the API and adopts the returned user.
// Storage and memory change together or not at all.
func (i *Interactor) Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error) {
	if err := validate.Struct(input); err != nil {
		return i.snapshot(), err
	}
	result, err := i.api.Login(ctx, input.Username, input.Password)
	if err != nil {
		return i.snapshot(), err
	}
	if err := i.store.Save(ctx, result.Token, result.User); err != nil {
		return i.snapshot(), err
	}
	user := result.User
	i.session.User = &user
	i.session.Restoring = false
	i.log.Info().Str("username", user.Username).Msg("logged in")
	return i.snapshot(), nil
}

// Register forwards to the registration endpoint. It never establishes a
// session; callers log in separately afterwards.
func (i *Interactor) Register(ctx context.Context, input dto.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return i.api.Register(ctx, authout.RegisterRequest{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		FullName:    input.FullName,
		Weight:      input.Weight,
		Height:      input.Height,
		FitnessGoal: input.FitnessGoal,
	})
}

// Logout clears storage and memory unconditionally.
func (i *Interactor) Logout(ctx context.Context) error {
	if err := i.store.Clear(ctx); err != nil {
		return err
	}
	i.session.User = nil
	return nil
}

// UpdateUser merges partial fields into the current user and re-persists
// the record next to the untouched token. No-op when logged out.
func (i *Interactor) UpdateUser(ctx context.Context, input dto.UpdateUserInput) (dto.SessionOutput, error) {
	if i.session.User == nil {
		return i.snapshot(), nil
	}
	token, _, err := i.store.Load(ctx)
	if err != nil {
		return i.snapshot(), err
	}
	merged := i.session.User.Merge(domain.UserPatch{
		Username: input.Username,
		Email:    input.Email,
		Roles:    input.Roles,
	})
	if err := i.store.Save(ctx, token, merged); err != nil {
		return i.snapshot(), err
	}
	i.session.User = &merged
	return i.snapshot(), nil
}

// Current returns the in-memory session without touching storage.
func (i *Interactor) Current(_ context.Context) dto.SessionOutput {
	return i.snapshot()
}

func (i *Interactor) snapshot() dto.SessionOutput {
	out := dto.SessionOutput{
		Authenticated: i.session.Authenticated(),
		Restoring:     i.session.Restoring,
	}
	if i.session.User != nil {
		out.User = &dto.UserOutput{
			ID:       i.session.User.ID,
			Username: i.session.User.Username,
			Email:    i.session.User.Email,
			Roles:    append([]string(nil), i.session.User.Roles...),
		}
	}
	return out
}
