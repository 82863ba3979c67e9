// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/internal/utils"
	"github.com/MKhiriev/go-keeplog/models"
)

type authService struct {
	remote adapter.RemoteAdapter
	creds  models.Credentials
	logger *logger.Logger
}

// NewAuthService wires an auth service over the given remote adapter using
// the configured credentials for the login fallback.
func NewAuthService(remote adapter.RemoteAdapter, cfg *config.StructuredConfig, log *logger.Logger) AuthService {
	return &authService{
		remote: remote,
		creds:  models.Credentials{User: cfg.Auth.User, Pass: cfg.Auth.Pass},
		logger: log.GetChildLogger("service", "auth"),
	}
}

// Authenticate implements AuthService.
//
// The saved token is tried first: if it is present and not visibly expired,
// the session is resumed without sending the password. A rejected resume
// falls through to a credential login; any other resume failure (network,
// remote outage) is returned as-is so the caller does not burn a login
// attempt on a transient error.
func (a *authService) Authenticate(ctx context.Context, state models.State) (models.State, error) {
	if state.Token != "" && !utils.TokenExpired(state.Token) {
		err := a.remote.Resume(ctx, a.creds, state.Token, state.Session)
		if err == nil {
			a.logger.Debug().Msg("session resumed from saved token")
			return a.snapshot(state), nil
		}
		if !errors.Is(err, adapter.ErrAuth) {
			return models.State{}, fmt.Errorf("resume session: %w", err)
		}
		a.logger.Info().Msg("saved session rejected, falling back to login")
	} else if state.Token != "" {
		a.logger.Debug().Msg("saved token expired, skipping resume")
	}

	if err := a.remote.Login(ctx, a.creds); err != nil {
		if errors.Is(err, adapter.ErrAuth) {
			return models.State{}, fmt.Errorf("%w: %v", ErrAuthenticationFailed, err)
		}
		return models.State{}, fmt.Errorf("login: %w", err)
	}

	a.logger.Info().Str("user", a.creds.User).Msg("logged in with credentials")
	return a.snapshot(state), nil
}

// snapshot returns the state with the adapter's current token and session
// blob, preserving the checksum ledger untouched.
func (a *authService) snapshot(state models.State) models.State {
	out := state.Clone()
	out.Token = a.remote.CurrentToken()
	out.Session = a.remote.DumpSession()
	return out
}
