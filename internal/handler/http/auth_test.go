// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StayKeeper Authors

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/staykeeper/staykeeper/internal/service"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/models"
	"github.com/stretchr/testify/assert"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 1, Email: user.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed-token"), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer signed-token", resp.Header.Get("Authorization"))
}

func TestRegister_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: %w", service.ErrValidation, errors.New("email: must be a valid address"))
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"secret1"}`, false)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegister_EmailAlreadyExists(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: &mockAuthService{}})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/register", `{"email"`, false)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Email: user.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken("signed-token"), nil
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Bearer signed-token", resp.Header.Get("Authorization"))
	assert.Contains(t, readBody(t, resp), "alice@example.com")
}

func TestLogin_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`, false)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Authorization"))
}

func TestLogin_UnknownEmail(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"secret1"}`, false)

	// unknown email and wrong password are indistinguishable to the caller
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, user models.User) (models.User, error) {
			return models.User{UserID: 7, Email: user.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}
	h := newTestHandler(&service.Services{AuthService: auth})

	resp := doRequest(t, h, http.MethodPost, "/api/auth/login",
		`{"email":"alice@example.com","password":"secret1"}`, false)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
