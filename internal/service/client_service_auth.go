package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/staykeeper/staykeeper/internal/adapter"
	"github.com/staykeeper/staykeeper/internal/store"
	"github.com/staykeeper/staykeeper/internal/utils"
	"github.com/staykeeper/staykeeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter

	mu      sync.RWMutex
	state   IdentityState
	session models.Session
}

// NewClientAuthService builds the owner client's auth service. The returned
// service starts in the loading state; callers must invoke RestoreSession
// once at startup to settle into signed-in or signed-out.
func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{localStore: localStore, adapter: serverAdapter, state: IdentityLoading}
}

func (a *clientAuthService) Register(ctx context.Context, email, password string) (models.Session, error) {
	user := models.User{Email: strings.TrimSpace(email), Password: password}

	_, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapConflict(err, store.ErrEmailAlreadyExists))
	}

	return a.establishSession(ctx, user.Email)
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.Session, error) {
	user := models.User{Email: strings.TrimSpace(email), Password: password}

	_, err := a.adapter.Login(ctx, user)
	if err != nil {
		// on the login path 401 means bad credentials, not a stale token
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, ErrWrongPassword)
		}
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.establishSession(ctx, user.Email)
}

// establishSession converts the adapter's freshly stored bearer token into a
// persisted session and flips the state to signed-in.
func (a *clientAuthService) establishSession(ctx context.Context, email string) (models.Session, error) {
	token := a.adapter.Token()

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("parse user id from token: %w", err)
	}

	session := models.Session{
		UserID:  userID,
		Email:   email,
		Token:   token,
		SavedAt: time.Now(),
	}

	if err = a.localStore.SessionRepository.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save local session: %w", err)
	}

	a.setSignedIn(session)
	return session, nil
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.SessionRepository.GetSession(ctx)
	if err != nil {
		a.setSignedOut()
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.Session{}, ErrNoActiveSession
		}
		return models.Session{}, fmt.Errorf("load local session: %w", err)
	}

	a.adapter.SetToken(session.Token)
	a.setSignedIn(session)
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.localStore.SessionRepository.DeleteSession(ctx); err != nil {
		return fmt.Errorf("delete local session: %w", err)
	}

	a.adapter.SetToken("")
	a.setSignedOut()
	return nil
}

func (a *clientAuthService) State() IdentityState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *clientAuthService) Session() (models.Session, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session, a.state == IdentitySignedIn
}

func (a *clientAuthService) setSignedIn(session models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = IdentitySignedIn
	a.session = session
}

func (a *clientAuthService) setSignedOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = IdentitySignedOut
	a.session = models.Session{}
}
