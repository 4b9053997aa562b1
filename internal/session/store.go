package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zealcatalyst/zeal-client/internal/backend"
	"github.com/zealcatalyst/zeal-client/internal/domain"
	"github.com/zealcatalyst/zeal-client/internal/logger"
)

type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// AuthAPI is the slice of the backend client the store needs.
// *backend.Client satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, req backend.LoginRequest) (*domain.Token, error)
	Register(ctx context.Context, req backend.RegisterRequest) (*domain.Token, error)
	Me(ctx context.Context) (*domain.User, error)
}

// Store is the single source of truth for "who is logged in". It is an
// explicit dependency handed to view models, never ambient state. The
// token and user are set and cleared together: the store never holds a
// token whose user fetch has settled unsuccessfully.
type Store struct {
	api     AuthAPI
	storage Storage

	mu    sync.RWMutex
	state State
	user  *domain.User
	token string
	// gen increments on every session mutation; Initialize only commits
	// its result when no newer mutation happened meanwhile, so
	// overlapping calls resolve last-write-wins.
	gen uint64
}

func NewStore(api AuthAPI, storage Storage) *Store {
	return &Store{
		api:     api,
		storage: storage,
		state:   StateUninitialized,
	}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *Store) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Token implements backend.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Initialize rehydrates the session from the persisted token. A
// missing, expired, or rejected token degrades silently to the
// anonymous state; no error is ever surfaced from here.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	s.state = StateLoading
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	token, err := s.storage.Load()
	if err != nil || token == "" {
		if err != nil {
			logger.Ctx(ctx).Warn().Err(err).Msg("token storage unreadable")
		}
		s.commit(gen, StateAnonymous, "", nil, true)
		return
	}

	if tokenExpired(token, time.Now()) {
		logger.Ctx(ctx).Debug().Msg("persisted token expired, starting anonymous")
		s.commit(gen, StateAnonymous, "", nil, true)
		return
	}

	// The Me call must carry the candidate token, so it is staged
	// before the fetch and rolled back on failure.
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.token = token
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err != nil {
		logger.Ctx(ctx).Debug().Err(err).Msg("token rejected, starting anonymous")
		s.commit(gen, StateAnonymous, "", nil, true)
		return
	}

	s.commit(gen, StateAuthenticated, token, user, false)
}

// commit applies a session result unless a newer mutation won the race.
func (s *Store) commit(gen uint64, state State, token string, user *domain.User, clearStorage bool) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.token = token
	s.user = user
	s.mu.Unlock()

	if clearStorage {
		if err := s.storage.Clear(); err != nil {
			logger.Log.Warn().Err(err).Msg("failed to clear persisted token")
		}
	}
}

// Login exchanges credentials for a session. On any failure the prior
// session state and the persisted token are left untouched and the
// error is returned for the form to display.
func (s *Store) Login(ctx context.Context, in LoginInput) (*domain.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	token, err := s.api.Login(ctx, backend.LoginRequest{
		Email:    in.Email,
		Password: in.Password,
	})
	if err != nil {
		return nil, err
	}

	return s.establish(token)
}

// Register creates an account; same contract as Login.
func (s *Store) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	token, err := s.api.Register(ctx, backend.RegisterRequest{
		Email:    in.Email,
		Password: in.Password,
		FullName: in.FullName,
		Role:     role,
		Phone:    in.Phone,
	})
	if err != nil {
		return nil, err
	}

	return s.establish(token)
}

// LoginWithToken installs a token/user pair obtained out of band, e.g.
// after a federated login exchange. No network call is made.
func (s *Store) LoginWithToken(token string, user domain.User) error {
	_, err := s.establish(&domain.Token{AccessToken: token, User: user})
	return err
}

func (s *Store) establish(token *domain.Token) (*domain.User, error) {
	user := token.User

	s.mu.Lock()
	s.gen++
	s.state = StateAuthenticated
	s.token = token.AccessToken
	s.user = &user
	s.mu.Unlock()

	if err := s.storage.Save(token.AccessToken); err != nil {
		// The in-memory session stands; only persistence failed.
		logger.Log.Warn().Err(err).Msg("failed to persist token")
	}
	return &user, nil
}

// Logout clears the persisted token and the in-memory session
// unconditionally. No network call is required.
func (s *Store) Logout() {
	s.mu.Lock()
	s.gen++
	s.state = StateAnonymous
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Clear(); err != nil {
		logger.Log.Warn().Err(err).Msg("failed to clear persisted token")
	}
}

// tokenExpired peeks at the JWT exp claim without verifying the
// signature; verification is the backend's job. Opaque or claimless
// tokens are passed through for the backend to judge.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
