package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/zealcatalyst/zeal-client/internal/backend"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

type mockAuthAPI struct {
	mock.Mock
}

func (m *mockAuthAPI) Login(ctx context.Context, req backend.LoginRequest) (*domain.Token, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *mockAuthAPI) Register(ctx context.Context, req backend.RegisterRequest) (*domain.Token, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Token), args.Error(1)
}

func (m *mockAuthAPI) Me(ctx context.Context) (*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleStudent}

	t.Run("No Persisted Token Is Anonymous", func(t *testing.T) {
		api := new(mockAuthAPI)
		store := NewStore(api, &MemoryStorage{})

		store.Initialize(ctx)

		assert.Equal(t, StateAnonymous, store.State())
		assert.Nil(t, store.User())
		assert.Empty(t, store.Token())
		api.AssertNotCalled(t, "Me", mock.Anything)
	})

	t.Run("Valid Token Rehydrates User", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Me", mock.Anything).Return(user, nil)

		storage := &MemoryStorage{}
		require.NoError(t, storage.Save("T"))
		store := NewStore(api, storage)

		store.Initialize(ctx)

		assert.Equal(t, StateAuthenticated, store.State())
		assert.Equal(t, "u1", store.User().ID)
		assert.Equal(t, "T", store.Token())
	})

	t.Run("Rejected Token Clears Silently", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Me", mock.Anything).Return(nil, backend.ErrUnauthorized)

		storage := &MemoryStorage{}
		require.NoError(t, storage.Save("stale"))
		store := NewStore(api, storage)

		store.Initialize(ctx)

		assert.Equal(t, StateAnonymous, store.State())
		assert.Nil(t, store.User())
		assert.Empty(t, store.Token())

		persisted, _ := storage.Load()
		assert.Empty(t, persisted)
	})

	t.Run("Expired JWT Skips The Network", func(t *testing.T) {
		api := new(mockAuthAPI)

		storage := &MemoryStorage{}
		require.NoError(t, storage.Save(signedToken(t, time.Now().Add(-1*time.Hour))))
		store := NewStore(api, storage)

		store.Initialize(ctx)

		assert.Equal(t, StateAnonymous, store.State())
		api.AssertNotCalled(t, "Me", mock.Anything)

		persisted, _ := storage.Load()
		assert.Empty(t, persisted)
	})

	t.Run("Unexpired JWT Is Tried", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Me", mock.Anything).Return(user, nil)

		storage := &MemoryStorage{}
		require.NoError(t, storage.Save(signedToken(t, time.Now().Add(1*time.Hour))))
		store := NewStore(api, storage)

		store.Initialize(ctx)

		assert.Equal(t, StateAuthenticated, store.State())
		api.AssertCalled(t, "Me", mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleStudent}

	t.Run("Success Persists Token And Sets Session", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Login", mock.Anything, backend.LoginRequest{Email: "a@b.com", Password: "pw"}).
			Return(&domain.Token{AccessToken: "T", User: user}, nil)

		storage := &MemoryStorage{}
		store := NewStore(api, storage)

		got, err := store.Login(ctx, LoginInput{Email: "a@b.com", Password: "pw"})
		require.NoError(t, err)

		assert.Equal(t, "u1", got.ID)
		assert.Equal(t, StateAuthenticated, store.State())
		assert.Equal(t, "T", store.Token())

		persisted, _ := storage.Load()
		assert.Equal(t, "T", persisted)
	})

	t.Run("Failure Leaves Prior Session Untouched", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Me", mock.Anything).Return(&user, nil)
		api.On("Login", mock.Anything, mock.Anything).
			Return(nil, &backend.StatusError{StatusCode: 401, Message: "Incorrect email or password"})

		storage := &MemoryStorage{}
		require.NoError(t, storage.Save("T"))
		store := NewStore(api, storage)
		store.Initialize(ctx)
		require.Equal(t, StateAuthenticated, store.State())

		_, err := store.Login(ctx, LoginInput{Email: "a@b.com", Password: "wrong"})
		require.Error(t, err)

		assert.Equal(t, StateAuthenticated, store.State())
		assert.Equal(t, "T", store.Token())
		assert.Equal(t, "u1", store.User().ID)

		persisted, _ := storage.Load()
		assert.Equal(t, "T", persisted)
	})

	t.Run("Validation Failure Never Hits The Network", func(t *testing.T) {
		api := new(mockAuthAPI)
		store := NewStore(api, &MemoryStorage{})

		_, err := store.Login(ctx, LoginInput{Email: "not-an-email", Password: "pw"})
		require.ErrorIs(t, err, ErrValidation)
		api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Role To Student", func(t *testing.T) {
		api := new(mockAuthAPI)
		api.On("Register", mock.Anything, mock.MatchedBy(func(req backend.RegisterRequest) bool {
			return req.Role == domain.RoleStudent
		})).Return(&domain.Token{AccessToken: "T", User: domain.User{ID: "u2"}}, nil)

		store := NewStore(api, &MemoryStorage{})
		_, err := store.Register(ctx, RegisterInput{
			Email:           "new@b.com",
			Password:        "secret1",
			ConfirmPassword: "secret1",
			FullName:        "New Student",
		})
		require.NoError(t, err)
		assert.Equal(t, StateAuthenticated, store.State())
	})

	t.Run("Password Mismatch Caught Before Network", func(t *testing.T) {
		api := new(mockAuthAPI)
		store := NewStore(api, &MemoryStorage{})

		_, err := store.Register(ctx, RegisterInput{
			Email:           "new@b.com",
			Password:        "secret1",
			ConfirmPassword: "different",
			FullName:        "New Student",
		})
		require.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), "passwords do not match")
		api.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Short Password Rejected", func(t *testing.T) {
		store := NewStore(new(mockAuthAPI), &MemoryStorage{})
		_, err := store.Register(ctx, RegisterInput{
			Email:           "new@b.com",
			Password:        "abc",
			ConfirmPassword: "abc",
			FullName:        "New Student",
		})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestLoginWithToken(t *testing.T) {
	store := NewStore(new(mockAuthAPI), &MemoryStorage{})

	err := store.LoginWithToken("G", domain.User{ID: "u3", Role: domain.RoleTutor})
	require.NoError(t, err)

	assert.Equal(t, StateAuthenticated, store.State())
	assert.Equal(t, "G", store.Token())
	assert.Equal(t, "u3", store.User().ID)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	user := &domain.User{ID: "u1"}

	api := new(mockAuthAPI)
	api.On("Me", mock.Anything).Return(user, nil)

	storage := &MemoryStorage{}
	require.NoError(t, storage.Save("T"))
	store := NewStore(api, storage)
	store.Initialize(ctx)
	require.Equal(t, StateAuthenticated, store.State())

	store.Logout()

	assert.Equal(t, StateAnonymous, store.State())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())

	// A fresh load after logout must not perform any authenticated
	// fetch and must land anonymous.
	api2 := new(mockAuthAPI)
	store2 := NewStore(api2, storage)
	store2.Initialize(ctx)

	assert.Equal(t, StateAnonymous, store2.State())
	api2.AssertNotCalled(t, "Me", mock.Anything)
}
