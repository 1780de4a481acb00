package services_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"moviedb/internal/models"
	"moviedb/internal/repositories"
	"moviedb/internal/services"
	"moviedb/internal/storage"

	"github.com/jaswdr/faker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newKVAccountService(store storage.Store, opts ...services.AccountOption) *services.AccountService {
	keys := repositories.Keys{Namespace: repositories.DefaultNamespace}
	return services.NewAccountService(
		repositories.NewKVUserRepository(store, keys),
		repositories.NewKVSessionRepository(store, keys),
		opts...,
	)
}

func TestAccountService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	fixed := time.UnixMilli(1700000000000)
	accounts := services.NewAccountService(mockRepo, new(MockSessionRepository),
		services.WithIDGenerator(func() string { return "user-1" }),
		services.WithClock(func() time.Time { return fixed }),
	)

	req := models.RegisterRequest{Username: "testuser", Email: "test@example.com", Password: "password123"}

	// Test successful registration
	mockRepo.On("GetByUsername", req.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", req.Email).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()

	user, err := accounts.RegisterUser(req)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "test@example.com", user.Email)
	assert.Equal(t, "password123", user.Password)
	assert.Equal(t, fixed.UnixMilli(), user.CreatedAt)
	mockRepo.AssertExpectations(t)

	// Test username already taken
	mockRepo.On("GetByUsername", req.Username).Return(&models.User{ID: "1"}, nil).Once()
	_, err = accounts.RegisterUser(req)
	assert.ErrorIs(t, err, services.ErrUsernameTaken)
	mockRepo.AssertExpectations(t)

	// Test email already registered
	mockRepo.On("GetByUsername", req.Username).Return(nil, repositories.ErrUserNotFound).Once()
	mockRepo.On("GetByEmail", req.Email).Return(&models.User{ID: "1"}, nil).Once()
	_, err = accounts.RegisterUser(req)
	assert.ErrorIs(t, err, services.ErrEmailTaken)
	mockRepo.AssertExpectations(t)

	// Test storage failure while checking username
	mockRepo.On("GetByUsername", req.Username).Return(nil, fmt.Errorf("disk on fire")).Once()
	_, err = accounts.RegisterUser(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
	var verr *services.ValidationError
	assert.False(t, errors.As(err, &verr))
	mockRepo.AssertExpectations(t)
}

func TestAccountService_RegisterUser_FieldRulesInOrder(t *testing.T) {
	tests := []struct {
		name     string
		req      models.RegisterRequest
		expected error
	}{
		{"missing username", models.RegisterRequest{Email: "a@b.c", Password: "secret1"}, services.ErrMissingFields},
		{"missing email", models.RegisterRequest{Username: "a", Password: "secret1"}, services.ErrMissingFields},
		{"missing password", models.RegisterRequest{Username: "a", Email: "a@b.c"}, services.ErrMissingFields},
		{"all missing", models.RegisterRequest{}, services.ErrMissingFields},
		{"short password beats bad email", models.RegisterRequest{Username: "a", Email: "nope", Password: "12345"}, services.ErrPasswordTooShort},
		{"bad email", models.RegisterRequest{Username: "a", Email: "nope", Password: "123456"}, services.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No repository calls are expected: field rules short-circuit.
			mockRepo := new(MockUserRepository)
			accounts := services.NewAccountService(mockRepo, new(MockSessionRepository))

			_, err := accounts.RegisterUser(tt.req)
			assert.ErrorIs(t, err, tt.expected)

			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.expected.Error(), verr.Reason())
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAccountService_PasswordBoundary(t *testing.T) {
	accounts := newKVAccountService(storage.NewMemoryStore())

	_, err := accounts.RegisterUser(models.RegisterRequest{Username: "five", Email: "five@x.io", Password: "12345"})
	assert.ErrorIs(t, err, services.ErrPasswordTooShort)

	_, err = accounts.RegisterUser(models.RegisterRequest{Username: "six", Email: "six@x.io", Password: "123456"})
	assert.NoError(t, err)
}

func TestAccountService_Uniqueness(t *testing.T) {
	accounts := newKVAccountService(storage.NewMemoryStore())

	_, err := accounts.RegisterUser(models.RegisterRequest{Username: "alice", Email: "alice@x.io", Password: "secret1"})
	require.NoError(t, err)

	_, err = accounts.RegisterUser(models.RegisterRequest{Username: "alice", Email: "other@x.io", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	_, err = accounts.RegisterUser(models.RegisterRequest{Username: "other", Email: "alice@x.io", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrEmailTaken)

	// username is checked before email
	_, err = accounts.RegisterUser(models.RegisterRequest{Username: "alice", Email: "alice@x.io", Password: "secret1"})
	assert.ErrorIs(t, err, services.ErrUsernameTaken)

	users, err := accounts.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAccountService_RegisterThenAuthenticate(t *testing.T) {
	fake := faker.New()
	accounts := newKVAccountService(storage.NewMemoryStore())

	for i := 0; i < 25; i++ {
		username := fmt.Sprintf("%s%d", fake.Internet().User(), i)
		email := fmt.Sprintf("%s%d@%s", strings.ToLower(fake.Person().FirstName()), i, fake.Internet().Domain())
		password := fake.Lorem().Word() + "-secret"

		user, err := accounts.RegisterUser(models.RegisterRequest{Username: username, Email: email, Password: password})
		require.NoError(t, err)

		byName, err := accounts.Authenticate(username, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byName.ID)

		byEmail, err := accounts.Authenticate(email, password)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byEmail.ID)
	}

	users, err := accounts.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 25)
}

func TestAccountService_Authenticate(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accounts := services.NewAccountService(mockRepo, new(MockSessionRepository))

	users := []models.User{
		{ID: "1", Username: "alice", Email: "alice@example.com", Password: "password123"},
		{ID: "2", Username: "bob", Email: "bob@example.com", Password: "hunter22"},
	}

	// Test login by username and by email
	mockRepo.On("GetAll").Return(users, nil).Twice()
	u, err := accounts.Authenticate("bob", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "2", u.ID)
	u, err = accounts.Authenticate("alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	mockRepo.AssertExpectations(t)

	// Test wrong password and unknown identifier give the same error
	mockRepo.On("GetAll").Return(users, nil).Times(3)
	_, errWrongPassword := accounts.Authenticate("alice", "wrongpassword")
	_, errUnknownUser := accounts.Authenticate("nonexistentuser", "password123")
	_, errCase := accounts.Authenticate("ALICE", "password123")
	assert.ErrorIs(t, errWrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errCase, services.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
	mockRepo.AssertExpectations(t)

	// Test repository failure
	mockRepo.On("GetAll").Return(nil, fmt.Errorf("database error")).Once()
	_, err = accounts.Authenticate("alice", "password123")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockRepo.AssertExpectations(t)
}

func TestAccountService_Authenticate_FirstMatchWins(t *testing.T) {
	mockRepo := new(MockUserRepository)
	accounts := services.NewAccountService(mockRepo, new(MockSessionRepository))

	// bob's username equals alice's email; registration order decides.
	users := []models.User{
		{ID: "1", Username: "alice", Email: "shared", Password: "same-pass"},
		{ID: "2", Username: "shared", Email: "bob@example.com", Password: "same-pass"},
	}
	mockRepo.On("GetAll").Return(users, nil).Once()

	u, err := accounts.Authenticate("shared", "same-pass")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)
	mockRepo.AssertExpectations(t)
}

func TestAccountService_BCrypt(t *testing.T) {
	store := storage.NewMemoryStore()
	accounts := newKVAccountService(store, services.WithPasswordHasher(services.BCryptHasher{Cost: 4}))

	user, err := accounts.RegisterUser(models.RegisterRequest{Username: "alice", Email: "alice@x.io", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", user.Password)

	raw, err := store.Get("moviedb_users")
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret1")

	u, err := accounts.Authenticate("alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, u.ID)

	_, err = accounts.Authenticate("alice", "secret2")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAccountService_Session(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockSession := new(MockSessionRepository)
	accounts := services.NewAccountService(mockRepo, mockSession)

	alice := &models.User{ID: "1", Username: "alice", Email: "alice@example.com"}

	// Test set session for a registered user
	mockRepo.On("GetByID", "1").Return(alice, nil).Once()
	mockSession.On("Set", alice).Return(nil).Once()
	require.NoError(t, accounts.SetSession(alice))

	mockSession.On("Get").Return(alice, nil).Once()
	u, err := accounts.GetSession()
	require.NoError(t, err)
	assert.Equal(t, alice, u)

	// Test unknown user is rejected
	mockRepo.On("GetByID", "99").Return(nil, repositories.ErrUserNotFound).Once()
	err = accounts.SetSession(&models.User{ID: "99"})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	// Test nil clears
	mockSession.On("Clear").Return(nil).Once()
	require.NoError(t, accounts.SetSession(nil))

	mockRepo.AssertExpectations(t)
	mockSession.AssertExpectations(t)
}

func TestAccountService_SessionSurvivesRestart(t *testing.T) {
	store := storage.NewMemoryStore()

	accounts := newKVAccountService(store)
	user, err := accounts.RegisterUser(models.RegisterRequest{Username: "alice", Email: "alice@x.io", Password: "secret1"})
	require.NoError(t, err)
	require.NoError(t, accounts.SetSession(user))

	// A fresh service over the same store sees the same session.
	restarted := newKVAccountService(store)
	got, err := restarted.GetSession()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *user, *got)

	require.NoError(t, restarted.SetSession(nil))
	got, err = newKVAccountService(store).GetSession()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAccountService_DefaultIDsAreUnique(t *testing.T) {
	accounts := newKVAccountService(storage.NewMemoryStore())

	a, err := accounts.RegisterUser(models.RegisterRequest{Username: "a", Email: "a@x.io", Password: "secret1"})
	require.NoError(t, err)
	b, err := accounts.RegisterUser(models.RegisterRequest{Username: "b", Email: "b@x.io", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Positive(t, a.CreatedAt)
}

func TestNewPasswordHasher(t *testing.T) {
	h, err := services.NewPasswordHasher("")
	require.NoError(t, err)
	assert.IsType(t, services.PlaintextHasher{}, h)

	h, err = services.NewPasswordHasher(services.HashingBCrypt)
	require.NoError(t, err)
	assert.IsType(t, services.BCryptHasher{}, h)

	_, err = services.NewPasswordHasher("rot13")
	assert.Error(t, err)
}
