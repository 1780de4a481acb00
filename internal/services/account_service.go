package services

import (
	"errors"
	"fmt"
	"time"

	"moviedb/internal/logging"
	"moviedb/internal/models"
	"moviedb/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountService owns user records and the signed-in user pointer.
type AccountService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	hasher      PasswordHasher
	validate    *validator.Validate
	newID       func() string
	now         func() time.Time
	log         zerolog.Logger
}

// AccountOption customizes an AccountService.
type AccountOption func(*AccountService)

// WithPasswordHasher sets how passwords are stored. The default keeps them in plaintext.
func WithPasswordHasher(h PasswordHasher) AccountOption {
	return func(s *AccountService) { s.hasher = h }
}

// WithIDGenerator sets the source of new user ids.
func WithIDGenerator(f func() string) AccountOption {
	return func(s *AccountService) { s.newID = f }
}

// WithClock sets the source of creation timestamps.
func WithClock(f func() time.Time) AccountOption {
	return func(s *AccountService) { s.now = f }
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, opts ...AccountOption) *AccountService {
	s := &AccountService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      PlaintextHasher{},
		validate:    validator.New(),
		newID:       uuid.NewString,
		now:         time.Now,
		log:         logging.Component("accounts"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListUsers returns all registered users in registration order.
func (s *AccountService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// RegisterUser validates the request, stores a new user and returns it.
// It does not sign the user in.
func (s *AccountService) RegisterUser(req models.RegisterRequest) (*models.User, error) {
	if err := s.checkFields(req); err != nil {
		return nil, err
	}

	// Check if username or email already exists
	if _, err := s.userRepo.GetByUsername(req.Username); err == nil {
		return nil, invalid(ErrUsernameTaken)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, invalid(ErrEmailTaken)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	password, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        s.newID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  password,
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// checkFields reports the first failing field rule: required, password length, email shape.
func (s *AccountService) checkFields(req models.RegisterRequest) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate registration: %w", err)
	}

	failed := make(map[string]bool, len(fieldErrs))
	for _, fe := range fieldErrs {
		failed[fe.Field()+"."+fe.Tag()] = true
	}
	switch {
	case failed["Username.required"] || failed["Email.required"] || failed["Password.required"]:
		return invalid(ErrMissingFields)
	case failed["Password.min"]:
		return invalid(ErrPasswordTooShort)
	case failed["Email.contains"]:
		return invalid(ErrInvalidEmail)
	}
	return fmt.Errorf("failed to validate registration: %w", err)
}

// Authenticate returns the first user, in registration order, whose username or
// email equals identifier and whose password matches.
func (s *AccountService) Authenticate(identifier, password string) (*models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		u := users[i]
		if u.Username != identifier && u.Email != identifier {
			continue
		}
		if s.hasher.Compare(u.Password, password) {
			s.log.Debug().Str("user_id", u.ID).Msg("user authenticated")
			return &u, nil
		}
	}

	s.log.Debug().Msg("authentication failed")
	return nil, ErrInvalidCredentials
}

// GetSession returns the signed-in user, or nil.
func (s *AccountService) GetSession() (*models.User, error) {
	return s.sessionRepo.Get()
}

// SetSession signs user in; nil signs out. A non-nil user must be registered.
func (s *AccountService) SetSession(user *models.User) error {
	if user == nil {
		if err := s.sessionRepo.Clear(); err != nil {
			return err
		}
		s.log.Debug().Msg("session cleared")
		return nil
	}

	stored, err := s.userRepo.GetByID(user.ID)
	if err != nil {
		return fmt.Errorf("cannot start session for user %s: %w", user.ID, err)
	}
	if err := s.sessionRepo.Set(stored); err != nil {
		return err
	}
	s.log.Debug().Str("user_id", stored.ID).Msg("session set")
	return nil
}
