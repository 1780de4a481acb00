package services

import "errors"

// Registration failures, reported one at a time in this order.
var (
	ErrMissingFields    = errors.New("All fields are required.")
	ErrPasswordTooShort = errors.New("Password must be at least 6 characters.")
	ErrInvalidEmail     = errors.New("Please enter a valid email.")
	ErrUsernameTaken    = errors.New("Username already taken.")
	ErrEmailTaken       = errors.New("Email already registered.")
)

// ErrInvalidCredentials is returned for any failed login. It does not say
// whether the identifier or the password was wrong.
var ErrInvalidCredentials = errors.New("Invalid credentials. Please try again.")

// ValidationError is a registration failure that can be shown next to the form.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Reason returns the human-readable message.
func (e *ValidationError) Reason() string { return e.Err.Error() }

func invalid(err error) error {
	return &ValidationError{Err: err}
}
