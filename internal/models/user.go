package models

import "time"

// User represents a registered account.
// Password is kept as given (or as a hash when hashing is enabled).
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

// Created returns the creation timestamp as a time.Time.
func (u User) Created() time.Time {
	return time.UnixMilli(u.CreatedAt)
}

// RegisterRequest carries the fields of a registration form.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,contains=@"`
	Password string `json:"password" validate:"required,min=6"`
}
