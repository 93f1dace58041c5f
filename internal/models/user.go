package models

import "time"

// User is a registered account. Password is only populated on the way in
// and is never stored or serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name" validate:"required,max=50"`
	Email        string    `json:"email" validate:"required,email"`
	Password     string    `json:"-" validate:"required,min=6"`
	PasswordHash string    `json:"-"` // don’t expose hash
	CreatedAt    time.Time `json:"createdAt"`
}
