package service

import "time"

// RegisterInput is the payload accepted when creating an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// PostInput carries the client-writable fields of a post. A nil Content
// means the field was not provided.
type PostInput struct {
	Content *string
}

// TokenConfig configures session token issuing.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}
