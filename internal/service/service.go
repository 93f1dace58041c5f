package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
)

// Authorization is the identity verifier: it registers and logs users in,
// issues session tokens and resolves a token back to a user id.
type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	CurrentUser(ctx context.Context, userID string) (*models.User, error)
}

// Posts exposes post CRUD. Mutations take the authenticated caller's id.
type Posts interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, callerID string, in PostInput) (*models.Post, error)
	Update(ctx context.Context, callerID, id string, in PostInput) (*models.Post, error)
	Delete(ctx context.Context, callerID, id string) error
}

// Users exposes read-only profile access.
type Users interface {
	Profile(ctx context.Context, id string) (*models.ProfilePage, error)
}

// Health reports whether the store is reachable.
type Health interface {
	Check(ctx context.Context) error
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Posts
	Users
	Health
}

// NewService wires repository layer into concrete services.
func NewService(repos *repository.Repository, tokens TokenConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, tokens),
		Posts:         NewPostService(repos.Posts),
		Users:         NewUserService(repos.Users, repos.Posts),
		Health:        NewHealthService(repos.Health),
	}
}
