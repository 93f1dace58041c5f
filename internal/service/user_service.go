package service

import (
	"context"

	"postboard/internal/apperr"
	"postboard/internal/models"
	"postboard/internal/repository"
)

type UserService struct {
	users repository.Users
	posts repository.Posts
}

func NewUserService(users repository.Users, posts repository.Posts) *UserService {
	return &UserService{users: users, posts: posts}
}

// Profile returns the user and all of their posts, newest first.
func (s *UserService) Profile(ctx context.Context, id string) (*models.ProfilePage, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User", id)
	}

	posts, err := s.posts.ListByAuthor(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ProfilePage{User: u, Posts: posts}, nil
}
