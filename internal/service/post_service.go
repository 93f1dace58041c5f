package service

import (
	"context"

	"postboard/internal/apperr"
	"postboard/internal/models"
	"postboard/internal/repository"
)

// PostService implements post CRUD with author ownership checks.
type PostService struct {
	posts repository.Posts
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.find(ctx, id)
}

// Create stores a post authored by callerID. Any author the client sent is
// ignored.
func (s *PostService) Create(ctx context.Context, callerID string, in PostInput) (*models.Post, error) {
	p := &models.Post{Author: models.AuthorRef{ID: callerID}}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.find(ctx, p.ID)
}

// Update applies in to the post when callerID is its author.
func (s *PostService) Update(ctx context.Context, callerID, id string, in PostInput) (*models.Post, error) {
	p, err := s.owned(ctx, callerID, id, "update")
	if err != nil {
		return nil, err
	}
	if in.Content != nil {
		p.Content = *in.Content
	}
	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

// Delete removes the post when callerID is its author.
func (s *PostService) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.owned(ctx, callerID, id, "delete"); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

func (s *PostService) find(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperr.NotFound("Post", id)
	}
	return p, nil
}

// owned loads the post and checks that callerID wrote it. Ids are compared
// as opaque strings.
func (s *PostService) owned(ctx context.Context, callerID, id, action string) (*models.Post, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.AuthorID() != callerID {
		return nil, apperr.Newf(apperr.KindNotOwner, "User %s is not authorized to %s this post", callerID, action)
	}
	return p, nil
}
