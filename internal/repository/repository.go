package repository

import (
	"context"
	"database/sql"
	"fmt"

	"postboard/internal/apperr"
	"postboard/internal/models"
)

// Users is the persistence boundary for accounts.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// Posts is the persistence boundary for posts. Reads resolve the author.
type Posts interface {
	Create(ctx context.Context, p *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error)
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Users  Users
	Posts  Posts
	Health Pinger
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserRepository(db),
		Posts:  NewPostRepository(db),
		Health: &sqlPinger{db: db},
	}
}

type sqlPinger struct {
	db *sql.DB
}

func (p *sqlPinger) Ping(ctx context.Context) error {
	if err := p.db.PingContext(ctx); err != nil {
		return apperr.Wrap(fmt.Errorf("ping database: %w", err), apperr.KindStoreUnavailable, msgStoreUnavailable)
	}
	return nil
}
