package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"postboard/internal/models"

	"github.com/google/uuid"
)

type PostRepository struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db, now: time.Now}
}

var _ Posts = (*PostRepository)(nil)

const selectPostColumns = `
SELECT p.id, p.content, p.author_id, u.name, p.created_at
FROM posts p
JOIN users u ON u.id = p.author_id`

// rowid breaks ties between posts created in the same millisecond
const newestFirst = ` ORDER BY p.created_at DESC, p.rowid DESC`

const (
	insertPostSQL          = `INSERT INTO posts (id, content, author_id, created_at) VALUES (?, ?, ?, ?)`
	updatePostSQL          = `UPDATE posts SET content = ? WHERE id = ?`
	deletePostSQL          = `DELETE FROM posts WHERE id = ?`
	selectPostByIDSQL      = selectPostColumns + ` WHERE p.id = ?`
	selectPostsSQL         = selectPostColumns + newestFirst
	selectPostsByAuthorSQL = selectPostColumns + ` WHERE p.author_id = ?` + newestFirst
)

// Create validates p and inserts it. If ID or CreatedAt are empty, they’re set.
func (r *PostRepository) Create(ctx context.Context, p *models.Post) error {
	if err := validateRecord(p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = r.now().UTC().Truncate(time.Millisecond)
	}

	_, err := r.db.ExecContext(ctx, insertPostSQL, p.ID, p.Content, p.Author.ID, p.CreatedAt.UnixMilli())
	if err != nil {
		return translate(fmt.Sprintf("insert post %q", p.ID), err)
	}
	return nil
}

// GetByID fetches a post with its author resolved. Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPostByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, translate(fmt.Sprintf("select post %q", id), err)
	}
	return &p, nil
}

// List returns every post, newest first.
func (r *PostRepository) List(ctx context.Context) ([]models.Post, error) {
	return r.query(ctx, "list posts", selectPostsSQL)
}

// ListByAuthor returns the posts written by authorID, newest first.
func (r *PostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return r.query(ctx, fmt.Sprintf("list posts by %q", authorID), selectPostsByAuthorSQL, authorID)
}

// Update validates p and stores its content. The author is immutable.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	if err := validateRecord(p); err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, updatePostSQL, p.Content, p.ID); err != nil {
		return translate(fmt.Sprintf("update post %q", p.ID), err)
	}
	return nil
}

// Delete removes the post with the given id. Deleting a missing post is not an error.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, deletePostSQL, id); err != nil {
		return translate(fmt.Sprintf("delete post %q", id), err)
	}
	return nil
}

func (r *PostRepository) query(ctx context.Context, op, q string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, translate(op, err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 64)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, translate(op, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, translate(op, err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var (
		p         models.Post
		createdAt int64
	)
	if err := row.Scan(&p.ID, &p.Content, &p.Author.ID, &p.Author.Name, &createdAt); err != nil {
		return models.Post{}, err
	}
	p.CreatedAt = time.UnixMilli(createdAt).UTC()
	return p, nil
}
