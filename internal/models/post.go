package models

import "time"

// AuthorRef is the {id, name} projection of a post's author.
type AuthorRef struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// Post is a short text authored by a user.
type Post struct {
	ID        string    `json:"id"`
	Content   string    `json:"content" validate:"required,max=1000"`
	Author    AuthorRef `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthorID returns the id of the user the post belongs to.
func (p *Post) AuthorID() string { return p.Author.ID }

// ProfilePage is a user together with everything they have posted.
type ProfilePage struct {
	User  *User  `json:"user"`
	Posts []Post `json:"posts"`
}
