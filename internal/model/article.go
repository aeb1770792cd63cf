package model

import (
	"time"

	"github.com/google/uuid"
)

// Article is a persisted article row. user_id, is_public and
// created_at are nullable in the schema, so they map to pointers.
type Article struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	IsPublic  *bool      `json:"is_public,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ArticleResponse is the view of an article returned by the API; the
// owning user id is not exposed.
type ArticleResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt *time.Time `json:"created_at"`
}

// Response maps the row to its outward-facing view.
func (a *Article) Response() ArticleResponse {
	return ArticleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

// CreateArticleRequest is shared by create and update; a nil IsPublic
// leaves the stored flag unchanged on update.
type CreateArticleRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsPublic *bool  `json:"is_public"`
}
