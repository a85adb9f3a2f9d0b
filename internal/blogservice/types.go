package blogservice

import (
	"database/sql"

	"github.com/google/uuid"
)

// Blog is a persisted blog. BlogID is assigned on creation and never changes.
type Blog struct {
	BlogID uuid.UUID `json:"blog_id"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// CreateBlog holds the fields a client supplies to create a blog.
type CreateBlog struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// UpdateBlog replaces the mutable fields of a blog. Both fields are always
// overwritten.
type UpdateBlog struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// BlogModel is the postgres backed BlogRepository.
type BlogModel struct {
	db *sql.DB
}
