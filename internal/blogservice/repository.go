package blogservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrExistsByID = errors.New("blog already exists by id")
	ErrNoBlogByID = errors.New("no blog by id")
)

// BlogRepository stores blogs. Implementations must be safe for concurrent use.
type BlogRepository interface {
	// GetAll returns every stored blog.
	GetAll(ctx context.Context) ([]Blog, error)

	// GetOne returns the blog with the given id or ErrNoBlogByID.
	GetOne(ctx context.Context, id uuid.UUID) (Blog, error)

	// CreateOne stores a new blog under a freshly generated id.
	CreateOne(ctx context.Context, create CreateBlog) (Blog, error)

	// UpdateOne overwrites user_id and name of the blog with the given id.
	// It returns ErrNoBlogByID when no such blog exists.
	UpdateOne(ctx context.Context, id uuid.UUID, update UpdateBlog) (Blog, error)

	// DeleteOne removes the blog with the given id and returns it as it was
	// before deletion.
	DeleteOne(ctx context.Context, id uuid.UUID) (Blog, error)
}

var _ BlogRepository = (*BlogModel)(nil)
