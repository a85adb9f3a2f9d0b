package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

func NewBlogModel(db *sql.DB) *BlogModel {
	return &BlogModel{db: db}
}

// UniqueViolationError is a helper function to check if the error is a unique constraint error.
func UniqueViolationError(err error, name string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == name {
			return true
		}
	}

	return false
}

func (m *BlogModel) GetAll(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT blog_id, user_id, name
		FROM blogs
		ORDER BY name, blog_id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query blogs: %w", err)
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.BlogID, &blog.UserID, &blog.Name)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blogs: %w", err)
	}

	return blogs, nil
}

func (m *BlogModel) GetOne(ctx context.Context, id uuid.UUID) (Blog, error) {
	query := `
		SELECT blog_id, user_id, name
		FROM blogs
		WHERE blog_id = $1`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, id).Scan(&blog.BlogID, &blog.UserID, &blog.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return Blog{}, ErrNoBlogByID
		default:
			return Blog{}, fmt.Errorf("get blog %s: %w", id, err)
		}
	}

	return blog, nil
}

// CreateOne generates the id here rather than in the database; the primary key
// still rejects a collision.
func (m *BlogModel) CreateOne(ctx context.Context, create CreateBlog) (Blog, error) {
	query := `
		INSERT INTO blogs (blog_id, user_id, name)
		VALUES ($1, $2, $3)
		RETURNING blog_id, user_id, name`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, uuid.New(), create.UserID, create.Name).Scan(&blog.BlogID, &blog.UserID, &blog.Name)
	if err != nil {
		switch {
		case UniqueViolationError(err, "blogs_pkey"):
			return Blog{}, ErrExistsByID
		default:
			return Blog{}, fmt.Errorf("insert blog: %w", err)
		}
	}

	return blog, nil
}

func (m *BlogModel) UpdateOne(ctx context.Context, id uuid.UUID, update UpdateBlog) (Blog, error) {
	query := `
		UPDATE blogs
		SET user_id = $1, name = $2
		WHERE blog_id = $3
		RETURNING blog_id, user_id, name`

	var blog Blog
	err := m.db.QueryRowContext(ctx, query, update.UserID, update.Name, id).Scan(&blog.BlogID, &blog.UserID, &blog.Name)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return Blog{}, ErrNoBlogByID
		default:
			return Blog{}, fmt.Errorf("update blog %s: %w", id, err)
		}
	}

	return blog, nil
}

// DeleteOne looks the blog up and then deletes it, without a transaction. The
// row returned is the one read by the lookup.
func (m *BlogModel) DeleteOne(ctx context.Context, id uuid.UUID) (Blog, error) {
	blog, err := m.GetOne(ctx, id)
	if err != nil {
		return Blog{}, err
	}

	if err := m.deleteByID(ctx, id); err != nil {
		return Blog{}, err
	}

	return blog, nil
}

// deleteByID returns ErrNoBlogByID when no row matched, which after a
// successful lookup means the blog was deleted by someone else in between.
func (m *BlogModel) deleteByID(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM blogs
		WHERE blog_id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete blog %s: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete blog %s: %w", id, err)
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNoBlogByID
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}
