package blogservice

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushihentaime/blogtasks/internal/common"
)

func setupTestEnvironment(t *testing.T) (*BlogModel, *sql.DB, func() error) {
	db := common.TestDB("file://../../migrations", t)

	cleanup := func() error {
		_, err := db.Exec("DELETE FROM blogs")
		return err
	}

	return NewBlogModel(db), db, cleanup
}

func createRandomBlog(db *sql.DB, userID uuid.UUID) (uuid.UUID, error) {
	query := `
		INSERT INTO blogs (blog_id, user_id, name)
		VALUES ($1, $2, $3)`

	id := uuid.New()
	_, err := db.Exec(query, id, userID, "Test Blog")
	return id, err
}

func TestCreateOne(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	userID := uuid.New()
	blog, err := m.CreateOne(ctx, CreateBlog{UserID: userID, Name: "New blog"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, blog.BlogID)
	assert.Equal(t, userID, blog.UserID)
	assert.Equal(t, "New blog", blog.Name)

	blogs, err := m.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, blog, blogs[0])

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM blogs WHERE blog_id = $1", blog.BlogID).Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCreateOneTwiceYieldsDistinctBlogs(t *testing.T) {
	m, _, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	ctx := context.Background()
	create := CreateBlog{UserID: uuid.New(), Name: "Same blog"}

	first, err := m.CreateOne(ctx, create)
	require.NoError(t, err)
	second, err := m.CreateOne(ctx, create)
	require.NoError(t, err)

	assert.NotEqual(t, first.BlogID, second.BlogID)

	blogs, err := m.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}

func TestGetAll(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)

	testCases := []struct {
		name          string
		setup         func() error
		expectedCount int
	}{
		{
			name:          "empty table",
			setup:         func() error { return nil },
			expectedCount: 0,
		},
		{
			name: "several blogs",
			setup: func() error {
				for i := 0; i < 5; i++ {
					if _, err := createRandomBlog(db, uuid.New()); err != nil {
						return err
					}
				}
				return nil
			},
			expectedCount: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, tc.setup())

			blogs, err := m.GetAll(context.Background())
			assert.NoError(t, err)
			assert.NotNil(t, blogs)
			assert.Len(t, blogs, tc.expectedCount)

			t.Cleanup(func() {
				assert.NoError(t, cleanup())
			})
		})
	}
}

func TestGetOne(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	userID := uuid.New()
	blogID, err := createRandomBlog(db, userID)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		id          uuid.UUID
		expected    Blog
		expectedErr error
	}{
		{
			name:     "existing id",
			id:       blogID,
			expected: Blog{BlogID: blogID, UserID: userID, Name: "Test Blog"},
		},
		{
			name:        "unknown id",
			id:          uuid.New(),
			expectedErr: ErrNoBlogByID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			blog, err := m.GetOne(context.Background(), tc.id)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expected, blog)
		})
	}
}

func TestUpdateOne(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	blogID, err := createRandomBlog(db, uuid.New())
	require.NoError(t, err)

	newOwner := uuid.New()

	testCases := []struct {
		name        string
		id          uuid.UUID
		update      UpdateBlog
		expectedErr error
	}{
		{
			name:   "existing id",
			id:     blogID,
			update: UpdateBlog{UserID: newOwner, Name: "Updated Blog"},
		},
		{
			name:        "unknown id",
			id:          uuid.New(),
			update:      UpdateBlog{UserID: newOwner, Name: "Updated Blog"},
			expectedErr: ErrNoBlogByID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blog, err := m.UpdateOne(ctx, tc.id, tc.update)
			assert.Equal(t, tc.expectedErr, err)
			if tc.expectedErr != nil {
				return
			}

			expected := Blog{BlogID: tc.id, UserID: tc.update.UserID, Name: tc.update.Name}
			assert.Equal(t, expected, blog)

			stored, err := m.GetOne(ctx, tc.id)
			assert.NoError(t, err)
			assert.Equal(t, expected, stored)
		})
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDeleteOne(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	userID := uuid.New()
	blogID, err := createRandomBlog(db, userID)
	require.NoError(t, err)

	testCases := []struct {
		name        string
		id          uuid.UUID
		expected    Blog
		expectedErr error
	}{
		{
			name:     "existing id",
			id:       blogID,
			expected: Blog{BlogID: blogID, UserID: userID, Name: "Test Blog"},
		},
		{
			name:        "already deleted",
			id:          blogID,
			expectedErr: ErrNoBlogByID,
		},
		{
			name:        "unknown id",
			id:          uuid.New(),
			expectedErr: ErrNoBlogByID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			blog, err := m.DeleteOne(ctx, tc.id)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expected, blog)

			_, err = m.GetOne(ctx, tc.id)
			assert.Equal(t, ErrNoBlogByID, err)
		})
	}
}

func TestDeleteOneRowRemovedAfterLookup(t *testing.T) {
	m, db, cleanup := setupTestEnvironment(t)
	t.Cleanup(func() { assert.NoError(t, cleanup()) })

	ctx := context.Background()

	blogID, err := createRandomBlog(db, uuid.New())
	require.NoError(t, err)

	_, err = m.GetOne(ctx, blogID)
	require.NoError(t, err)

	// another client deletes the row between the lookup and the delete
	_, err = db.Exec("DELETE FROM blogs WHERE blog_id = $1", blogID)
	require.NoError(t, err)

	err = m.deleteByID(ctx, blogID)
	assert.Equal(t, ErrNoBlogByID, err)
	assert.Equal(t, http.StatusNotFound, NewAppError(err).Status())
}

func TestCanceledContext(t *testing.T) {
	m, _, _ := setupTestEnvironment(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.GetAll(ctx)
	assert.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, NewAppError(err).Internal())
}
