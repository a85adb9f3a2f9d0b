package blogservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a testify mock of BlogRepository for handler tests.
type MockBlogRepository struct {
	mock.Mock
}

var _ BlogRepository = (*MockBlogRepository)(nil)

func (m *MockBlogRepository) GetAll(ctx context.Context) ([]Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockBlogRepository) GetOne(ctx context.Context, id uuid.UUID) (Blog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Blog), args.Error(1)
}

func (m *MockBlogRepository) CreateOne(ctx context.Context, create CreateBlog) (Blog, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(Blog), args.Error(1)
}

func (m *MockBlogRepository) UpdateOne(ctx context.Context, id uuid.UUID, update UpdateBlog) (Blog, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(Blog), args.Error(1)
}

func (m *MockBlogRepository) DeleteOne(ctx context.Context, id uuid.UUID) (Blog, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Blog), args.Error(1)
}
