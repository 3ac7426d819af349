package service

//go:generate mockgen -destination=../../mocks/mock_blog_repository.go -package=mocks github.com/Ademola7/BlogApi/internal/blog/domain BlogRepository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authdomain "github.com/Ademola7/BlogApi/internal/auth/domain"
	"github.com/Ademola7/BlogApi/internal/blog/domain"
	"github.com/Ademola7/BlogApi/internal/blog/dto"
	apperrors "github.com/Ademola7/BlogApi/internal/errors"
	"github.com/Ademola7/BlogApi/internal/validation"
	"github.com/Ademola7/BlogApi/pkg/constant"
)

type BlogService struct {
	repo  domain.BlogRepository
	users authdomain.UserRepository
}

func NewBlogService(repo domain.BlogRepository, users authdomain.UserRepository) *BlogService {
	return &BlogService{
		repo:  repo,
		users: users,
	}
}

// ListPublished returns published blogs only, so unauthenticated readers
// never see drafts.
func (s *BlogService) ListPublished(ctx context.Context, q domain.ListQuery) ([]*domain.Blog, error) {
	return s.repo.FindPublished(ctx, q)
}

// GetPublished returns a single published blog with its read count already
// incremented, along with the author record when the author still exists.
func (s *BlogService) GetPublished(ctx context.Context, id string) (*domain.Blog, *authdomain.User, error) {
	blog, err := s.repo.FindPublishedByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if blog == nil {
		return nil, nil, apperrors.ErrNotFound
	}

	author, err := s.users.FindByID(ctx, blog.AuthorID)
	if err != nil {
		return nil, nil, err
	}

	return blog, author, nil
}

// Create stores a new blog in draft state owned by the given author.
func (s *BlogService) Create(ctx context.Context, authorID string, input dto.CreateBlogInput) (*domain.Blog, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now()

	blog := &domain.Blog{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Body:        input.Body,
		Tags:        input.Tags,
		State:       domain.StateDraft,
		ReadingTime: readingTime(input.Body),
		AuthorID:    authorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Update applies a partial update to a blog owned by the given author.
func (s *BlogService) Update(ctx context.Context, authorID, id string, input dto.UpdateBlogInput) (*domain.Blog, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	blog, err := s.ownedBlog(ctx, authorID, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		blog.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		blog.Description = strings.TrimSpace(*input.Description)
	}
	if input.Tags != nil {
		blog.Tags = *input.Tags
	}
	if input.Body != nil {
		blog.Body = *input.Body
		blog.ReadingTime = readingTime(blog.Body)
	}
	blog.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// Delete removes a blog owned by the given author.
func (s *BlogService) Delete(ctx context.Context, authorID, id string) error {
	blog, err := s.ownedBlog(ctx, authorID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, blog.ID)
}

// Publish moves a blog owned by the given author into the published state.
func (s *BlogService) Publish(ctx context.Context, authorID, id string) (*domain.Blog, error) {
	blog, err := s.ownedBlog(ctx, authorID, id)
	if err != nil {
		return nil, err
	}

	blog.State = domain.StatePublished
	blog.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, blog); err != nil {
		return nil, err
	}

	return blog, nil
}

// ListByAuthor returns every blog the author owns, drafts included.
func (s *BlogService) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Blog, error) {
	return s.repo.FindByAuthor(ctx, authorID)
}

func (s *BlogService) ownedBlog(ctx context.Context, authorID, id string) (*domain.Blog, error) {
	blog, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, apperrors.ErrNotFound
	}
	if blog.AuthorID != authorID {
		return nil, apperrors.ErrForbidden
	}
	return blog, nil
}

func readingTime(body string) int {
	words := len(strings.Fields(body))
	if words == 0 {
		return 0
	}
	return (words + constant.ReadingWordsPerMinute - 1) / constant.ReadingWordsPerMinute
}
