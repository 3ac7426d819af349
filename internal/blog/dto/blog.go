package dto

import (
	"time"

	authdomain "github.com/Ademola7/BlogApi/internal/auth/domain"
	authdto "github.com/Ademola7/BlogApi/internal/auth/dto"
	"github.com/Ademola7/BlogApi/internal/blog/domain"
)

type CreateBlogInput struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Body        string   `json:"body" validate:"required"`
}

// UpdateBlogInput carries a partial update; nil fields are left untouched.
type UpdateBlogInput struct {
	Title       *string   `json:"title" validate:"omitempty,min=1"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	Body        *string   `json:"body" validate:"omitempty,min=1"`
}

type BlogOutput struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Body        string              `json:"body"`
	Tags        []string            `json:"tags"`
	State       string              `json:"state"`
	ReadCount   int64               `json:"read_count"`
	ReadingTime int                 `json:"reading_time"`
	AuthorID    string              `json:"author_id"`
	Author      *authdto.UserOutput `json:"author,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func NewBlogOutput(b *domain.Blog) BlogOutput {
	return BlogOutput{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Body:        b.Body,
		Tags:        b.Tags,
		State:       string(b.State),
		ReadCount:   b.ReadCount,
		ReadingTime: b.ReadingTime,
		AuthorID:    b.AuthorID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// NewBlogOutputWithAuthor embeds the author's public fields when the author
// still exists.
func NewBlogOutputWithAuthor(b *domain.Blog, author *authdomain.User) BlogOutput {
	out := NewBlogOutput(b)
	if author != nil {
		u := authdto.NewUserOutput(author)
		out.Author = &u
	}
	return out
}

func NewBlogOutputs(blogs []*domain.Blog) []BlogOutput {
	outputs := make([]BlogOutput, 0, len(blogs))
	for _, b := range blogs {
		outputs = append(outputs, NewBlogOutput(b))
	}
	return outputs
}
