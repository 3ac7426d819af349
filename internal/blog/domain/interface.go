package domain

import "context"

// ListQuery narrows and orders a published-blog listing.
type ListQuery struct {
	Search string
	Sort   string
	Page   int
	Limit  int
}

// BlogRepository persists Blog records. Lookups return (nil, nil) when no
// matching blog exists.
type BlogRepository interface {
	Insert(ctx context.Context, blog *Blog) error
	FindByID(ctx context.Context, id string) (*Blog, error)
	// FindPublishedByID atomically increments the blog's read count and
	// returns the updated record, or (nil, nil) when the blog does not exist
	// or is not published.
	FindPublishedByID(ctx context.Context, id string) (*Blog, error)
	FindPublished(ctx context.Context, q ListQuery) ([]*Blog, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*Blog, error)
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id string) error
}
