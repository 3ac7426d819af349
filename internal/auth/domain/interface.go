package domain

import "context"

// UserRepository persists User records. Lookups return (nil, nil) when no
// matching user exists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
}
