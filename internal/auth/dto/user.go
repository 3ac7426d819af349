package dto

import "github.com/Ademola7/BlogApi/internal/auth/domain"

// UserOutput is the public view of a user. The password hash is deliberately
// unrepresentable here.
type UserOutput struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func NewUserOutput(u *domain.User) UserOutput {
	return UserOutput{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
