package user

// CreateUserRequest represents an Admin adding a user. Role defaults to User.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin User"`
}
