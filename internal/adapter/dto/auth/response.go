package auth

// UserResponse represents user information in responses. The password
// hash never leaves the server.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse is returned after a successful sign in
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expires_in"` // seconds
	User      *UserResponse `json:"user"`
}
