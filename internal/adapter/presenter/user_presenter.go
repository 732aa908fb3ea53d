package presenter

import (
	authDTO "github.com/johnquangdev/meeting-scheduler/internal/adapter/dto/auth"
	"github.com/johnquangdev/meeting-scheduler/internal/domain/entities"
	"github.com/johnquangdev/meeting-scheduler/internal/usecase/auth"
)

// ToUserResponse converts a User entity to UserResponse DTO
func ToUserResponse(u *entities.User) *authDTO.UserResponse {
	if u == nil {
		return nil
	}

	return &authDTO.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// ToUserResponses converts a list of users, never returning nil
func ToUserResponses(users []*entities.User) []*authDTO.UserResponse {
	out := make([]*authDTO.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// ToLoginResponse converts the usecase login output to the response DTO
func ToLoginResponse(out *auth.LoginOutput) *authDTO.LoginResponse {
	if out == nil {
		return nil
	}

	return &authDTO.LoginResponse{
		Token:     out.Token,
		ExpiresIn: int(out.ExpiresIn.Seconds()),
		User:      ToUserResponse(out.User),
	}
}
