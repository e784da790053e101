package response

import (
	"movie-booking/internal/data/entity"
)

type UserResponse struct {
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		UserID:  user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, user := range users {
		out[i] = UserToResponse(user)
	}
	return out
}
