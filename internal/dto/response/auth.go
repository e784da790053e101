package response

import (
	"movie-booking/internal/data/entity"
)

// LoginResponse keeps the customer_id key the storefront already relies on.
type LoginResponse struct {
	Success    bool   `json:"success"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
}

func UserToLoginResponse(user *entity.User) *LoginResponse {
	return &LoginResponse{
		Success:    true,
		CustomerID: user.ID.String(),
		Name:       user.Name,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
	}
}
