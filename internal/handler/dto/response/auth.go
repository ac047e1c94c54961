package response

import "hotel-back-office/internal/usecase/queries"

type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	IsActive bool   `json:"is_active"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID.String(),
		Email:    view.Email,
		Role:     view.Role,
		FullName: view.FullName,
		IsActive: view.IsActive,
	}
}
