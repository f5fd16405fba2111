package dto

import "fightcard/internal/microservices/http-api/models"

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"` // bcrypt ignores bytes past 72
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public view of an account.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse: response payload after successful authentication. The token
// is also set as the session cookie; non-browser clients send it as a Bearer.
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{ID: user.ID, Username: user.Username}
}
