package handlers

import "github.com/ku-alexej/shareit/services/user/domain/models"

// UserResponse is the wire shape for a single user.
type UserResponse struct {
	ID    int64  `json:"id"    example:"1"`
	Name  string `json:"name"  example:"Alexej"`
	Email string `json:"email" example:"alexej@example.com"`
} // @name UserResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"user not found"`
} // @name ErrorResponse

func newUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
