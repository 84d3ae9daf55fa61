package dto

import (
	"github.com/adityasetu/health-assessment-api/internal/models"
)

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Mobile   string  `json:"mobile"`
	Age      *int    `json:"age,omitempty"`
	Gender   *string `json:"gender,omitempty"`
	Location *string `json:"location,omitempty"`
	IsAdmin  bool    `json:"is_admin"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Mobile:   user.Mobile,
		Age:      user.Age,
		Gender:   user.Gender,
		Location: user.Location,
		IsAdmin:  user.IsAdmin,
	}
}
