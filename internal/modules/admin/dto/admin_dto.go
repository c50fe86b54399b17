package dto

import (
	"io"

	"zeros.dev/launchpad/internal/entity"
)

// AvatarFile represents an uploaded avatar image.
type AvatarFile struct {
	Reader   io.Reader
	FileName string
}

type CreateUserInput struct {
	Name     string `form:"name" binding:"required,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Role     string `form:"role" binding:"required"`
	Password string `form:"password" binding:"required,min=6"`
}

type UpdateUserInput struct {
	Name  string `form:"name"`
	Email string `form:"email"`
	Role  string `form:"role"`
}

type UserResponse struct {
	User *entity.User `json:"user"`
}
