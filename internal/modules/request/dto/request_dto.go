package dto

import "zeros.dev/launchpad/internal/entity"

type CreateRequestInput struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

type RequestResponse struct {
	Request *entity.AccessRequest `json:"request"`
}
