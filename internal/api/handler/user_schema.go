package handler

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/dto"
)

type errorResponse struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors,omitempty"`
}

type registerResponse struct {
	ID string `json:"id"`
}

type updateUserRequest struct {
	Name     string `json:"name" validate:"omitempty"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty"`
}

func (r updateUserRequest) toDTO() dto.UpdateUserDTO {
	return dto.UpdateUserDTO{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type filterUsersRequest struct {
	ID    string `json:"id" validate:"omitempty,len=24,hexadecimal"`
	Name  string `json:"name" validate:"omitempty"`
	Email string `json:"email" validate:"omitempty"`
}

func (r filterUsersRequest) toDTO() (dto.FilterUserDTO, error) {
	filter := dto.FilterUserDTO{Name: r.Name, Email: r.Email}
	if r.ID != "" {
		id, err := primitive.ObjectIDFromHex(r.ID)
		if err != nil {
			return dto.FilterUserDTO{}, err
		}
		filter.ID = id
	}
	return filter, nil
}
