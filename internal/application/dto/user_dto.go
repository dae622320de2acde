package dto

import (
	"time"

	"github.com/ninjasaskeh/vr46/internal/domain/entity"
)

// UserFilterRequest query de GET /api/users.
type UserFilterRequest struct {
	PageRequest
	Role string `query:"role"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// UpdateUserRequest actualización parcial.
type UpdateUserRequest struct {
	Name       *string `json:"name"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Phone      *string `json:"phone"`
	IsActive   *bool   `json:"isActive"`
	Password   *string `json:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
	IsActive   bool   `json:"isActive"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// UserFromEntity mapea entidad → respuesta.
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       string(u.Role),
		Department: u.Department,
		Phone:      u.Phone,
		IsActive:   u.IsActive,
		CreatedAt:  ISOTime(u.CreatedAt),
		UpdatedAt:  ISOTime(u.UpdatedAt),
	}
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
