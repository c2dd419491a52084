package dto

import (
	"time"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
)

// CreateUserRequest representa la petición para crear un usuario
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest representa la petición para actualizar el email
type UpdateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UserResponse representa la respuesta de un usuario.
// La contraseña (incluso hasheada) nunca se serializa.
type UserResponse struct {
	ID        uint           `json:"id"`
	Email     string         `json:"email"`
	EsActivo  bool           `json:"es_activo"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []ItemResponse `json:"items"`
}

// AckResponse es la confirmación de una operación sin cuerpo propio
type AckResponse struct {
	OK bool `json:"ok"`
}

// ToUserResponse convierte una entidad User a UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	items := make([]ItemResponse, len(user.Items))
	for i := range user.Items {
		items[i] = ToItemResponse(&user.Items[i])
	}

	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		EsActivo:  user.EsActivo,
		CreatedAt: user.CreatedAt,
		Items:     items,
	}
}

// ToUserResponses convierte una lista de entidades User
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
