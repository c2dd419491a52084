package dto

import (
	"time"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
)

// ItemRequest representa la petición para crear o actualizar un item.
// Descripcion ausente y cadena vacía significan lo mismo: sin descripción.
type ItemRequest struct {
	Nombre      string  `json:"nombre" binding:"required"`
	Descripcion *string `json:"descripcion" binding:"omitempty"`
}

// ItemResponse representa la respuesta de un item
type ItemResponse struct {
	ID            uint      `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	CreatedAt     time.Time `json:"created_at"`
	PropietarioID *uint     `json:"propietario_id"`
}

// ToItemResponse convierte una entidad Item a ItemResponse
func ToItemResponse(item *entities.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Nombre:        item.Nombre,
		Descripcion:   item.Descripcion,
		CreatedAt:     item.CreatedAt,
		PropietarioID: item.PropietarioID,
	}
}

// ToItemResponses convierte una lista de entidades Item
func ToItemResponses(items []*entities.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
