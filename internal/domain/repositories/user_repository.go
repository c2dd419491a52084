package repositories

import (
	"context"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
)

// UserRepository define la interfaz de persistencia de usuarios.
// Las búsquedas retornan (nil, nil) cuando el registro no existe; la ausencia
// nunca es un error a nivel de repositorio.
// Cada escritura confirma (commit) antes de retornar y devuelve la fila
// canónica releída del almacenamiento.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	List(ctx context.Context, skip, limit int) ([]*entities.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) (*entities.User, error)
	Deactivate(ctx context.Context, id uint) (*entities.User, error)
}
