package repositories

import (
	"context"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
)

// ItemRepository define la interfaz de persistencia de items.
// Mismo contrato que UserRepository: (nil, nil) en ausencia, commit por
// escritura, fila canónica releída. Delete retorna false cuando el id no
// existe (el borrado no es silenciosamente idempotente).
type ItemRepository interface {
	Create(ctx context.Context, item *entities.Item) (*entities.Item, error)
	FindByID(ctx context.Context, id uint) (*entities.Item, error)
	List(ctx context.Context, skip, limit int) ([]*entities.Item, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Item, error)
	Update(ctx context.Context, id uint, nombre string, descripcion *string) (*entities.Item, error)
	Delete(ctx context.Context, id uint) (bool, error)
}
