package services

import (
	"context"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
	domainerrors "github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/domain/repositories"
)

// ItemService contiene la lógica de negocio para items
type ItemService struct {
	itemRepo repositories.ItemRepository
	logger   ports.Logger
}

// NewItemService crea un nuevo ItemService
func NewItemService(itemRepo repositories.ItemRepository, logger ports.Logger) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// GetItem busca un item por ID
func (s *ItemService) GetItem(ctx context.Context, id uint) (*entities.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domainerrors.ErrItemNotFound
	}
	return item, nil
}

// ListItems lista items en orden ascendente de id
func (s *ItemService) ListItems(ctx context.Context, skip, limit int) ([]*entities.Item, error) {
	return s.itemRepo.List(ctx, skip, limit)
}

// ListItemsByOwner lista los items de un usuario
func (s *ItemService) ListItemsByOwner(ctx context.Context, ownerID uint) ([]*entities.Item, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID)
}

// UpdateItem sobrescribe las columnas mutables del item (no es patch parcial)
func (s *ItemService) UpdateItem(ctx context.Context, id uint, input CreateItemInput) (*entities.Item, error) {
	item, err := s.itemRepo.Update(ctx, id, input.Nombre, normalizeDescription(input.Descripcion))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domainerrors.ErrItemNotFound
	}

	s.logger.Info("item updated", "id", id)
	return item, nil
}

// DeleteItem elimina un item; falla con not-found si el id no existe
func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domainerrors.ErrItemNotFound
	}

	s.logger.Info("item deleted", "id", id)
	return nil
}
