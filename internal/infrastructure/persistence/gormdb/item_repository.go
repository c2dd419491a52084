package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
	"github.com/jovanyvelez/ejemplos/internal/domain/repositories"
)

// ItemRepository implementa repositories.ItemRepository sobre GORM
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository crea un nuevo ItemRepository
func NewItemRepository(db *gorm.DB) repositories.ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserta el item, confirma y relee la fila canónica
func (r *ItemRepository) Create(ctx context.Context, item *entities.Item) (*entities.Item, error) {
	model := &ItemModel{
		Nombre:        item.Nombre,
		Descripcion:   item.Descripcion,
		PropietarioID: item.PropietarioID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}

	return r.reload(ctx, model.ID)
}

func (r *ItemRepository) FindByID(ctx context.Context, id uint) (*entities.Item, error) {
	var model ItemModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toItemEntity(&model), nil
}

// List retorna items en orden ascendente de id, con skip/limit normalizados
func (r *ItemRepository) List(ctx context.Context, skip, limit int) ([]*entities.Item, error) {
	skip, limit = normalizePage(skip, limit)

	var models []*ItemModel
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toItemEntities(models), nil
}

// ListByOwner retorna los items de un usuario en orden ascendente de id
func (r *ItemRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*entities.Item, error) {
	var models []*ItemModel
	err := r.db.WithContext(ctx).
		Where("propietario_id = ?", ownerID).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return toItemEntities(models), nil
}

// Update sobrescribe las columnas mutables (nombre y descripcion) y retorna
// la fila canónica. Retorna (nil, nil) si el id no existe.
// No es un patch parcial: descripcion nil borra la descripción.
func (r *ItemRepository) Update(ctx context.Context, id uint, nombre string, descripcion *string) (*entities.Item, error) {
	result := r.db.WithContext(ctx).
		Model(&ItemModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"nombre":      nombre,
			"descripcion": descripcion,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.reload(ctx, id)
}

// Delete elimina la fila. Retorna false si el id no existía.
func (r *ItemRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&ItemModel{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ItemRepository) reload(ctx context.Context, id uint) (*entities.Item, error) {
	var model ItemModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		return nil, err
	}
	return toItemEntity(&model), nil
}

// Conversores
func toItemEntity(model *ItemModel) *entities.Item {
	return &entities.Item{
		ID:            model.ID,
		Nombre:        model.Nombre,
		Descripcion:   model.Descripcion,
		CreatedAt:     model.CreatedAt,
		PropietarioID: model.PropietarioID,
	}
}

func toItemEntities(models []*ItemModel) []*entities.Item {
	items := make([]*entities.Item, 0, len(models))
	for _, model := range models {
		items = append(items, toItemEntity(model))
	}
	return items
}
