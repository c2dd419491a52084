package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
	domainerrors "github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/repositories"
	"github.com/jovanyvelez/ejemplos/internal/domain/valueobjects"
)

// Límites de paginación. El original no acotaba limit; el tope evita que un
// solo request arrastre la tabla completa.
const (
	defaultLimit = 100
	maxLimit     = 1000
)

// UserRepository implementa repositories.UserRepository sobre GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository crea un nuevo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Create inserta el usuario, confirma y relee la fila canónica (id y
// created_at generados por el almacenamiento). Un email duplicado se reporta
// vía la restricción única, no por el chequeo previo.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	model := &UserModel{
		Email:          user.Email.String(),
		HashedPassword: user.HashedPassword,
		EsActivo:       true,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return r.reload(ctx, model.ID)
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Preload("Items").Where("email = ?", email).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

// List retorna usuarios en orden ascendente de id.
// skip negativo se trata como 0; limit fuera de rango se normaliza.
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	skip, limit = normalizePage(skip, limit)

	var models []*UserModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// UpdateEmail sobrescribe el email del usuario y retorna la fila canónica.
// Retorna (nil, nil) si el id no existe.
func (r *UserRepository) UpdateEmail(ctx context.Context, id uint, email string) (*entities.User, error) {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("email", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.reload(ctx, id)
}

// Deactivate pone es_activo en false y retorna la fila canónica.
// Retorna (nil, nil) si el id no existe.
func (r *UserRepository) Deactivate(ctx context.Context, id uint) (*entities.User, error) {
	result := r.db.WithContext(ctx).
		Model(&UserModel{}).
		Where("id = ?", id).
		Update("es_activo", false)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.reload(ctx, id)
}

// reload relee la fila canónica por clave primaria después de una escritura
func (r *UserRepository) reload(ctx context.Context, id uint) (*entities.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error; err != nil {
		return nil, err
	}
	return r.toEntity(&model)
}

// normalizePage acota la paginación. El default por ausencia lo aplica el
// llamador; limit 0 es un valor válido y significa página vacía (LIMIT 0).
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// Conversores
func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Item, 0, len(model.Items))
	for _, it := range model.Items {
		items = append(items, *toItemEntity(&it))
	}

	return &entities.User{
		ID:             model.ID,
		Email:          email,
		HashedPassword: model.HashedPassword,
		EsActivo:       model.EsActivo,
		CreatedAt:      model.CreatedAt,
		Items:          items,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
