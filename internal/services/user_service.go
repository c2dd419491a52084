package services

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/jovanyvelez/ejemplos/internal/domain/entities"
	domainerrors "github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/domain/repositories"
	"github.com/jovanyvelez/ejemplos/internal/domain/valueobjects"
)

// minPasswordLength es el mínimo de caracteres de la contraseña en claro
const minPasswordLength = 8

// UserService contiene la lógica de negocio para usuarios
type UserService struct {
	userRepo repositories.UserRepository
	itemRepo repositories.ItemRepository
	logger   ports.Logger
}

// NewUserService crea un nuevo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	itemRepo repositories.ItemRepository,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		itemRepo: itemRepo,
		logger:   logger,
	}
}

// CreateUserInput representa los datos para crear un usuario
type CreateUserInput struct {
	Email    string
	Password string
}

// CreateUser crea un nuevo usuario.
// La contraseña se almacena como hash bcrypt. El chequeo previo de email
// duplicado da un error amistoso, pero la señal autoritativa es la
// restricción única del almacenamiento (cierra la carrera check-then-act).
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	if len([]rune(input.Password)) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooWeak
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &entities.User{
		Email:          email,
		HashedPassword: string(hash),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", user.ID, "email", user.Email.String())
	return user, nil
}

// GetUser busca un usuario por ID, con sus items
func (s *UserService) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuarios en orden ascendente de id
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	return s.userRepo.List(ctx, skip, limit)
}

// UpdateUserEmail sobrescribe el email de un usuario existente
func (s *UserService) UpdateUserEmail(ctx context.Context, id uint, newEmail string) (*entities.User, error) {
	email, err := valueobjects.NewEmail(newEmail)
	if err != nil {
		return nil, domainerrors.ErrInvalidEmail
	}

	// Chequeo amistoso: el email no debe pertenecer a otro usuario
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.ID != id {
		return nil, domainerrors.ErrEmailAlreadyExists
	}

	user, err := s.userRepo.UpdateEmail(ctx, id, email.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	s.logger.Info("user email updated", "id", id)
	return user, nil
}

// DeactivateUser pone es_activo en false
func (s *UserService) DeactivateUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepo.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	s.logger.Info("user deactivated", "id", id)
	return user, nil
}

// CreateItemInput representa los datos para crear un item
type CreateItemInput struct {
	Nombre      string
	Descripcion *string
}

// CreateItemForUser crea un item para un usuario existente.
// El chequeo de existencia del propietario responde 404 antes de tocar la
// tabla de items; la clave foránea respalda la integridad en el
// almacenamiento.
func (s *UserService) CreateItemForUser(ctx context.Context, userID uint, input CreateItemInput) (*entities.Item, error) {
	owner, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	item, err := s.itemRepo.Create(ctx, &entities.Item{
		Nombre:        input.Nombre,
		Descripcion:   normalizeDescription(input.Descripcion),
		PropietarioID: &userID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("item created", "id", item.ID, "propietario_id", userID)
	return item, nil
}

// normalizeDescription unifica ausencia y cadena vacía en "sin descripción"
func normalizeDescription(d *string) *string {
	if d == nil || *d == "" {
		return nil
	}
	return d
}
