package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/handlers/dto"
	"github.com/jovanyvelez/ejemplos/internal/services"
)

// UserHandler atiende las peticiones HTTP relacionadas con usuarios
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler crea un nuevo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser crea un nuevo usuario.
// 201 con la fila canónica, 400 si el email está duplicado,
// 422 si la validación de campos falla.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrorsFromBinding(c, err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.email_already_exists"))
		case errs.Is(err, errors.ErrInvalidEmail):
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: dto.T(c, "validation.email_invalid")},
			}))
		case errs.Is(err, errors.ErrPasswordTooWeak):
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "password", Message: dto.T(c, "validation.password_min")},
			}))
		default:
			h.logger.Error("failed to create user", "error", err)
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca un usuario por ID, con sus items
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		h.logger.Error("failed to get user", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuarios con paginación skip/limit
func (h *UserHandler) ListUsers(c *gin.Context) {
	skip, limit, fieldErrs := dto.ParsePagination(c)
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, fieldErrs))
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser sobrescribe el email de un usuario existente
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrorsFromBinding(c, err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	user, err := h.userService.UpdateUserEmail(c.Request.Context(), id, req.Email)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.email_already_exists"))
		case errs.Is(err, errors.ErrInvalidEmail):
			c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
				{Field: "email", Message: dto.T(c, "validation.email_invalid")},
			}))
		default:
			h.logger.Error("failed to update user", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeactivateUser pone es_activo en false
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		return
	}

	user, err := h.userService.DeactivateUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		h.logger.Error("failed to deactivate user", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// CreateItemForUser crea un item cuyo propietario es el usuario de la ruta.
// 404 si el usuario no existe (chequeo previo de existencia).
func (h *UserHandler) CreateItemForUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
		return
	}

	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrorsFromBinding(c, err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	item, err := h.userService.CreateItemForUser(c.Request.Context(), id, services.CreateItemInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "User"))
			return
		}
		h.logger.Error("failed to create item", "propietario_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemResponse(item))
}
