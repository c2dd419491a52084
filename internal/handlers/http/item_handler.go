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

// ItemHandler atiende las peticiones HTTP relacionadas con items
type ItemHandler struct {
	itemService *services.ItemService
	logger      ports.Logger
}

// NewItemHandler crea un nuevo ItemHandler
func NewItemHandler(itemService *services.ItemService, logger ports.Logger) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
		logger:      logger,
	}
}

// ListItems lista items con paginación skip/limit
func (h *ItemHandler) ListItems(c *gin.Context) {
	skip, limit, fieldErrs := dto.ParsePagination(c)
	if fieldErrs != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationErrorResponseI18n(c, fieldErrs))
		return
	}

	items, err := h.itemService.ListItems(c.Request.Context(), skip, limit)
	if err != nil {
		h.logger.Error("failed to list items", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponses(items))
}

// GetItem busca un item por ID
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
			return
		}
		h.logger.Error("failed to get item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// UpdateItem sobrescribe nombre y descripcion del item (no es patch parcial)
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
		return
	}

	var req dto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.FieldErrorsFromBinding(c, err))
		c.JSON(http.StatusUnprocessableEntity, response)
		return
	}

	item, err := h.itemService.UpdateItem(c.Request.Context(), id, services.CreateItemInput{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	})
	if err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
			return
		}
		h.logger.Error("failed to update item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToItemResponse(item))
}

// DeleteItem elimina un item; el borrado de un id inexistente es 404
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "Item"))
			return
		}
		h.logger.Error("failed to delete item", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.AckResponse{OK: true})
}
