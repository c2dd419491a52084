package web

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/handlers/dto"
	"github.com/jovanyvelez/ejemplos/internal/services"
)

// ListItems muestra la lista de items
func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.itemService.ListItems(c.Request.Context(), dto.DefaultSkip, dto.DefaultLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "items.html", gin.H{"items": dto.ToItemResponses(items)})
}

// CreateItemForm muestra el formulario de alta de item, con el selector
// de propietario poblado con los usuarios existentes
func (h *Handler) CreateItemForm(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), dto.DefaultSkip, dto.DefaultLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "item_form.html", gin.H{"users": dto.ToUserResponses(users)})
}

// CreateItem procesa el formulario de alta de item
func (h *Handler) CreateItem(c *gin.Context) {
	form := map[string]string{
		"nombre":         c.PostForm("nombre"),
		"descripcion":    c.PostForm("descripcion"),
		"propietario_id": c.PostForm("propietario_id"),
	}

	if errsFound := itemFormRules().Apply(form); errsFound != nil {
		h.rerenderItemForm(c, http.StatusUnprocessableEntity, form, fieldErrors(c, errsFound))
		return
	}

	// La regla de la tabla acepta cualquier entero no negativo; el parseo a
	// uint de 32 bits aún puede desbordar y eso es un error de campo
	ownerID, err := strconv.ParseUint(form["propietario_id"], 10, 32)
	if err != nil {
		h.rerenderItemForm(c, http.StatusUnprocessableEntity, form, map[string]string{
			"propietario_id": dto.T(c, "validation.non_negative_int"),
		})
		return
	}
	descripcion := form["descripcion"]

	_, err = h.userService.CreateItemForUser(c.Request.Context(), uint(ownerID), services.CreateItemInput{
		Nombre:      form["nombre"],
		Descripcion: &descripcion,
	})
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			h.rerenderItemForm(c, http.StatusUnprocessableEntity, form, map[string]string{
				"propietario_id": dto.T(c, "error.user_not_found"),
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/items")
}

// EditItemForm muestra el formulario de edición de un item
func (h *Handler) EditItemForm(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "Item")
		return
	}

	item, err := h.itemService.GetItem(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			h.renderNotFound(c, "Item")
			return
		}
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "item_form.html", gin.H{"item": dto.ToItemResponse(item)})
}

// EditItem procesa la edición de un item (sobrescritura de nombre y
// descripcion, no patch parcial)
func (h *Handler) EditItem(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "Item")
		return
	}

	form := map[string]string{
		"nombre":      c.PostForm("nombre"),
		"descripcion": c.PostForm("descripcion"),
	}

	rules := itemFormRules()[:2] // nombre y descripcion; el propietario no es editable
	if errsFound := rules.Apply(form); errsFound != nil {
		c.HTML(http.StatusUnprocessableEntity, "item_form.html", gin.H{
			"errors":    fieldErrors(c, errsFound),
			"form_data": form,
			"edit_id":   id,
		})
		return
	}

	descripcion := form["descripcion"]
	_, err := h.itemService.UpdateItem(c.Request.Context(), id, services.CreateItemInput{
		Nombre:      form["nombre"],
		Descripcion: &descripcion,
	})
	if err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			h.renderNotFound(c, "Item")
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/items")
}

// DeleteItem elimina un item y redirige a la lista
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "Item")
		return
	}

	if err := h.itemService.DeleteItem(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrItemNotFound) {
			h.renderNotFound(c, "Item")
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/items")
}

func (h *Handler) rerenderItemForm(c *gin.Context, status int, form map[string]string, errors map[string]string) {
	users, err := h.userService.ListUsers(c.Request.Context(), dto.DefaultSkip, dto.DefaultLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(status, "item_form.html", gin.H{
		"errors":    errors,
		"form_data": form,
		"users":     dto.ToUserResponses(users),
	})
}
