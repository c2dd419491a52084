// Package web implementa la variante renderizada en el servidor: páginas HTML
// con formularios, errores por campo re-renderizados y redirect-after-post.
package web

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/domain/errors"
	"github.com/jovanyvelez/ejemplos/internal/domain/ports"
	"github.com/jovanyvelez/ejemplos/internal/handlers/dto"
	"github.com/jovanyvelez/ejemplos/internal/services"
	"github.com/jovanyvelez/ejemplos/internal/validation"
)

// Handler atiende las rutas del sitio renderizado en el servidor
type Handler struct {
	userService *services.UserService
	itemService *services.ItemService
	logger      ports.Logger
}

// NewHandler crea un nuevo Handler web
func NewHandler(userService *services.UserService, itemService *services.ItemService, logger ports.Logger) *Handler {
	return &Handler{
		userService: userService,
		itemService: itemService,
		logger:      logger,
	}
}

// RegisterRoutes registra las rutas del sitio sobre el router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)

	r.GET("/users", h.ListUsers)
	r.GET("/users/create", h.CreateUserForm)
	r.POST("/users/create", h.CreateUser)
	r.GET("/users/:id", h.UserDetail)
	r.GET("/users/:id/edit", h.EditUserForm)
	r.POST("/users/:id/edit", h.EditUser)
	r.POST("/users/:id/deactivate", h.DeactivateUser)

	r.GET("/items", h.ListItems)
	r.GET("/items/create", h.CreateItemForm)
	r.POST("/items/create", h.CreateItem)
	r.GET("/items/:id/edit", h.EditItemForm)
	r.POST("/items/:id/edit", h.EditItem)
	r.POST("/items/:id/delete", h.DeleteItem)

	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
}

// Tablas de validación de los formularios. Las reglas llevan message IDs;
// la traducción ocurre al renderizar.
func userFormRules() validation.RuleSet {
	return validation.RuleSet{
		{Field: "email", Rules: []validation.Rule{
			validation.Required("validation.email_required"),
			validation.ValidEmail("validation.email_invalid"),
		}},
		{Field: "password", Rules: []validation.Rule{
			validation.Required("validation.password_required"),
			validation.MinLength(8, "validation.password_min"),
		}},
	}
}

func itemFormRules() validation.RuleSet {
	return validation.RuleSet{
		{Field: "nombre", Rules: []validation.Rule{
			validation.Required("validation.nombre_required"),
		}},
		{Field: "descripcion", Rules: []validation.Rule{
			validation.Optional(),
		}},
		{Field: "propietario_id", Rules: []validation.Rule{
			validation.Required("validation.non_negative_int"),
			validation.NonNegativeInt("validation.non_negative_int"),
		}},
	}
}

// fieldErrors traduce los errores de la tabla de reglas a mensajes por campo
func fieldErrors(c *gin.Context, errs []validation.FieldError) map[string]string {
	if errs == nil {
		return nil
	}
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = dto.T(c, e.Message)
	}
	return out
}

// Home muestra la página principal
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// ListUsers muestra la lista de usuarios
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context(), dto.DefaultSkip, dto.DefaultLimit)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "users.html", gin.H{"users": dto.ToUserResponses(users)})
}

// CreateUserForm muestra el formulario de alta de usuario
func (h *Handler) CreateUserForm(c *gin.Context) {
	c.HTML(http.StatusOK, "user_form.html", gin.H{})
}

// CreateUser procesa el formulario de alta de usuario
func (h *Handler) CreateUser(c *gin.Context) {
	form := map[string]string{
		"email":    c.PostForm("email"),
		"password": c.PostForm("password"),
	}

	if errsFound := userFormRules().Apply(form); errsFound != nil {
		c.HTML(http.StatusUnprocessableEntity, "user_form.html", gin.H{
			"errors":    fieldErrors(c, errsFound),
			"form_data": form,
		})
		return
	}

	_, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Email:    form["email"],
		Password: form["password"],
	})
	if err != nil {
		if errs.Is(err, errors.ErrEmailAlreadyExists) {
			c.HTML(http.StatusBadRequest, "user_form.html", gin.H{
				"errors":    map[string]string{"email": dto.T(c, "error.email_already_exists")},
				"form_data": form,
			})
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users")
}

// UserDetail muestra un usuario con sus items
func (h *Handler) UserDetail(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "User")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			h.renderNotFound(c, "User")
			return
		}
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "user_detail.html", gin.H{"user": dto.ToUserResponse(user)})
}

// EditUserForm muestra el formulario de edición de email
func (h *Handler) EditUserForm(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "User")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			h.renderNotFound(c, "User")
			return
		}
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "user_form.html", gin.H{"user": dto.ToUserResponse(user)})
}

// EditUser procesa la edición de email de un usuario
func (h *Handler) EditUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "User")
		return
	}

	email := c.PostForm("email")

	rules := validation.RuleSet{
		{Field: "email", Rules: []validation.Rule{
			validation.Required("validation.email_required"),
			validation.ValidEmail("validation.email_invalid"),
		}},
	}
	if errsFound := rules.Apply(map[string]string{"email": email}); errsFound != nil {
		c.HTML(http.StatusUnprocessableEntity, "user_form.html", gin.H{
			"errors":    fieldErrors(c, errsFound),
			"form_data": map[string]string{"email": email},
			"edit_id":   id,
		})
		return
	}

	_, err := h.userService.UpdateUserEmail(c.Request.Context(), id, email)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrUserNotFound):
			h.renderNotFound(c, "User")
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.HTML(http.StatusBadRequest, "user_form.html", gin.H{
				"errors":    map[string]string{"email": dto.T(c, "error.email_already_exists")},
				"form_data": map[string]string{"email": email},
				"edit_id":   id,
			})
		default:
			h.renderError(c, err)
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/"+strconv.FormatUint(uint64(id), 10))
}

// DeactivateUser marca el usuario como inactivo
func (h *Handler) DeactivateUser(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		h.renderNotFound(c, "User")
		return
	}

	if _, err := h.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			h.renderNotFound(c, "User")
			return
		}
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/users/"+strconv.FormatUint(uint64(id), 10))
}

// renderNotFound muestra la página 404
func (h *Handler) renderNotFound(c *gin.Context, resource string) {
	c.HTML(http.StatusNotFound, "error.html", gin.H{
		"message": dto.T(c, "error.not_found.detail", map[string]interface{}{"Resource": resource}),
	})
}

// renderError registra el error real y muestra un mensaje genérico:
// los detalles internos nunca llegan al usuario
func (h *Handler) renderError(c *gin.Context, err error) {
	h.logger.Error("unexpected error", "path", c.Request.URL.Path, "error", err)
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"message": dto.T(c, "error.internal.detail"),
	})
}
