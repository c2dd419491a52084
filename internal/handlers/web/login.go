package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jovanyvelez/ejemplos/internal/handlers/dto"
)

// LoginForm muestra el formulario de login del tutorial de validación
func (h *Handler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login valida los campos del formulario con la tabla de reglas.
// El tutorial solo demuestra la validación: no hay sesión ni verificación
// de credenciales contra la base de datos.
func (h *Handler) Login(c *gin.Context) {
	form := map[string]string{
		"email":    c.PostForm("email"),
		"password": c.PostForm("password"),
	}

	if errsFound := userFormRules().Apply(form); errsFound != nil {
		c.HTML(http.StatusUnprocessableEntity, "login.html", gin.H{
			"errors":    fieldErrors(c, errsFound),
			"form_data": form,
		})
		return
	}

	c.HTML(http.StatusOK, "login_success.html", gin.H{
		"message": dto.T(c, "web.login_success", map[string]interface{}{"Email": form["email"]}),
	})
}
