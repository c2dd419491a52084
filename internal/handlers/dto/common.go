package dto

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/jovanyvelez/ejemplos/internal/domain/errors"
)

// ErrorResponse sigue RFC 7807 (Problem Details for HTTP APIs),
// con la lista de errores de campo como extensión
type ErrorResponse struct {
	problems.DefaultProblem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa un error de validación de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewErrorResponseI18n crea una respuesta de error RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	return ErrorResponse{
		DefaultProblem: problems.DefaultProblem{
			Type:     baseURL + problemType,
			Title:    T(c, titleKey, params...),
			Status:   status,
			Detail:   T(c, detailKey, params...),
			Instance: c.Request.URL.Path,
		},
	}
}

// Helpers para las respuestas de error comunes

// ValidationErrorResponseI18n crea una respuesta 422 con errores de campo
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		http.StatusUnprocessableEntity,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n crea una respuesta de error 404
func NotFoundErrorResponseI18n(c *gin.Context, resource string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		"error.not_found.detail",
		http.StatusNotFound,
		map[string]interface{}{"Resource": resource},
	)
}

// BadRequestErrorResponseI18n crea una respuesta de error 400 con un
// mensaje fijo (por ejemplo, email duplicado)
func BadRequestErrorResponseI18n(c *gin.Context, detailKey string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title",
		detailKey,
		http.StatusBadRequest,
	)
}

// InternalErrorResponseI18n crea una respuesta de error 500 genérica;
// el detalle real se registra en el log, nunca se expone al usuario
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		http.StatusInternalServerError,
	)
}

// FieldErrorsFromBinding aplana los errores de binding del validador en
// pares (campo, mensaje) traducidos: un mensaje por campo inválido
func FieldErrorsFromBinding(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Cuerpo malformado u otro error de parseo
		return []ValidationError{{Field: "body", Message: T(c, "error.validation.detail")}}
	}

	seen := make(map[string]bool)
	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if seen[field] {
			continue
		}
		seen[field] = true
		result = append(result, ValidationError{
			Field:   field,
			Message: T(c, bindingMessageKey(field, fe.Tag())),
		})
	}
	return result
}

// bindingMessageKey mapea (campo, tag) al message ID del catálogo
func bindingMessageKey(field, tag string) string {
	switch {
	case field == "email" && tag == "required":
		return "validation.email_required"
	case field == "email":
		return "validation.email_invalid"
	case field == "password" && tag == "min":
		return "validation.password_min"
	case field == "password":
		return "validation.password_required"
	case field == "nombre":
		return "validation.nombre_required"
	default:
		return "error.validation.detail"
	}
}
