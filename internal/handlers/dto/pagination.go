package dto

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Defaults de paginación del contrato original
const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// ParsePagination lee skip y limit de la query string.
// Ausencia aplica los defaults; valores no numéricos o negativos producen
// errores de campo para una respuesta 422.
func ParsePagination(c *gin.Context) (skip, limit int, errs []ValidationError) {
	skip = DefaultSkip
	limit = DefaultLimit

	if raw := c.Query("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, ValidationError{
				Field:   "skip",
				Message: T(c, "validation.non_negative_int"),
			})
		} else {
			skip = n
		}
	}

	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errs = append(errs, ValidationError{
				Field:   "limit",
				Message: T(c, "validation.non_negative_int"),
			})
		} else {
			limit = n
		}
	}

	return skip, limit, errs
}

// ParseID lee un parámetro de ruta como identificador entero no negativo
func ParseID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
