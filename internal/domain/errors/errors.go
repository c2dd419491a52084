package errors

import "errors"

// Errores de negocio
// Nota: son códigos de error (message IDs para i18n).
// Las traducciones están en internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrItemNotFound       = errors.New("error.item_not_found")
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
)

// Errores de dominio
var (
	ErrInvalidEmail    = errors.New("error.invalid_email")
	ErrPasswordTooWeak = errors.New("error.password_too_weak")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: el dominio base viene de configuración (API_BASE_URL)
const (
	ProblemTypeValidation = "/problems/validation-error"
	ProblemTypeNotFound   = "/problems/not-found"
	ProblemTypeBadRequest = "/problems/bad-request"
	ProblemTypeInternal   = "/problems/internal-error"
)
