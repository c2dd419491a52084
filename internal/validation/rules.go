// Package validation implementa la capa de validación declarativa:
// una tabla explícita de reglas por campo, sin reflection ni tags.
// Cada regla es un predicado sobre el valor crudo más un message ID de i18n.
package validation

import (
	"net/mail"
	"strconv"
	"strings"
)

// Rule es un predicado con nombre sobre el valor crudo de un campo,
// emparejado con un message ID de rechazo
type Rule struct {
	Name    string
	Check   func(value string) bool
	Message string
}

// FieldRules es la lista ordenada de reglas de un campo
type FieldRules struct {
	Field string
	Rules []Rule
}

// RuleSet es la tabla de validación: campos en orden, cada uno con sus
// reglas en orden
type RuleSet []FieldRules

// FieldError es un error de validación a nivel de campo
type FieldError struct {
	Field   string
	Message string
}

// Apply evalúa todos los campos en una sola pasada y retorna un mensaje por
// campo inválido: dentro de un campo, gana la primera regla que falla.
// Retorna nil cuando todos los campos son válidos.
func (rs RuleSet) Apply(values map[string]string) []FieldError {
	var errs []FieldError

	for _, fr := range rs {
		value := values[fr.Field]
		for _, rule := range fr.Rules {
			if !rule.Check(value) {
				errs = append(errs, FieldError{Field: fr.Field, Message: rule.Message})
				break
			}
		}
	}

	return errs
}

// Required exige un valor no vacío (ignorando espacios)
func Required(message string) Rule {
	return Rule{
		Name:    "required",
		Check:   func(v string) bool { return strings.TrimSpace(v) != "" },
		Message: message,
	}
}

// MinLength exige una longitud mínima en caracteres
func MinLength(n int, message string) Rule {
	return Rule{
		Name:    "min_length",
		Check:   func(v string) bool { return len([]rune(v)) >= n },
		Message: message,
	}
}

// ValidEmail exige forma de email: parte local, "@", dominio con un punto
func ValidEmail(message string) Rule {
	return Rule{
		Name: "email",
		Check: func(v string) bool {
			addr, err := mail.ParseAddress(v)
			if err != nil || addr.Address != v {
				return false
			}
			at := strings.LastIndex(v, "@")
			return strings.Contains(v[at+1:], ".")
		},
		Message: message,
	}
}

// NonNegativeInt exige un entero no negativo; el vacío es válido
// (el llamador aplica su default)
func NonNegativeInt(message string) Rule {
	return Rule{
		Name: "non_negative_int",
		Check: func(v string) bool {
			if v == "" {
				return true
			}
			n, err := strconv.Atoi(v)
			return err == nil && n >= 0
		},
		Message: message,
	}
}

// Optional marca un campo como siempre válido (ausencia y cadena vacía
// significan lo mismo: sin valor)
func Optional() Rule {
	return Rule{
		Name:    "optional",
		Check:   func(string) bool { return true },
		Message: "",
	}
}
