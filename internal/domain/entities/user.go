package entities

import (
	"time"

	"github.com/jovanyvelez/ejemplos/internal/domain/valueobjects"
)

// User representa un usuario del sistema.
// HashedPassword es un token opaco de verificación de credenciales (bcrypt),
// nunca comparable directamente con la entrada del usuario.
type User struct {
	ID             uint
	Email          valueobjects.Email
	HashedPassword string
	EsActivo       bool
	CreatedAt      time.Time
	Items          []Item
}

// Deactivate marca el usuario como inactivo
func (u *User) Deactivate() {
	u.EsActivo = false
}

// Owns verifica si el usuario es propietario del item
func (u *User) Owns(item *Item) bool {
	return item.PropietarioID != nil && *item.PropietarioID == u.ID
}
