package entities

import "time"

// Item representa un artículo que pertenece a un usuario.
// Descripcion es opcional: nil y cadena vacía significan "sin descripción".
type Item struct {
	ID            uint
	Nombre        string
	Descripcion   *string
	CreatedAt     time.Time
	PropietarioID *uint
}

// HasDescription verifica si el item tiene una descripción no vacía
func (i *Item) HasDescription() bool {
	return i.Descripcion != nil && *i.Descripcion != ""
}
