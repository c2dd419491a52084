package gormdb

import "time"

// UserModel es el modelo GORM para usuarios.
// El índice único sobre email cierra la carrera del chequeo previo de
// duplicados: la violación de la restricción es la señal autoritativa.
type UserModel struct {
	ID             uint        `gorm:"primaryKey"`
	Email          string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string      `gorm:"type:varchar(255);not null"`
	EsActivo       bool        `gorm:"not null;default:true"`
	CreatedAt      time.Time   `gorm:"autoCreateTime"`
	Items          []ItemModel `gorm:"foreignKey:PropietarioID"`
}

func (UserModel) TableName() string {
	return "users"
}

// ItemModel es el modelo GORM para items
type ItemModel struct {
	ID            uint      `gorm:"primaryKey"`
	Nombre        string    `gorm:"type:varchar(255);not null"`
	Descripcion   *string   `gorm:"type:varchar(255)"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	PropietarioID *uint     `gorm:"index"`
}

func (ItemModel) TableName() string {
	return "items"
}
