package models

import "time"

type Product struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"empresa_id"`

	Name        string  `gorm:"size:100;not null" json:"nome"`
	Description string  `gorm:"size:255" json:"descricao"`
	Price       float64 `json:"preco"`
	Active      bool    `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
