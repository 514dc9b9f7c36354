package models

import "time"

type PaymentMethod struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	CompanyID uint   `json:"empresa_id"`
	Name      string `gorm:"size:50;not null" json:"nome"`
	Active    bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Condição de pagamento (à vista, 2x, 3x...)
type PaymentTerm struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CompanyID    uint   `json:"empresa_id"`
	Name         string `gorm:"size:50;not null" json:"nome"`
	Installments int    `gorm:"default:1" json:"parcelas"`
	Active       bool   `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
