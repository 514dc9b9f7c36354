package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint   `json:"empresa_id"`
	UserID    *uint  `json:"usuario_id"`
	Action    string `gorm:"size:50;not null" json:"acao"`

	Entity   string `gorm:"size:50" json:"entidade"`
	EntityID *uint  `json:"entidade_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
