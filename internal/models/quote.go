package models

import "time"

const (
	QuoteStatusDraft    = "draft"
	QuoteStatusApproved = "approved"
	QuoteStatusRejected = "rejected"
)

// Orçamento: lista de serviços proposta ao cliente; aprovado, vira
// um agendamento.
type Quote struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID  uint `json:"empresa_id"`
	CustomerID uint `json:"cliente_id"`

	Status string `gorm:"size:20;default:'draft'" json:"status"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID" json:"itens"`

	// Agendamento criado na aprovação
	AppointmentID *uint `json:"agendamento_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	QuoteID   uint `json:"orcamento_id"`
	ServiceID uint `json:"servico_id"`

	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	CreatedAt time.Time `json:"created_at"`
}
