package models

import "time"

const (
	CommissionKindPercentage = "percentage"
	CommissionKindFixed      = "fixed"
)

// Regra de comissão da empresa. ServiceID nulo → vale para todos os
// serviços; regra específica tem precedência sobre a genérica.
type CommissionRule struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"empresa_id"`

	ServiceID *uint   `json:"servico_id"`
	Kind      string  `gorm:"size:20;not null" json:"tipo"`
	Value     float64 `json:"valor"`
	Active    bool    `gorm:"default:true" json:"ativa"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comissão lançada na conclusão do agendamento. Imutável: nunca é
// recalculada se as regras mudarem depois.
type CommissionRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID     uint `json:"empresa_id"`
	AppointmentID uint `gorm:"uniqueIndex:idx_commission_line" json:"agendamento_id"`
	ServiceID     uint `gorm:"uniqueIndex:idx_commission_line" json:"servico_id"`
	EmployeeID    uint `json:"funcionario_id"`

	RuleID      uint    `json:"regra_id"`
	AppliedKind string  `gorm:"size:20" json:"tipo_aplicado"`
	BaseAmount  float64 `json:"base"`
	Amount      float64 `json:"valor"`

	CreatedAt time.Time `json:"created_at"`
}
