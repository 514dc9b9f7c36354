package models

import "time"

const (
	VoucherStatusAvailable = "available"
	VoucherStatusUsed      = "used"
)

// Voucher de cashback: desconto percentual, resgatável uma única vez
// por um agendamento não cancelado.
type Voucher struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID  uint `json:"empresa_id"`
	CustomerID uint `json:"cliente_id"`

	Code       string  `gorm:"size:40;uniqueIndex" json:"codigo"`
	Percentage float64 `json:"percentual"`
	Status     string  `gorm:"size:20;default:'available'" json:"status"`

	// Agendamento que consumiu o voucher; limpo ao cancelar
	AppointmentID *uint `json:"agendamento_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
