package models

import "time"

const (
	StockReasonSale      = "sale"
	StockReasonAdjustIn  = "adjust-in"
	StockReasonAdjustOut = "adjust-out"
)

// Saldo atual por (empresa, produto). Sempre consistente com a soma
// dos movimentos, atualizado na mesma transação que grava o movimento.
type StockLevel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"uniqueIndex:idx_stock_level" json:"empresa_id"`
	ProductID uint `gorm:"uniqueIndex:idx_stock_level" json:"produto_id"`

	Quantity int `json:"quantidade"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Livro-razão de estoque, somente inserção.
type StockMovement struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"empresa_id"`
	ProductID uint `json:"produto_id"`

	Quantity int    `json:"quantidade"` // delta: negativo = saída
	Reason   string `gorm:"size:20;not null" json:"motivo"`

	AppointmentID *uint `json:"agendamento_id"`

	CreatedAt time.Time `json:"created_at"`
}
