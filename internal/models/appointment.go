package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CompanyID uint    `json:"empresa_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CustomerID uint     `json:"cliente_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`

	EmployeeID *uint     `json:"funcionario_id"`
	Employee   *Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"funcionario,omitempty"`

	StartTime time.Time `json:"data_hora_inicio"`
	EndTime   time.Time `json:"data_hora_fim"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	VoucherID      *uint   `json:"voucher_id"`
	DiscountAmount float64 `json:"desconto"`

	PaymentMethodID *uint `json:"forma_pagamento_id"`
	PaymentTermID   *uint `json:"condicao_pagamento_id"`

	ReminderSent bool `gorm:"default:false" json:"lembrete_enviado"`

	// Preenchido pelo serviço fiscal após a conclusão; única mutação
	// permitida em estado terminal.
	FiscalInvoiceRef *string `gorm:"size:60" json:"nota_fiscal_ref,omitempty"`

	Services []AppointmentService `gorm:"foreignKey:AppointmentID" json:"servicos,omitempty"`
	Products []AppointmentProduct `gorm:"foreignKey:AppointmentID" json:"produtos,omitempty"`

	CancelledAt *time.Time `json:"cancelado_em"`
	CompletedAt *time.Time `json:"concluido_em"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Linha de serviço do agendamento. Par (agendamento, serviço) é único.
type AppointmentService struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex:idx_appointment_service" json:"agendamento_id"`
	ServiceID     uint `gorm:"uniqueIndex:idx_appointment_service" json:"servico_id"`

	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"servico"`

	// Preço congelado no momento da inclusão
	Price float64 `json:"preco"`

	CreatedAt time.Time `json:"created_at"`
}

// Linha de produto vendido junto ao agendamento
type AppointmentProduct struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `json:"agendamento_id"`
	ProductID     uint `json:"produto_id"`

	Product Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"produto"`

	Quantity  int     `json:"quantidade"`
	UnitPrice float64 `json:"preco_unitario"`

	CreatedAt time.Time `json:"created_at"`
}
