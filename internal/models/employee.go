package models

import (
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
)

// Funcionário da empresa (quem executa os serviços e recebe comissão)
type Employee struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CompanyID uint    `json:"empresa_id"`
	Company   Company `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"telefone"`
	Role         string `gorm:"size:20;default:'employee'" json:"perfil"`
	Active       bool   `gorm:"default:true" json:"ativo"`

	// Expediente semanal do funcionário. Vazio → usa o expediente do serviço.
	WorkingHours schedule.WeekTemplate `gorm:"type:text" json:"expediente"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
