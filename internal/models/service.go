package models

import (
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
)

type Service struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"empresa_id"`

	Name        string  `gorm:"size:100;not null" json:"nome"`
	Description string  `gorm:"size:255" json:"descricao"`
	DurationMin int     `json:"duracao_min"`
	Price       float64 `json:"preco"`
	Active      bool    `gorm:"default:true" json:"ativo"`

	// Disponibilidade padrão do serviço, usada quando nenhum
	// funcionário é informado na busca de horários.
	Availability schedule.WeekTemplate `gorm:"type:text" json:"disponibilidade"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
