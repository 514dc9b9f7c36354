package models

import "time"

type Company struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"nome"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	CNPJ     string `gorm:"size:20" json:"cnpj"`
	Phone    string `gorm:"size:20" json:"telefone"`
	Address  string `gorm:"size:255" json:"endereco"`
	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
