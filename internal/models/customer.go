package models

import "time"

// Cliente final, com login próprio, vinculado a uma empresa
type Customer struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `json:"empresa_id"`

	Name         string `gorm:"size:100;not null" json:"nome"`
	Phone        string `gorm:"size:20" json:"telefone"`
	Email        string `gorm:"size:100;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
