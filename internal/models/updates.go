package models

import "github.com/AgendaLivreBR/salon-api/internal/domain/schedule"

// ===============================
// Atualização parcial tipada
// ===============================
//
// Cada PATCH usa uma struct com campos opcionais; campo nil não é
// alterado. Changes() monta o conjunto de colunas a gravar — nada de
// payload dinâmico montado à mão.

type CompanyUpdate struct {
	Name     *string `json:"nome"`
	Phone    *string `json:"telefone"`
	Address  *string `json:"endereco"`
	Timezone *string `json:"timezone"`
}

func (u CompanyUpdate) Changes() map[string]any {
	ch := map[string]any{}
	if u.Name != nil {
		ch["name"] = *u.Name
	}
	if u.Phone != nil {
		ch["phone"] = *u.Phone
	}
	if u.Address != nil {
		ch["address"] = *u.Address
	}
	if u.Timezone != nil {
		ch["timezone"] = *u.Timezone
	}
	return ch
}

type ServiceUpdate struct {
	Name         *string                `json:"nome"`
	Description  *string                `json:"descricao"`
	DurationMin  *int                   `json:"duracao_min"`
	Price        *float64               `json:"preco"`
	Active       *bool                  `json:"ativo"`
	Availability *schedule.WeekTemplate `json:"disponibilidade"`
}

func (u ServiceUpdate) Changes() map[string]any {
	ch := map[string]any{}
	if u.Name != nil {
		ch["name"] = *u.Name
	}
	if u.Description != nil {
		ch["description"] = *u.Description
	}
	if u.DurationMin != nil {
		ch["duration_min"] = *u.DurationMin
	}
	if u.Price != nil {
		ch["price"] = *u.Price
	}
	if u.Active != nil {
		ch["active"] = *u.Active
	}
	if u.Availability != nil {
		ch["availability"] = *u.Availability
	}
	return ch
}

type ProductUpdate struct {
	Name        *string  `json:"nome"`
	Description *string  `json:"descricao"`
	Price       *float64 `json:"preco"`
	Active      *bool    `json:"ativo"`
}

func (u ProductUpdate) Changes() map[string]any {
	ch := map[string]any{}
	if u.Name != nil {
		ch["name"] = *u.Name
	}
	if u.Description != nil {
		ch["description"] = *u.Description
	}
	if u.Price != nil {
		ch["price"] = *u.Price
	}
	if u.Active != nil {
		ch["active"] = *u.Active
	}
	return ch
}

type CommissionRuleUpdate struct {
	Kind   *string  `json:"tipo"`
	Value  *float64 `json:"valor"`
	Active *bool    `json:"ativa"`
}

func (u CommissionRuleUpdate) Changes() map[string]any {
	ch := map[string]any{}
	if u.Kind != nil {
		ch["kind"] = *u.Kind
	}
	if u.Value != nil {
		ch["value"] = *u.Value
	}
	if u.Active != nil {
		ch["active"] = *u.Active
	}
	return ch
}
