package commission

import (
	"math"

	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// ===============================
// Política de resolução de regra
// ===============================

// ResolveRule escolhe a regra aplicável a uma linha de serviço, em
// ordem fixa: regra do serviço específico, depois regra genérica da
// empresa (servico_id nulo), senão nenhuma. No máximo uma regra por
// linha.
func ResolveRule(rules []models.CommissionRule, serviceID uint) *models.CommissionRule {
	var wildcard *models.CommissionRule

	for i := range rules {
		r := &rules[i]
		if !r.Active {
			continue
		}
		if r.ServiceID != nil && *r.ServiceID == serviceID {
			return r
		}
		if r.ServiceID == nil && wildcard == nil {
			wildcard = r
		}
	}

	return wildcard
}

// Compute calcula o valor da comissão para a base informada,
// arredondado a 2 casas.
func Compute(rule *models.CommissionRule, base float64) float64 {
	var value float64
	switch rule.Kind {
	case models.CommissionKindPercentage:
		value = base * rule.Value / 100
	case models.CommissionKindFixed:
		value = rule.Value
	}
	return Round2(value)
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildRecords monta os lançamentos de comissão de um agendamento
// concluído: um por linha de serviço com regra aplicável, nenhum para
// linha sem regra.
func BuildRecords(
	ap *models.Appointment,
	lines []models.AppointmentService,
	rules []models.CommissionRule,
) []models.CommissionRecord {

	if ap.EmployeeID == nil {
		return nil
	}

	var records []models.CommissionRecord
	for _, line := range lines {
		rule := ResolveRule(rules, line.ServiceID)
		if rule == nil {
			continue
		}

		records = append(records, models.CommissionRecord{
			CompanyID:     ap.CompanyID,
			AppointmentID: ap.ID,
			ServiceID:     line.ServiceID,
			EmployeeID:    *ap.EmployeeID,
			RuleID:        rule.ID,
			AppliedKind:   rule.Kind,
			BaseAmount:    line.Price,
			Amount:        Compute(rule, line.Price),
		})
	}

	return records
}
