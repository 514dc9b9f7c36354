package appointment

import (
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition aplica a mudança de status validada pela máquina de
// estados. A conclusão exige forma e condição de pagamento.
func Transition(
	ap *models.Appointment,
	next Status,
	paymentMethodID *uint,
	paymentTermID *uint,
	now time.Time,
) error {

	if err := CanTransition(Status(ap.Status), next); err != nil {
		return err
	}

	if next == StatusCompleted {
		if paymentMethodID == nil || paymentTermID == nil {
			return httperr.ErrValidation("missing_payment_fields")
		}
		ap.PaymentMethodID = paymentMethodID
		ap.PaymentTermID = paymentTermID
		ap.CompletedAt = &now
	}

	if next == StatusCancelled {
		ap.CancelledAt = &now
	}

	ap.Status = string(next)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// EndTime deriva o fim: início + soma das durações, em minutos corridos.
func EndTime(start time.Time, services []models.Service) time.Time {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	return start.Add(time.Duration(total) * time.Minute)
}

// ServiceTotal soma os preços de tabela dos serviços.
func ServiceTotal(services []models.Service) float64 {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	return total
}
