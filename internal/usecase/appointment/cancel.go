package appointment

import (
	"context"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

type CancelInput struct {
	AppointmentID uint
	CompanyID     uint
	ActorID       uint

	// Preenchido quando o cancelamento vem do cliente final; o cliente
	// só enxerga (e cancela) os próprios agendamentos.
	CustomerID *uint
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	var cancelled *models.Appointment

	// Cancelamento e devolução do voucher na mesma transação.
	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointment(ctx, in.AppointmentID, in.CompanyID)
		if err != nil {
			return err
		}

		// Agendamento de outro cliente surge como inexistente
		if in.CustomerID != nil && ap.CustomerID != *in.CustomerID {
			return httperr.ErrNotFound("appointment_not_found")
		}

		now := timezone.NowIn(shop.Timezone)
		if err := domain.Cancel(ap, now); err != nil {
			return err
		}

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		if ap.VoucherID != nil {
			voucher, err := r.GetVoucherByID(ctx, *ap.VoucherID)
			if err != nil {
				return err
			}

			voucher.Status = models.VoucherStatusAvailable
			voucher.AppointmentID = nil
			if err := r.SaveVoucher(ctx, voucher); err != nil {
				return err
			}
		}

		cancelled = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    &in.ActorID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &cancelled.ID,
	})

	return cancelled, nil
}
