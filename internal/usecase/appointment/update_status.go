package appointment

import (
	"context"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/domain/commission"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID uint
	CompanyID     uint
	ActorID       uint

	NewStatus       string
	PaymentMethodID *uint
	PaymentTermID   *uint
}

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	next := domain.Status(in.NewStatus)
	if !domain.IsValidStatus(next) {
		return nil, httperr.ErrValidation("invalid_status")
	}

	shop, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	var updated *models.Appointment

	// Mudança de status e lançamentos de comissão commitam juntos.
	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointment(ctx, in.AppointmentID, in.CompanyID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(shop.Timezone)
		if err := domain.Transition(
			ap,
			next,
			in.PaymentMethodID,
			in.PaymentTermID,
			now,
		); err != nil {
			return err
		}

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		if next == domain.StatusCompleted {
			if err := postCommissions(ctx, r, ap); err != nil {
				return err
			}
		}

		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    &in.ActorID,
		Action:    "appointment_status_" + in.NewStatus,
		Entity:    "appointment",
		EntityID:  &updated.ID,
	})

	return updated, nil
}

// postCommissions lança uma comissão por linha de serviço com regra
// aplicável. Sem funcionário atribuído, nada é lançado.
func postCommissions(
	ctx context.Context,
	r domain.Repository,
	ap *models.Appointment,
) error {

	if ap.EmployeeID == nil {
		return nil
	}

	lines, err := r.ListAppointmentServices(ctx, ap.ID)
	if err != nil {
		return err
	}

	rules, err := r.ListActiveCommissionRules(ctx, ap.CompanyID)
	if err != nil {
		return err
	}

	records := commission.BuildRecords(ap, lines, rules)
	if len(records) == 0 {
		return nil
	}

	return r.CreateCommissionRecords(ctx, records)
}
