package appointment

import (
	"context"
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type ApproveQuoteInput struct {
	QuoteID   uint
	CompanyID uint
	ActorID   uint

	StartTime  time.Time
	EmployeeID *uint
	VoucherID  *uint
}

// ApproveQuote converte um orçamento em agendamento: mesma criação
// transacional, com o orçamento marcado como aprovado no mesmo commit.
type ApproveQuote struct {
	repo   domain.Repository
	create *CreateAppointment
	audit  *audit.Dispatcher
}

func NewApproveQuote(
	repo domain.Repository,
	create *CreateAppointment,
	audit *audit.Dispatcher,
) *ApproveQuote {
	return &ApproveQuote{
		repo:   repo,
		create: create,
		audit:  audit,
	}
}

func (uc *ApproveQuote) Execute(
	ctx context.Context,
	in ApproveQuoteInput,
) (*models.Appointment, error) {

	var created *models.Appointment

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {
		quote, err := r.GetQuote(ctx, in.CompanyID, in.QuoteID)
		if err != nil {
			return err
		}

		if quote.Status != models.QuoteStatusDraft {
			return httperr.ErrConflict("quote_not_approvable")
		}
		if len(quote.Items) == 0 {
			return httperr.ErrValidation("missing_services")
		}

		serviceIDs := make([]uint, 0, len(quote.Items))
		for _, item := range quote.Items {
			serviceIDs = append(serviceIDs, item.ServiceID)
		}

		ap, err := uc.create.create(ctx, r, CreateAppointmentInput{
			CompanyID:  in.CompanyID,
			CustomerID: quote.CustomerID,
			ServiceIDs: serviceIDs,
			StartTime:  in.StartTime,
			VoucherID:  in.VoucherID,
			EmployeeID: in.EmployeeID,
		})
		if err != nil {
			return err
		}

		quote.Status = models.QuoteStatusApproved
		quote.AppointmentID = &ap.ID
		if err := r.SaveQuote(ctx, quote); err != nil {
			return err
		}

		created = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    &in.ActorID,
		Action:    "quote_approved",
		Entity:    "quote",
		EntityID:  &in.QuoteID,
	})

	return created, nil
}
