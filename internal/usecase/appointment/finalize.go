package appointment

import (
	"context"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

type FinalizeInput struct {
	AppointmentID uint
	CompanyID     uint
	ActorID       uint

	PaymentMethodID uint
	PaymentTermID   uint
}

// FinalizeWithProducts é a conclusão com acerto de estoque: além da
// transição, cada linha de produto baixa o saldo e grava um movimento
// de venda. Status, estoque e comissões em uma única transação.
type FinalizeWithProducts struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeWithProducts(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeWithProducts {
	return &FinalizeWithProducts{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FinalizeWithProducts) Execute(
	ctx context.Context,
	in FinalizeInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetCompanyByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}

	var updated *models.Appointment

	err = uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointment(ctx, in.AppointmentID, in.CompanyID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(shop.Timezone)
		if err := domain.Transition(
			ap,
			domain.StatusCompleted,
			&in.PaymentMethodID,
			&in.PaymentTermID,
			now,
		); err != nil {
			return err
		}

		if err := r.SaveAppointment(ctx, ap); err != nil {
			return err
		}

		if err := settleStock(ctx, r, ap); err != nil {
			return err
		}

		if err := postCommissions(ctx, r, ap); err != nil {
			return err
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
		Action:    "appointment_finalized",
		Entity:    "appointment",
		EntityID:  &updated.ID,
	})

	return updated, nil
}

// settleStock baixa o saldo e registra a venda de cada linha de
// produto do agendamento.
func settleStock(
	ctx context.Context,
	r domain.Repository,
	ap *models.Appointment,
) error {

	lines, err := r.ListAppointmentProducts(ctx, ap.ID)
	if err != nil {
		return err
	}

	for _, line := range lines {
		level, err := r.GetStockLevelForUpdate(ctx, ap.CompanyID, line.ProductID)
		if err != nil {
			return err
		}

		level.Quantity -= line.Quantity
		if err := r.SaveStockLevel(ctx, level); err != nil {
			return err
		}

		movement := &models.StockMovement{
			CompanyID:     ap.CompanyID,
			ProductID:     line.ProductID,
			Quantity:      -line.Quantity,
			Reason:        models.StockReasonSale,
			AppointmentID: &ap.ID,
		}
		if err := r.CreateStockMovement(ctx, movement); err != nil {
			return err
		}
	}

	return nil
}
