package appointment

import (
	"context"
	"math"
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CompanyID  uint
	CustomerID uint

	ServiceIDs []uint
	StartTime  time.Time

	VoucherID  *uint
	EmployeeID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrValidation("missing_services")
	}

	var created *models.Appointment

	// Toda a escrita multi-tabela (agendamento, linhas, voucher)
	// compartilha uma transação: falha em qualquer passo desfaz tudo.
	err := uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := uc.create(ctx, r, in)
		if err != nil {
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
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &created.ID,
	})

	return created, nil
}

// create roda dentro de uma transação já aberta; também é usado pela
// aprovação de orçamento.
func (uc *CreateAppointment) create(
	ctx context.Context,
	r domain.Repository,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Serviços (todos devem existir)
	// --------------------------------------------------
	services, err := r.GetServices(ctx, in.CompanyID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Funcionário (opcional)
	// --------------------------------------------------
	if in.EmployeeID != nil {
		if _, err := r.GetEmployee(ctx, in.CompanyID, *in.EmployeeID); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3️⃣ Voucher (opcional) + desconto
	// --------------------------------------------------
	var voucher *models.Voucher
	var discount float64

	if in.VoucherID != nil {
		voucher, err = r.GetVoucherForCustomer(
			ctx,
			in.CompanyID,
			in.CustomerID,
			*in.VoucherID,
		)
		if err != nil {
			return nil, err
		}
		if voucher.Status != models.VoucherStatusAvailable {
			return nil, httperr.ErrConflict("voucher_not_available")
		}

		total := domain.ServiceTotal(services)
		discount = round2(total * voucher.Percentage / 100)
	}

	// --------------------------------------------------
	// 4️⃣ Fim derivado: início + soma das durações
	// --------------------------------------------------
	end := domain.EndTime(in.StartTime, services)

	// --------------------------------------------------
	// 5️⃣ Agendamento + linhas de serviço
	// --------------------------------------------------
	ap := &models.Appointment{
		CompanyID:      in.CompanyID,
		CustomerID:     in.CustomerID,
		EmployeeID:     in.EmployeeID,
		StartTime:      in.StartTime,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		VoucherID:      in.VoucherID,
		DiscountAmount: discount,
	}

	if err := r.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	lines := make([]models.AppointmentService, 0, len(services))
	for _, s := range services {
		lines = append(lines, models.AppointmentService{
			AppointmentID: ap.ID,
			ServiceID:     s.ID,
			Price:         s.Price,
		})
	}

	if err := r.CreateAppointmentServices(ctx, lines); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Consumo do voucher
	// --------------------------------------------------
	if voucher != nil {
		voucher.Status = models.VoucherStatusUsed
		voucher.AppointmentID = &ap.ID
		if err := r.SaveVoucher(ctx, voucher); err != nil {
			return nil, err
		}
	}

	return ap, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
