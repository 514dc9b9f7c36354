package appointment

import (
	"context"
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/audit"
	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

// ======================================================
// ADD SERVICE
// ======================================================

type AddService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddService(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddService {
	return &AddService{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddService) Execute(
	ctx context.Context,
	companyID uint,
	actorID uint,
	appointmentID uint,
	serviceID uint,
) (*models.AppointmentService, error) {

	var line *models.AppointmentService

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointment(ctx, appointmentID, companyID)
		if err != nil {
			return err
		}

		if err := domain.CanEditLines(domain.Status(ap.Status)); err != nil {
			return err
		}

		// Par (agendamento, serviço) é único
		exists, err := r.HasAppointmentService(ctx, appointmentID, serviceID)
		if err != nil {
			return err
		}
		if exists {
			return httperr.ErrConflict("duplicate_service")
		}

		services, err := r.GetServices(ctx, companyID, []uint{serviceID})
		if err != nil {
			return err
		}

		line = &models.AppointmentService{
			AppointmentID: appointmentID,
			ServiceID:     serviceID,
			Price:         services[0].Price,
		}
		if err := r.AddAppointmentService(ctx, line); err != nil {
			return err
		}

		// Fim recalculado com a nova duração
		ap.EndTime = ap.EndTime.Add(minutes(services[0].DurationMin))
		return r.SaveAppointment(ctx, ap)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: companyID,
		UserID:    &actorID,
		Action:    "appointment_service_added",
		Entity:    "appointment",
		EntityID:  &appointmentID,
	})

	return line, nil
}

// ======================================================
// ADD PRODUCT
// ======================================================

type AddProductInput struct {
	AppointmentID uint
	CompanyID     uint
	ActorID       uint

	ProductID uint
	Quantity  int
	UnitPrice float64
}

type AddProduct struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddProduct(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddProduct {
	return &AddProduct{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddProduct) Execute(
	ctx context.Context,
	in AddProductInput,
) (*models.AppointmentProduct, error) {

	if in.ProductID == 0 || in.Quantity <= 0 || in.UnitPrice <= 0 {
		return nil, httperr.ErrValidation("invalid_product_line")
	}

	var line *models.AppointmentProduct

	err := uc.repo.Transact(ctx, func(r domain.Repository) error {
		ap, err := r.GetAppointment(ctx, in.AppointmentID, in.CompanyID)
		if err != nil {
			return err
		}

		if err := domain.CanEditLines(domain.Status(ap.Status)); err != nil {
			return err
		}

		if _, err := r.GetProduct(ctx, in.CompanyID, in.ProductID); err != nil {
			return err
		}

		line = &models.AppointmentProduct{
			AppointmentID: in.AppointmentID,
			ProductID:     in.ProductID,
			Quantity:      in.Quantity,
			UnitPrice:     in.UnitPrice,
		}
		return r.AddAppointmentProduct(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: in.CompanyID,
		UserID:    &in.ActorID,
		Action:    "appointment_product_added",
		Entity:    "appointment",
		EntityID:  &in.AppointmentID,
	})

	return line, nil
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
