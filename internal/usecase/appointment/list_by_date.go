package appointment

import (
	"context"
	"time"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	companyID uint,
	employeeID *uint,
	date time.Time,
) ([]models.Appointment, error) {

	start := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForPeriod(
		ctx,
		companyID,
		employeeID,
		start,
		end,
	)
}
