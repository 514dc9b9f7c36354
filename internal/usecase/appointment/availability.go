package appointment

import (
	"context"
	"time"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
)

// GetAvailableSlots busca os horários livres do dia. Leitura pura, sem
// transação: a criação revalida tudo na própria transação dela.
type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	services, err := uc.repo.GetServices(ctx, in.CompanyID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	var totalMin int
	for _, s := range services {
		totalMin += s.DurationMin
	}
	total := time.Duration(totalMin) * time.Minute

	// --------------------------------------------------
	// Template do dia: expediente do funcionário, senão a
	// disponibilidade do primeiro serviço
	// --------------------------------------------------
	weekday := in.Date.Weekday()

	var intervals []schedule.Interval
	if in.EmployeeID != nil {
		emp, err := uc.repo.GetEmployee(ctx, in.CompanyID, *in.EmployeeID)
		if err != nil {
			return nil, err
		}
		intervals = emp.WorkingHours.DayIntervals(weekday)
	}
	if len(intervals) == 0 {
		intervals = services[0].Availability.DayIntervals(weekday)
	}

	// Dia sem faixa de atendimento → nada a gerar
	if len(intervals) == 0 {
		return []string{}, nil
	}

	candidates := domain.GenerateCandidates(in.Date, intervals, total)

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	busy, err := uc.repo.ListBusyWindows(
		ctx,
		in.CompanyID,
		in.EmployeeID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	free := domain.FilterConflicts(candidates, total, busy)
	return domain.FormatSlots(free), nil
}
