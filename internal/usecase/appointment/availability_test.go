package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
)

// 10/03/2026 é uma terça-feira
func tuesday() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func TestAvailableSlotsFromServiceTemplate(t *testing.T) {
	f := seedRepo()
	svc := f.services[10]
	svc.Availability = schedule.WeekTemplate{
		time.Tuesday: {{Start: 9 * 60, End: 10 * 60}},
	}
	f.services[10] = svc

	uc := NewGetAvailableSlots(f)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		CompanyID:  1,
		ServiceIDs: []uint{10},
		Date:       tuesday(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00", "09:15", "09:30"}, slots)
}

func TestAvailableSlotsEmployeeTemplateWins(t *testing.T) {
	f := seedRepo()
	svc := f.services[10]
	svc.Availability = schedule.WeekTemplate{
		time.Tuesday: {{Start: 9 * 60, End: 12 * 60}},
	}
	f.services[10] = svc

	emp := f.employees[3]
	emp.WorkingHours = schedule.WeekTemplate{
		time.Tuesday: {{Start: 14 * 60, End: 15 * 60}},
	}
	f.employees[3] = emp

	uc := NewGetAvailableSlots(f)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		CompanyID:  1,
		EmployeeID: uintPtr(3),
		ServiceIDs: []uint{10},
		Date:       tuesday(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"14:00", "14:15", "14:30"}, slots)
}

func TestAvailableSlotsFiltersBusyWindows(t *testing.T) {
	f := seedRepo()
	svc := f.services[10]
	svc.Availability = schedule.WeekTemplate{
		time.Tuesday: {{Start: 9 * 60, End: 10 * 60}},
	}
	f.services[10] = svc

	d := tuesday()
	f.busy = []domain.BusyWindow{{
		Start: d.Add(9*time.Hour + 30*time.Minute),
		End:   d.Add(10 * time.Hour),
	}}

	uc := NewGetAvailableSlots(f)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		CompanyID:  1,
		ServiceIDs: []uint{10},
		Date:       d,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, slots)
}

func TestAvailableSlotsDayWithoutTemplate(t *testing.T) {
	f := seedRepo()

	uc := NewGetAvailableSlots(f)
	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		CompanyID:  1,
		ServiceIDs: []uint{10},
		Date:       tuesday(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{}, slots)
}
