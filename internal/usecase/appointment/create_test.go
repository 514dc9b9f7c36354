package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

func uintPtr(v uint) *uint { return &v }

func seedRepo() *fakeRepo {
	f := newFakeRepo()
	f.companies[1] = models.Company{
		ID: 1, Name: "Salão Aurora", Slug: "salao-aurora",
		Timezone: timezone.DefaultTimezone,
	}
	f.services[10] = models.Service{
		ID: 10, CompanyID: 1, Name: "Corte", DurationMin: 30, Price: 50, Active: true,
	}
	f.services[11] = models.Service{
		ID: 11, CompanyID: 1, Name: "Coloração", DurationMin: 45, Price: 120, Active: true,
	}
	f.employees[3] = models.Employee{
		ID: 3, CompanyID: 1, Name: "Bia", Role: "employee", Active: true,
	}
	return f
}

func startAt() time.Time {
	return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
}

func TestCreateAppointmentDerivesEndAndSnapshotsPrices(t *testing.T) {
	f := seedRepo()
	uc := NewCreateAppointment(f, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		ServiceIDs: []uint{10, 11},
		StartTime:  startAt(),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, startAt().Add(75*time.Minute), ap.EndTime)
	assert.Nil(t, ap.EmployeeID)

	lines, _ := f.ListAppointmentServices(context.Background(), ap.ID)
	require.Len(t, lines, 2)
	assert.Equal(t, 50.0, lines[0].Price)
	assert.Equal(t, 120.0, lines[1].Price)
}

func TestCreateAppointmentConsumesVoucher(t *testing.T) {
	f := seedRepo()
	f.vouchers[7] = models.Voucher{
		ID: 7, CompanyID: 1, CustomerID: 5,
		Percentage: 10, Status: models.VoucherStatusAvailable,
	}
	uc := NewCreateAppointment(f, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		ServiceIDs: []uint{10, 11},
		StartTime:  startAt(),
		VoucherID:  uintPtr(7),
	})
	require.NoError(t, err)

	// 10% de 170
	assert.Equal(t, 17.0, ap.DiscountAmount)

	v := f.vouchers[7]
	assert.Equal(t, models.VoucherStatusUsed, v.Status)
	require.NotNil(t, v.AppointmentID)
	assert.Equal(t, ap.ID, *v.AppointmentID)
}

func TestCreateAppointmentUsedVoucherRollsBackEverything(t *testing.T) {
	f := seedRepo()
	f.vouchers[7] = models.Voucher{
		ID: 7, CompanyID: 1, CustomerID: 5,
		Percentage: 10, Status: models.VoucherStatusUsed,
	}
	uc := NewCreateAppointment(f, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		ServiceIDs: []uint{10},
		StartTime:  startAt(),
		VoucherID:  uintPtr(7),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))

	// rollback: nenhuma escrita parcial sobrevive
	assert.Empty(t, f.appointments)
	assert.Empty(t, f.apServices)
	assert.Equal(t, models.VoucherStatusUsed, f.vouchers[7].Status)
}

func TestCreateAppointmentUnknownServiceFails(t *testing.T) {
	f := seedRepo()
	uc := NewCreateAppointment(f, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		ServiceIDs: []uint{10, 99},
		StartTime:  startAt(),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.Empty(t, f.appointments)
}

func TestCreateAppointmentRequiresServices(t *testing.T) {
	f := seedRepo()
	uc := NewCreateAppointment(f, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		StartTime:  startAt(),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestCreateAppointmentUnknownEmployeeFails(t *testing.T) {
	f := seedRepo()
	uc := NewCreateAppointment(f, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		CompanyID:  1,
		CustomerID: 5,
		ServiceIDs: []uint{10},
		StartTime:  startAt(),
		EmployeeID: uintPtr(42),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
