package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

func TestCancelReleasesVoucher(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)

	f.vouchers[7] = models.Voucher{
		ID: 7, CompanyID: 1, CustomerID: 5,
		Percentage: 10, Status: models.VoucherStatusUsed,
		AppointmentID: &ap.ID,
	}
	ap.VoucherID = uintPtr(7)
	_ = f.SaveAppointment(context.Background(), ap)

	uc := NewCancelAppointment(f, nil)
	cancelled, err := uc.Execute(context.Background(), CancelInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ActorID:       2,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)

	v := f.vouchers[7]
	assert.Equal(t, models.VoucherStatusAvailable, v.Status)
	assert.Nil(t, v.AppointmentID)
}

func TestCancelByOwningCustomer(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)

	uc := NewCancelAppointment(f, nil)
	cancelled, err := uc.Execute(context.Background(), CancelInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ActorID:       5,
		CustomerID:    uintPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
}

func TestCancelByAnotherCustomerIsNotFound(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)

	uc := NewCancelAppointment(f, nil)
	_, err := uc.Execute(context.Background(), CancelInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ActorID:       999,
		CustomerID:    uintPtr(999),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))

	// segue agendado
	assert.Equal(t, string(domain.StatusScheduled), f.appointments[ap.ID].Status)
}

func TestCancelCompletedIsForbidden(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusCompleted), nil)

	uc := NewCancelAppointment(f, nil)
	_, err := uc.Execute(context.Background(), CancelInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ActorID:       2,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestCancelUnknownAppointment(t *testing.T) {
	f := seedRepo()

	uc := NewCancelAppointment(f, nil)
	_, err := uc.Execute(context.Background(), CancelInput{
		AppointmentID: 999,
		CompanyID:     1,
		ActorID:       2,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}
