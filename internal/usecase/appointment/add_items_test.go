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
)

func TestAddServiceExtendsEndTime(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)
	ap.EndTime = ap.StartTime.Add(30 * time.Minute)
	_ = f.SaveAppointment(context.Background(), ap)

	uc := NewAddService(f, nil)
	line, err := uc.Execute(context.Background(), 1, 2, ap.ID, 11)
	require.NoError(t, err)

	assert.Equal(t, uint(11), line.ServiceID)
	assert.Equal(t, 120.0, line.Price)

	// 30min iniciais + 45min da coloração
	got := f.appointments[ap.ID]
	assert.Equal(t, ap.StartTime.Add(75*time.Minute), got.EndTime)
}

func TestAddServiceDuplicateConflicts(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)
	f.apServices = []models.AppointmentService{
		{AppointmentID: ap.ID, ServiceID: 10, Price: 50},
	}

	uc := NewAddService(f, nil)
	_, err := uc.Execute(context.Background(), 1, 2, ap.ID, 10)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.Len(t, f.apServices, 1)
}

func TestAddServiceOnTerminalAppointment(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusCompleted), nil)

	uc := NewAddService(f, nil)
	_, err := uc.Execute(context.Background(), 1, 2, ap.ID, 10)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestAddProduct(t *testing.T) {
	f := seedRepo()
	f.products[20] = models.Product{ID: 20, CompanyID: 1, Name: "Pomada"}
	ap := seedAppointment(f, string(domain.StatusInProgress), nil)

	uc := NewAddProduct(f, nil)
	line, err := uc.Execute(context.Background(), AddProductInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ActorID:       2,
		ProductID:     20,
		Quantity:      2,
		UnitPrice:     25,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, line.Quantity)
	assert.Len(t, f.apProducts, 1)
}

func TestAddProductValidatesLine(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)

	uc := NewAddProduct(f, nil)
	cases := []AddProductInput{
		{AppointmentID: ap.ID, CompanyID: 1, ProductID: 0, Quantity: 1, UnitPrice: 10},
		{AppointmentID: ap.ID, CompanyID: 1, ProductID: 20, Quantity: 0, UnitPrice: 10},
		{AppointmentID: ap.ID, CompanyID: 1, ProductID: 20, Quantity: 1, UnitPrice: 0},
	}
	for _, in := range cases {
		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	}
}

func TestAddProductUnknownProduct(t *testing.T) {
	f := seedRepo()
	ap := seedAppointment(f, string(domain.StatusScheduled), nil)

	uc := NewAddProduct(f, nil)
	_, err := uc.Execute(context.Background(), AddProductInput{
		AppointmentID: ap.ID,
		CompanyID:     1,
		ProductID:     99,
		Quantity:      1,
		UnitPrice:     10,
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
	assert.Empty(t, f.apProducts)
}
