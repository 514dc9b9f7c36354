package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AgendaLivreBR/salon-api/internal/httperr"
	"github.com/AgendaLivreBR/salon-api/internal/models"
)

func TestCanTransitionBetweenActiveStates(t *testing.T) {
	active := []Status{
		StatusScheduled, StatusInProgress,
		StatusWaitingCustomer, StatusWaitingPart,
	}

	for _, from := range active {
		for _, to := range active {
			if from == to {
				continue
			}
			assert.NoError(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminalStatusNeverTransitions(t *testing.T) {
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		err := CanTransition(from, StatusScheduled)
		require.Error(t, err)
		assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	}
}

func TestCanTransitionRejectsInvalidAndSelf(t *testing.T) {
	err := CanTransition(StatusScheduled, Status("done"))
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	err = CanTransition(StatusScheduled, StatusScheduled)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}

func TestTransitionToCompletedRequiresPayment(t *testing.T) {
	now := time.Now()
	method := uint(1)
	term := uint(2)

	ap := &models.Appointment{Status: string(StatusInProgress)}
	err := Transition(ap, StatusCompleted, nil, nil, now)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
	assert.Equal(t, string(StatusInProgress), ap.Status)

	require.NoError(t, Transition(ap, StatusCompleted, &method, &term, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, &method, ap.PaymentMethodID)
	assert.Equal(t, &term, ap.PaymentTermID)
	require.NotNil(t, ap.CompletedAt)
	assert.Equal(t, now, *ap.CompletedAt)
}

func TestCancelSetsTimestamp(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusScheduled)}
	require.NoError(t, Cancel(ap, now))
	assert.Equal(t, string(StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	// cancelar de novo é proibido
	err := Cancel(ap, now)
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
}

func TestEndTimeSumsDurations(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	services := []models.Service{
		{DurationMin: 30},
		{DurationMin: 45},
	}

	end := EndTime(start, services)
	assert.Equal(t, start.Add(75*time.Minute), end)
}

func TestServiceTotal(t *testing.T) {
	services := []models.Service{
		{Price: 50},
		{Price: 30.5},
	}
	assert.Equal(t, 80.5, ServiceTotal(services))
}
