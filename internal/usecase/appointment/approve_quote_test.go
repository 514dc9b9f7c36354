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

func TestApproveQuoteCreatesAppointment(t *testing.T) {
	f := seedRepo()
	f.quotes[30] = models.Quote{
		ID: 30, CompanyID: 1, CustomerID: 5,
		Status: models.QuoteStatusDraft,
		Items: []models.QuoteItem{
			{QuoteID: 30, ServiceID: 10},
			{QuoteID: 30, ServiceID: 11},
		},
	}

	create := NewCreateAppointment(f, nil)
	uc := NewApproveQuote(f, create, nil)

	ap, err := uc.Execute(context.Background(), ApproveQuoteInput{
		QuoteID:   30,
		CompanyID: 1,
		ActorID:   2,
		StartTime: startAt(),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusScheduled), ap.Status)
	assert.Equal(t, uint(5), ap.CustomerID)

	lines, _ := f.ListAppointmentServices(context.Background(), ap.ID)
	assert.Len(t, lines, 2)

	q := f.quotes[30]
	assert.Equal(t, models.QuoteStatusApproved, q.Status)
	require.NotNil(t, q.AppointmentID)
	assert.Equal(t, ap.ID, *q.AppointmentID)
}

func TestApproveQuoteOnlyDraft(t *testing.T) {
	f := seedRepo()
	f.quotes[30] = models.Quote{
		ID: 30, CompanyID: 1, CustomerID: 5,
		Status: models.QuoteStatusApproved,
		Items:  []models.QuoteItem{{QuoteID: 30, ServiceID: 10}},
	}

	uc := NewApproveQuote(f, NewCreateAppointment(f, nil), nil)
	_, err := uc.Execute(context.Background(), ApproveQuoteInput{
		QuoteID:   30,
		CompanyID: 1,
		StartTime: startAt(),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindConflict))
	assert.Empty(t, f.appointments)
}

func TestApproveQuoteFailureRollsBackQuote(t *testing.T) {
	f := seedRepo()
	// serviço 99 não existe: a criação falha depois do quote carregado
	f.quotes[30] = models.Quote{
		ID: 30, CompanyID: 1, CustomerID: 5,
		Status: models.QuoteStatusDraft,
		Items:  []models.QuoteItem{{QuoteID: 30, ServiceID: 99}},
	}

	uc := NewApproveQuote(f, NewCreateAppointment(f, nil), nil)
	_, err := uc.Execute(context.Background(), ApproveQuoteInput{
		QuoteID:   30,
		CompanyID: 1,
		StartTime: startAt(),
	})
	require.Error(t, err)

	assert.Equal(t, models.QuoteStatusDraft, f.quotes[30].Status)
	assert.Empty(t, f.appointments)
}

func TestApproveQuoteWithoutItems(t *testing.T) {
	f := seedRepo()
	f.quotes[30] = models.Quote{
		ID: 30, CompanyID: 1, CustomerID: 5,
		Status: models.QuoteStatusDraft,
	}

	uc := NewApproveQuote(f, NewCreateAppointment(f, nil), nil)
	_, err := uc.Execute(context.Background(), ApproveQuoteInput{
		QuoteID:   30,
		CompanyID: 1,
		StartTime: startAt(),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))
}
