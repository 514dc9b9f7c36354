package appointment

import (
	"context"
	"time"

	domain "github.com/AgendaLivreBR/salon-api/internal/domain/appointment"
	"github.com/AgendaLivreBR/salon-api/internal/timezone"
)

// ReminderFeed expõe a projeção de leitura consumida pelo serviço de
// e-mail. O disparo em si acontece fora deste sistema.
type ReminderFeed struct {
	repo domain.Repository
}

func NewReminderFeed(repo domain.Repository) *ReminderFeed {
	return &ReminderFeed{repo: repo}
}

// ListPending lista agendamentos agendados dentro da janela, ainda sem
// lembrete enviado.
func (uc *ReminderFeed) ListPending(
	ctx context.Context,
	window time.Duration,
) ([]domain.ReminderProjection, error) {

	now := timezone.Now()
	return uc.repo.ListForReminder(ctx, now, now.Add(window))
}

// MarkSent registra que o serviço externo enviou o lembrete.
func (uc *ReminderFeed) MarkSent(
	ctx context.Context,
	appointmentID uint,
) error {
	return uc.repo.MarkReminderSent(ctx, appointmentID)
}
