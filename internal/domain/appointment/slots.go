package appointment

import (
	"time"

	"github.com/AgendaLivreBR/salon-api/internal/domain/schedule"
)

// ===============================
// Geração de horários livres
// ===============================

// Passo fixo entre candidatos, independente da duração dos serviços.
const SlotStep = 15 * time.Minute

type AvailabilityInput struct {
	CompanyID  uint
	EmployeeID *uint
	ServiceIDs []uint
	Date       time.Time
}

// Janela ocupada por um agendamento existente.
type BusyWindow struct {
	Start time.Time
	End   time.Time
}

// GenerateCandidates produz os inícios teóricos de cada faixa do
// template: de intervalStart em passos de SlotStep, enquanto
// start + total <= intervalEnd.
func GenerateCandidates(
	date time.Time,
	intervals []schedule.Interval,
	total time.Duration,
) []time.Time {

	midnight := time.Date(
		date.Year(), date.Month(), date.Day(),
		0, 0, 0, 0,
		date.Location(),
	)

	var out []time.Time
	for _, iv := range intervals {
		start := midnight.Add(time.Duration(iv.Start) * time.Minute)
		end := midnight.Add(time.Duration(iv.End) * time.Minute)

		for cur := start; !cur.Add(total).After(end); cur = cur.Add(SlotStep) {
			out = append(out, cur)
		}
	}

	return out
}

// FilterConflicts descarta candidatos cuja janela [start, start+total)
// sobrepõe alguma janela ocupada. Sobreposição estrita: encostar não
// conflita.
func FilterConflicts(
	candidates []time.Time,
	total time.Duration,
	busy []BusyWindow,
) []time.Time {

	out := candidates[:0]
	for _, cand := range candidates {
		candEnd := cand.Add(total)

		conflict := false
		for _, b := range busy {
			if cand.Before(b.End) && candEnd.After(b.Start) {
				conflict = true
				break
			}
		}

		if !conflict {
			out = append(out, cand)
		}
	}

	return out
}

// FormatSlots devolve os candidatos como "HH:MM" em ordem cronológica.
func FormatSlots(candidates []time.Time) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Format("15:04"))
	}
	return out
}
