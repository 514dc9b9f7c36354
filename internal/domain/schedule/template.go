package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ===============================
// Weekly availability template
// ===============================

// Interval é uma faixa de atendimento dentro de um dia, em minutos
// desde a meia-noite. Start < End sempre.
type Interval struct {
	Start int
	End   int
}

// ParseInterval aceita o formato "HH:MM-HH:MM".
func ParseInterval(s string) (Interval, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("invalid interval %q", s)
	}

	start, err := parseHM(parts[0])
	if err != nil {
		return Interval{}, err
	}
	end, err := parseHM(parts[1])
	if err != nil {
		return Interval{}, err
	}
	if end <= start {
		return Interval{}, fmt.Errorf("interval %q ends before it starts", s)
	}

	return Interval{Start: start, End: end}, nil
}

func parseHM(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", FormatMinutes(i.Start), FormatMinutes(i.End))
}

// FormatMinutes formata minutos desde a meia-noite como "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// WeekTemplate mapeia o dia da semana (0 = domingo) para as faixas de
// atendimento daquele dia, em ordem cronológica.
type WeekTemplate map[time.Weekday][]Interval

// DayIntervals retorna as faixas do dia, ordenadas. Dia sem faixa → nil.
func (w WeekTemplate) DayIntervals(day time.Weekday) []Interval {
	ivs := append([]Interval(nil), w[day]...)
	sort.Slice(ivs, func(a, b int) bool { return ivs[a].Start < ivs[b].Start })
	return ivs
}

// ===============================
// Storage boundary (JSON em coluna text)
// ===============================

type wireInterval struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

func (w WeekTemplate) Value() (driver.Value, error) {
	if len(w) == 0 {
		return "{}", nil
	}

	wire := make(map[string][]wireInterval, len(w))
	for day, ivs := range w {
		key := fmt.Sprintf("%d", int(day))
		for _, iv := range ivs {
			wire[key] = append(wire[key], wireInterval{
				Start: FormatMinutes(iv.Start),
				End:   FormatMinutes(iv.End),
			})
		}
	}

	b, err := json.Marshal(wire)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (w *WeekTemplate) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*w = WeekTemplate{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into WeekTemplate", src)
	}

	if len(data) == 0 {
		*w = WeekTemplate{}
		return nil
	}

	var wire map[string][]wireInterval
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	out := WeekTemplate{}
	for key, ivs := range wire {
		var day int
		if _, err := fmt.Sscanf(key, "%d", &day); err != nil || day < 0 || day > 6 {
			return fmt.Errorf("invalid weekday key %q", key)
		}
		for _, iv := range ivs {
			parsed, err := ParseInterval(iv.Start + "-" + iv.End)
			if err != nil {
				return err
			}
			out[time.Weekday(day)] = append(out[time.Weekday(day)], parsed)
		}
	}

	*w = out
	return nil
}
