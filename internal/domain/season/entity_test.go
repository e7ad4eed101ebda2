package season

import (
	"testing"
	"time"
)

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"safra encerrada", now.AddDate(0, 0, -30), 0},
		{"fim exatamente agora", now, 0},
		{"dez dias à frente", now.AddDate(0, 0, 10), 10},
		{"meio dia à frente arredonda para cima", now.Add(12 * time.Hour), 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Season{EndDate: c.end}
			if got := s.DaysRemaining(now); got != c.want {
				t.Errorf("DaysRemaining = %d, esperado %d", got, c.want)
			}
		})
	}
}

func TestNewSeasonDefaultsStatus(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	s, err := NewSeason("Safra 2024A", start, end, Status("bogus"))
	if err != nil {
		t.Fatalf("NewSeason: %v", err)
	}
	if s.Status != StatusInactive {
		t.Errorf("status padrão deveria ser inactive, veio %s", s.Status)
	}
	if s.ID == "" {
		t.Error("ID não foi gerado")
	}

	if _, err := NewSeason("", start, end, StatusActive); err != ErrEmptyName {
		t.Errorf("esperado ErrEmptyName, veio %v", err)
	}
}
