package sap

import "testing"

// TestStatisticsAddClamps verifies stat addition saturates at MaxStat.
func TestStatisticsAddClamps(t *testing.T) {
	s := Statistics{Attack: MaxStat - 1, Health: MaxStat - 1}
	s = s.Add(Statistics{Attack: 5, Health: 5})
	if s.Attack != MaxStat || s.Health != MaxStat {
		t.Errorf("expected both stats clamped to %d, got %+v", MaxStat, s)
	}
}

// TestStatisticsSubFloorsAtZero verifies damage never drives stats negative.
func TestStatisticsSubFloorsAtZero(t *testing.T) {
	s := Statistics{Attack: 2, Health: 3}
	s = s.Sub(Statistics{Attack: 10, Health: 10})
	if s.Attack != 0 || s.Health != 0 {
		t.Errorf("expected both stats floored to 0, got %+v", s)
	}
}

// TestStatisticsMul verifies scaling clamps the same as Add.
func TestStatisticsMul(t *testing.T) {
	cases := []struct {
		name   string
		in     Statistics
		factor int
		want   Statistics
	}{
		{"double", Statistics{Attack: 3, Health: 4}, 2, Statistics{Attack: 6, Health: 8}},
		{"clamp high", Statistics{Attack: 30, Health: 30}, 3, Statistics{Attack: MaxStat, Health: MaxStat}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Mul(c.factor)
			if !got.Equal(c.want) {
				t.Errorf("%s: got %+v, want %+v", c.name, got, c.want)
			}
		})
	}
}

// TestStatisticsSubPercent verifies percentage-based health removal.
func TestStatisticsSubPercent(t *testing.T) {
	s := Statistics{Attack: 5, Health: 20}
	got := s.SubPercent(50)
	if got.Health != 10 {
		t.Errorf("expected 50%% of 20 health removed -> 10, got %d", got.Health)
	}
	if got.Attack != 5 {
		t.Errorf("SubPercent must not touch attack, got %d", got.Attack)
	}
}
