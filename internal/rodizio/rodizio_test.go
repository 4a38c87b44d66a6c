package rodizio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-08-24 is a Monday.
func day(weekday int) time.Time {
	return time.Date(2026, 8, 24+weekday, 12, 0, 0, 0, time.UTC)
}

func TestRestricted(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		date  time.Time
		want  bool
	}{
		{"digit 1 on monday", "ABC-1231", day(0), true},
		{"digit 2 on monday", "ABC-1232", day(0), true},
		{"digit 1 on tuesday", "ABC-1231", day(1), false},
		{"digit 4 on tuesday", "XYZ-5674", day(1), true},
		{"digit 4 on thursday", "ABC-1234", day(3), false},
		{"digit 8 on thursday", "DEF-9018", day(3), true},
		{"digit 0 on friday", "GHI-3450", day(4), true},
		{"digit 9 on friday", "GHI-3459", day(4), true},
		{"digit 9 on monday", "GHI-3459", day(0), false},
		{"saturday never restricted", "ABC-1231", day(5), false},
		{"sunday never restricted", "ABC-1232", day(6), false},
		{"mercosul plate letter suffix", "ABC1D23", day(1), true},
		{"plate ending in letter", "1234-ABC", day(0), false},
		{"empty plate", "", day(0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Restricted(tt.plate, tt.date))
		})
	}
}

func TestRestrictedStripsPunctuation(t *testing.T) {
	// Separators and whitespace must not count as the last character.
	assert.True(t, Restricted("abc-1232 ", day(0)))
	assert.True(t, Restricted("A B C 1 2 3 2", day(0)))
}

func TestDayLabel(t *testing.T) {
	tests := []struct {
		plate string
		want  string
	}{
		{"ABC-1231", "Segunda-feira"},
		{"ABC-1232", "Segunda-feira"},
		{"ABC-1233", "Terça-feira"},
		{"ABC-1235", "Quarta-feira"},
		{"ABC-1237", "Quinta-feira"},
		{"ABC-1239", "Sexta-feira"},
		{"ABC-1230", "Sexta-feira"},
		{"ABCD-EFG", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DayLabel(tt.plate), "plate %q", tt.plate)
	}
}
