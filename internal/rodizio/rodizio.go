// Package rodizio implements the São Paulo vehicle circulation restriction:
// plates are banned from circulating on one weekday, chosen by the last
// digit of the plate. Mon: 1,2 | Tue: 3,4 | Wed: 5,6 | Thu: 7,8 | Fri: 9,0.
package rodizio

import (
	"time"
	"unicode"
)

var restrictedDigits = map[time.Weekday][2]int{
	time.Monday:    {1, 2},
	time.Tuesday:   {3, 4},
	time.Wednesday: {5, 6},
	time.Thursday:  {7, 8},
	time.Friday:    {9, 0},
}

var dayLabels = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
}

// lastDigit returns the last digit of the plate after stripping any
// non-alphanumeric characters. ok is false when the plate ends in a letter
// or holds no digit at all.
func lastDigit(plate string) (int, bool) {
	last := rune(-1)
	for _, r := range plate {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			last = r
		}
	}
	if last < '0' || last > '9' {
		return 0, false
	}
	return int(last - '0'), true
}

// Restricted reports whether the given plate may not circulate on the given
// date. Weekends are never restricted; plates ending in a non-digit are
// never restricted.
func Restricted(plate string, date time.Time) bool {
	digit, ok := lastDigit(plate)
	if !ok {
		return false
	}
	digits, ok := restrictedDigits[date.Weekday()]
	if !ok {
		return false
	}
	return digit == digits[0] || digit == digits[1]
}

// DayLabel returns the Portuguese weekday label on which the plate is
// restricted, independent of any date. Empty when the plate has no digit.
func DayLabel(plate string) string {
	digit, ok := lastDigit(plate)
	if !ok {
		return ""
	}
	for day, digits := range restrictedDigits {
		if digit == digits[0] || digit == digits[1] {
			return dayLabels[day]
		}
	}
	return ""
}
