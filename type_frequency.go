package compound

import (
	"fmt"
	"strconv"
	"strings"
)

// Frequency is a number of occurrences per year.
type Frequency int

const (
	Annually Frequency = 1
	Monthly  Frequency = 12
)

// Valid reports whether f is one of the supported frequencies.
func (f Frequency) Valid() bool {
	return f == Annually || f == Monthly
}

func (f Frequency) String() string {
	switch f {
	case Annually:
		return "annually"
	case Monthly:
		return "monthly"
	default:
		return fmt.Sprintf("%d times a year", int(f))
	}
}

// ParseFrequency parses a frequency given either as a count per year ("1",
// "12") or by name ("annually", "monthly"). It does not check that the count
// is supported, see Valid.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "annually", "yearly":
		return Annually, nil
	case "monthly":
		return Monthly, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return Frequency(n), nil
}
