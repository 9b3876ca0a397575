package booking

import (
	"strings"

	"github.com/goliatone/go-bookform/pkg/validation"
)

// DefaultDestinations is the destination catalog used when none is
// configured.
func DefaultDestinations() []string {
	return []string{"Barcelona", "Madrid", "Valencia", "Sevilla", "Bilbao", "Mallorca"}
}

// DefaultRates maps travel classes to their per-passenger base rate.
func DefaultRates() map[string]float64 {
	return map[string]float64{
		"Tourist":  100,
		"Business": 250,
		"First":    500,
	}
}

// FilterDestinations returns the entries of catalog containing search,
// case-insensitively, in catalog order. An empty search returns a copy of
// the full catalog; no match returns an empty, non-nil slice.
func FilterDestinations(catalog []string, search string) []string {
	if search == "" {
		return append([]string{}, catalog...)
	}
	needle := strings.ToLower(search)
	out := make([]string, 0, len(catalog))
	for _, destination := range catalog {
		if strings.Contains(strings.ToLower(destination), needle) {
			out = append(out, destination)
		}
	}
	return out
}

// Price is rates[travelClass] times the leading integer of passengers.
// Unknown classes and non-numeric counts price at zero.
func Price(rates map[string]float64, travelClass, passengers any) float64 {
	class, _ := travelClass.(string)
	rate, ok := rates[class]
	if !ok {
		return 0
	}
	return rate * float64(validation.IntegerOrZero(passengers))
}
