package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultAmountMultiplier converts one crore of rupees to US dollars
const DefaultAmountMultiplier = 120000

// Converter turns the CR column into an amount in the target currency
type Converter struct {
	Multiplier float64
}

// NewConverter validates the multiplier
func NewConverter(multiplier float64) (Converter, error) {
	if multiplier <= 0 || math.IsNaN(multiplier) || math.IsInf(multiplier, 0) {
		return Converter{}, fmt.Errorf("amount multiplier must be a positive number, got %v", multiplier)
	}
	return Converter{Multiplier: multiplier}, nil
}

// Convert returns the converted amount. A blank value is 0 and valid; an
// unparseable, negative or non-finite value is 0 and reported as invalid.
func (c Converter) Convert(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v * c.Multiplier, true
}
