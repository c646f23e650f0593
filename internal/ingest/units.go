package ingest

import "strings"

const (
	// DefaultMilesToKM is the miles→kilometres conversion factor applied
	// when no override is configured.
	DefaultMilesToKM = 1.60934

	// DefaultCanonicalDistanceUnit is the unit every distance is stored in.
	DefaultCanonicalDistanceUnit = "kilometres"
)

// Normalizer converts heterogeneous distance units to the canonical unit.
type Normalizer struct {
	milesToKM     float64
	canonicalUnit string
}

func NewNormalizer(milesToKM float64, canonicalUnit string) Normalizer {
	if milesToKM == 0 {
		milesToKM = DefaultMilesToKM
	}
	if canonicalUnit == "" {
		canonicalUnit = DefaultCanonicalDistanceUnit
	}
	return Normalizer{milesToKM: milesToKM, canonicalUnit: canonicalUnit}
}

// Distance converts quantity from unit to the canonical unit. Unit
// matching is case-insensitive and both "kilometres" and "kilometers"
// spellings pass through unchanged. An unknown unit yields an
// UnrecognizedUnitError, which callers treat as a row-level failure.
func (n Normalizer) Distance(quantity float64, unit string) (float64, string, error) {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "miles":
		return quantity * n.milesToKM, n.canonicalUnit, nil
	case "kilometres", "kilometers":
		return quantity, n.canonicalUnit, nil
	default:
		return 0, "", &UnrecognizedUnitError{Unit: unit}
	}
}

// CanonicalUnit returns the unit distances are normalized to.
func (n Normalizer) CanonicalUnit() string {
	return n.canonicalUnit
}
