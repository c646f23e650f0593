package ingest

import (
	"strings"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
)

// FactorQuery identifies the emission factor for one activity row.
// Activity and Unit always match exactly. The identifier matches either
// exactly, or — when IdentifierParts is set — by containment: a factor
// whose lookup_identifier contains every part is a candidate. Air travel
// uses the containment form so one factor row can cover a class of
// bookings whose compound identifiers embed its flight range and
// passenger class.
type FactorQuery struct {
	Activity        string
	Unit            string
	Identifier      string
	IdentifierParts []string
}

// FactorIndex is the in-run lookup table over ingested emission factors.
// It is built once after factor ingestion completes and is read-only for
// the rest of the run.
type FactorIndex struct {
	factors []*domain.EmissionFactor
	byKey   map[string]*domain.EmissionFactor
}

func NewFactorIndex(factors []*domain.EmissionFactor) *FactorIndex {
	ix := &FactorIndex{
		factors: factors,
		byKey:   make(map[string]*domain.EmissionFactor, len(factors)),
	}
	for _, f := range factors {
		ix.byKey[f.Key()] = f
	}
	return ix
}

// Lookup resolves the query to exactly one factor. An exact key match
// wins outright. Otherwise containment candidates are collected; anything
// but exactly one candidate is treated as not found, so an ambiguous
// containment match can never silently pick the wrong factor.
func (ix *FactorIndex) Lookup(q FactorQuery) (*domain.EmissionFactor, bool) {
	key := q.Activity + "|" + q.Identifier + "|" + q.Unit
	if f, ok := ix.byKey[key]; ok {
		return f, true
	}

	if len(q.IdentifierParts) == 0 {
		return nil, false
	}

	var candidates []*domain.EmissionFactor
	for _, f := range ix.factors {
		if f.Activity != q.Activity || f.Unit != q.Unit {
			continue
		}
		if containsAll(f.LookupIdentifier, q.IdentifierParts) {
			candidates = append(candidates, f)
		}
	}

	if len(candidates) != 1 {
		return nil, false
	}
	return candidates[0], true
}

func containsAll(identifier string, parts []string) bool {
	for _, part := range parts {
		if !strings.Contains(identifier, part) {
			return false
		}
	}
	return true
}
