package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store"
)

// Exact header names per activity kind. Matching is case-sensitive:
// a renamed header is a file-level validation failure, not a silent miss.
var (
	emissionFactorColumns = []string{"Activity", "Lookup identifiers", "Unit", "CO2e", "Scope", "Category"}
	airTravelColumns      = []string{"Date", "Activity", "Distance travelled", "Distance units", "Flight range", "Passenger class"}
	goodsColumns          = []string{"Date", "Activity", "Supplier category", "Spend", "Spend units"}
	electricityColumns    = []string{"Activity", "Date", "Country", "Electricity Usage", "Units"}
)

type factorIngester struct {
	store store.Store
	seen  map[string]struct{}
}

// newFactorIngester seeds its duplicate guard with the factors already in
// the store, so the (activity, lookup_identifier, unit) key stays unique
// across runs as well as within one.
func newFactorIngester(s store.Store, existing []*domain.EmissionFactor) *factorIngester {
	seen := make(map[string]struct{}, len(existing))
	for _, factor := range existing {
		seen[factor.Key()] = struct{}{}
	}
	return &factorIngester{store: s, seen: seen}
}

func (ing *factorIngester) Kind() Kind        { return KindEmissionFactor }
func (ing *factorIngester) Columns() []string { return emissionFactorColumns }

func (ing *factorIngester) IngestRow(ctx context.Context, row Row) error {
	activity, err := row.Text("Activity")
	if err != nil {
		return err
	}
	identifier, err := row.Text("Lookup identifiers")
	if err != nil {
		return err
	}
	unit, err := row.Text("Unit")
	if err != nil {
		return err
	}
	co2e, err := row.Float("CO2e")
	if err != nil {
		return err
	}
	scope, err := row.Int("Scope")
	if err != nil {
		return err
	}
	category, err := row.OptionalInt("Category")
	if err != nil {
		return err
	}

	factor := &domain.EmissionFactor{
		Activity:         activity,
		LookupIdentifier: identifier,
		Unit:             unit,
		CO2e:             co2e,
		Scope:            scope,
		Category:         category,
	}

	// (activity, lookup_identifier, unit) is unique; a duplicate row is
	// skipped rather than overwriting the factor already ingested.
	if _, dup := ing.seen[factor.Key()]; dup {
		return &RowError{Kind: RowErrDuplicateFactor, File: row.File, Line: row.Line, Value: factor.Key()}
	}

	if err := ing.store.InsertEmissionFactor(ctx, factor); err != nil {
		return fmt.Errorf("store.InsertEmissionFactor: %w", err)
	}
	ing.seen[factor.Key()] = struct{}{}
	return nil
}

type airTravelIngester struct {
	store store.Store
	norm  Normalizer
	index *FactorIndex
}

func (ing *airTravelIngester) Kind() Kind        { return KindAirTravel }
func (ing *airTravelIngester) Columns() []string { return airTravelColumns }

func (ing *airTravelIngester) IngestRow(ctx context.Context, row Row) error {
	date, err := row.Date("Date")
	if err != nil {
		return err
	}
	activity, err := row.Text("Activity")
	if err != nil {
		return err
	}
	distance, err := row.Float("Distance travelled")
	if err != nil {
		return err
	}
	unit, err := row.Text("Distance units")
	if err != nil {
		return err
	}
	flightRange, err := row.Text("Flight range")
	if err != nil {
		return err
	}
	passengerClass, err := row.Text("Passenger class")
	if err != nil {
		return err
	}

	distanceKM, canonicalUnit, err := ing.norm.Distance(distance, unit)
	if err != nil {
		var unitErr *UnrecognizedUnitError
		if errors.As(err, &unitErr) {
			return &RowError{Kind: RowErrUnrecognizedUnit, File: row.File, Line: row.Line, Value: unitErr.Unit}
		}
		return err
	}

	bookingType := flightRange + ", " + passengerClass

	factor, ok := ing.index.Lookup(FactorQuery{
		Activity:        activity,
		Unit:            canonicalUnit,
		Identifier:      bookingType,
		IdentifierParts: []string{flightRange, passengerClass},
	})
	if !ok {
		return &RowError{Kind: RowErrFactorNotFound, File: row.File, Line: row.Line, Value: bookingType}
	}

	record := &domain.AirTravel{
		Date:              date,
		Activity:          activity,
		DistanceTravelled: distanceKM,
		DistanceUnit:      canonicalUnit,
		FlightRange:       flightRange,
		PassengerClass:    passengerClass,
		BookingType:       bookingType,
		CO2e:              factor.CO2e * distanceKM,
		Scope:             factor.Scope,
		Category:          factor.Category,
	}

	if err := ing.store.InsertAirTravel(ctx, record); err != nil {
		return fmt.Errorf("store.InsertAirTravel: %w", err)
	}
	return nil
}

type goodsIngester struct {
	store store.Store
	index *FactorIndex
}

func (ing *goodsIngester) Kind() Kind        { return KindPurchasedGoodsAndServices }
func (ing *goodsIngester) Columns() []string { return goodsColumns }

func (ing *goodsIngester) IngestRow(ctx context.Context, row Row) error {
	date, err := row.Date("Date")
	if err != nil {
		return err
	}
	activity, err := row.Text("Activity")
	if err != nil {
		return err
	}
	supplierCategory, err := row.Text("Supplier category")
	if err != nil {
		return err
	}
	spend, err := row.Float("Spend")
	if err != nil {
		return err
	}
	spendUnit, err := row.Text("Spend units")
	if err != nil {
		return err
	}

	factor, ok := ing.index.Lookup(FactorQuery{
		Activity:   activity,
		Unit:       spendUnit,
		Identifier: supplierCategory,
	})
	if !ok {
		return &RowError{Kind: RowErrFactorNotFound, File: row.File, Line: row.Line, Value: supplierCategory}
	}

	record := &domain.PurchasedGoodsAndServices{
		Date:             date,
		Activity:         activity,
		SupplierCategory: supplierCategory,
		Spend:            spend,
		SpendUnit:        spendUnit,
		CO2e:             factor.CO2e * spend,
		Scope:            factor.Scope,
		Category:         factor.Category,
	}

	if err := ing.store.InsertPurchasedGoodsAndServices(ctx, record); err != nil {
		return fmt.Errorf("store.InsertPurchasedGoodsAndServices: %w", err)
	}
	return nil
}

type electricityIngester struct {
	store store.Store
	index *FactorIndex
}

func (ing *electricityIngester) Kind() Kind        { return KindElectricity }
func (ing *electricityIngester) Columns() []string { return electricityColumns }

func (ing *electricityIngester) IngestRow(ctx context.Context, row Row) error {
	activity, err := row.Text("Activity")
	if err != nil {
		return err
	}
	date, err := row.Date("Date")
	if err != nil {
		return err
	}
	country, err := row.Text("Country")
	if err != nil {
		return err
	}
	usage, err := row.Float("Electricity Usage")
	if err != nil {
		return err
	}
	unit, err := row.Text("Units")
	if err != nil {
		return err
	}

	factor, ok := ing.index.Lookup(FactorQuery{
		Activity:   activity,
		Unit:       unit,
		Identifier: country,
	})
	if !ok {
		return &RowError{Kind: RowErrFactorNotFound, File: row.File, Line: row.Line, Value: country}
	}

	record := &domain.Electricity{
		Activity:         activity,
		Date:             date,
		Country:          country,
		ElectricityUsage: usage,
		Unit:             unit,
		CO2e:             factor.CO2e * usage,
		Scope:            factor.Scope,
		Category:         factor.Category,
	}

	if err := ing.store.InsertElectricity(ctx, record); err != nil {
		return fmt.Errorf("store.InsertElectricity: %w", err)
	}
	return nil
}
