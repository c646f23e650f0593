package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/glen-sharp/emission-calculator-app/internal/domain"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/store/xpgx"
)

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

var (
	emissionFactorColumns = []string{"id", "activity", "lookup_identifier", "unit", "co2e", "scope", "category"}
	airTravelColumns      = []string{"id", "date", "activity", "distance_travelled", "distance_unit", "flight_range", "passenger_class", "booking_type", "co2e", "scope", "category"}
	goodsColumns          = []string{"id", "date", "activity", "supplier_category", "spend", "spend_unit", "co2e", "scope", "category"}
	electricityColumns    = []string{"id", "activity", "date", "country", "electricity_usage", "unit", "co2e", "scope", "category"}
)

func (s *pgStore) InsertEmissionFactor(ctx context.Context, factor *domain.EmissionFactor) error {
	query := builder().Insert(tableEmissionFactors).
		Columns(emissionFactorColumns[1:]...).
		Values(factor.Activity, factor.LookupIdentifier, factor.Unit, factor.CO2e, factor.Scope, factor.Category).
		Suffix("RETURNING id")

	inserted, err := xpgx.Getx[domain.EmissionFactor](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	factor.ID = inserted.ID
	return nil
}

func (s *pgStore) ListEmissionFactors(ctx context.Context) ([]*domain.EmissionFactor, error) {
	query := builder().Select(emissionFactorColumns...).
		From(tableEmissionFactors).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.EmissionFactor](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *pgStore) InsertAirTravel(ctx context.Context, record *domain.AirTravel) error {
	query := builder().Insert(tableAirTravel).
		Columns(airTravelColumns[1:]...).
		Values(record.Date, record.Activity, record.DistanceTravelled, record.DistanceUnit,
			record.FlightRange, record.PassengerClass, record.BookingType,
			record.CO2e, record.Scope, record.Category).
		Suffix("RETURNING id")

	inserted, err := xpgx.Getx[domain.AirTravel](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	record.ID = inserted.ID
	return nil
}

func (s *pgStore) ListAirTravel(ctx context.Context) ([]*domain.AirTravel, error) {
	query := builder().Select(airTravelColumns...).
		From(tableAirTravel).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.AirTravel](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *pgStore) InsertPurchasedGoodsAndServices(ctx context.Context, record *domain.PurchasedGoodsAndServices) error {
	query := builder().Insert(tablePurchasedGoodsAndServices).
		Columns(goodsColumns[1:]...).
		Values(record.Date, record.Activity, record.SupplierCategory, record.Spend,
			record.SpendUnit, record.CO2e, record.Scope, record.Category).
		Suffix("RETURNING id")

	inserted, err := xpgx.Getx[domain.PurchasedGoodsAndServices](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	record.ID = inserted.ID
	return nil
}

func (s *pgStore) ListPurchasedGoodsAndServices(ctx context.Context) ([]*domain.PurchasedGoodsAndServices, error) {
	query := builder().Select(goodsColumns...).
		From(tablePurchasedGoodsAndServices).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.PurchasedGoodsAndServices](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *pgStore) InsertElectricity(ctx context.Context, record *domain.Electricity) error {
	query := builder().Insert(tableElectricity).
		Columns(electricityColumns[1:]...).
		Values(record.Activity, record.Date, record.Country, record.ElectricityUsage,
			record.Unit, record.CO2e, record.Scope, record.Category).
		Suffix("RETURNING id")

	inserted, err := xpgx.Getx[domain.Electricity](ctx, s.pool, query)
	if err != nil {
		return wrapErr(err)
	}

	record.ID = inserted.ID
	return nil
}

func (s *pgStore) ListElectricity(ctx context.Context) ([]*domain.Electricity, error) {
	query := builder().Select(electricityColumns...).
		From(tableElectricity).
		OrderBy("id")

	selected, err := xpgx.Selectx[domain.Electricity](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
