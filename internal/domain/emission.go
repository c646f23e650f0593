package domain

import "time"

// EmissionFactor is one row of the factor lookup table. The triple
// (activity, lookup_identifier, unit) is the primary lookup key and is
// unique within the table. CO2e here is the multiplier applied to an
// activity quantity, not an emitted amount.
type EmissionFactor struct {
	ID               int64   `db:"id" json:"-"`
	Activity         string  `db:"activity" json:"activity"`
	LookupIdentifier string  `db:"lookup_identifier" json:"lookup_identifier"`
	Unit             string  `db:"unit" json:"unit"`
	CO2e             float64 `db:"co2e" json:"co2e"`
	Scope            int64   `db:"scope" json:"scope"`
	Category         *int64  `db:"category" json:"category"`
}

// Key returns the unique lookup key of the factor.
func (f *EmissionFactor) Key() string {
	return f.Activity + "|" + f.LookupIdentifier + "|" + f.Unit
}

// AirTravel is a persisted air-travel activity record. Distance is always
// stored in the canonical unit; BookingType is the derived
// "<flight range>, <passenger class>" identifier the factor was resolved with.
type AirTravel struct {
	ID                int64     `db:"id" json:"-"`
	Date              time.Time `db:"date" json:"date"`
	Activity          string    `db:"activity" json:"activity"`
	DistanceTravelled float64   `db:"distance_travelled" json:"distance_travelled"`
	DistanceUnit      string    `db:"distance_unit" json:"distance_unit"`
	FlightRange       string    `db:"flight_range" json:"flight_range"`
	PassengerClass    string    `db:"passenger_class" json:"passenger_class"`
	BookingType       string    `db:"booking_type" json:"booking_type"`
	CO2e              float64   `db:"co2e" json:"co2e"`
	Scope             int64     `db:"scope" json:"scope"`
	Category          *int64    `db:"category" json:"category"`
}

type PurchasedGoodsAndServices struct {
	ID               int64     `db:"id" json:"-"`
	Date             time.Time `db:"date" json:"date"`
	Activity         string    `db:"activity" json:"activity"`
	SupplierCategory string    `db:"supplier_category" json:"supplier_category"`
	Spend            float64   `db:"spend" json:"spend"`
	SpendUnit        string    `db:"spend_unit" json:"spend_unit"`
	CO2e             float64   `db:"co2e" json:"co2e"`
	Scope            int64     `db:"scope" json:"scope"`
	Category         *int64    `db:"category" json:"category"`
}

type Electricity struct {
	ID               int64     `db:"id" json:"-"`
	Activity         string    `db:"activity" json:"activity"`
	Date             time.Time `db:"date" json:"date"`
	Country          string    `db:"country" json:"country"`
	ElectricityUsage float64   `db:"electricity_usage" json:"electricity_usage"`
	Unit             string    `db:"unit" json:"unit"`
	CO2e             float64   `db:"co2e" json:"co2e"`
	Scope            int64     `db:"scope" json:"scope"`
	Category         *int64    `db:"category" json:"category"`
}

// EmissionRecord is the read-side projection shared by all activity kinds.
type EmissionRecord struct {
	CO2e     float64 `db:"co2e" json:"co2e"`
	Scope    int64   `db:"scope" json:"scope"`
	Category *int64  `db:"category" json:"category"`
	Activity string  `db:"activity" json:"activity"`
}

// EmissionsSummary is the payload of the read endpoint. EmissionsArray is
// ordered by descending co2e.
type EmissionsSummary struct {
	EmissionsArray                     []EmissionRecord `json:"emissions_array"`
	TotalAirTravelCO2e                 float64          `json:"total_air_travel_co2e"`
	TotalPurchasedGoodsAndServicesCO2e float64          `json:"total_purchased_goods_and_services_co2e"`
	TotalElectricityCO2e               float64          `json:"total_electricity_co2e"`
	TotalCO2e                          float64          `json:"total_co2e"`
}

type EmissionsResponse struct {
	Emissions EmissionsSummary `json:"emissions"`
}
