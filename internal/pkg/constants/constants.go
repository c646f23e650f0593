package constants

// viper keys
const (
	ViperHTTPAddr   = "http.addr"
	ViperCORSOrigin = "cors.origin"
	ViperLogLevel   = "log.level"
	ViperSecretKey  = "secret_key"
	ViperDBDSN      = "db.dsn"

	ViperIngestOnStart         = "ingest.on_start"
	ViperEmissionFactorDir     = "ingest.emission_factors_dir"
	ViperAirTravelDir          = "ingest.air_travel_dir"
	ViperGoodsAndServicesDir   = "ingest.purchased_goods_and_services_dir"
	ViperElectricityDir        = "ingest.electricity_dir"
	ViperMilesToKMConversion   = "ingest.miles_to_km_conversion"
	ViperCanonicalDistanceUnit = "ingest.canonical_distance_unit"
)

const (
	CookieKeyAuthToken = "jwt"

	CtxKeyUserID = "user_id"
)
