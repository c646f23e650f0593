// Package config bootstraps viper: defaults for local development, an
// optional config file, and environment overrides (EMISSION_ prefix,
// dots become underscores — e.g. EMISSION_DB_DSN, EMISSION_SECRET_KEY).
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/glen-sharp/emission-calculator-app/internal/ingest"
	"github.com/glen-sharp/emission-calculator-app/internal/pkg/constants"
)

func Init() error {
	viper.SetDefault(constants.ViperHTTPAddr, ":8000")
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")
	viper.SetDefault(constants.ViperLogLevel, "info")
	viper.SetDefault(constants.ViperSecretKey, "local-dev-secret")
	viper.SetDefault(constants.ViperDBDSN, "")

	viper.SetDefault(constants.ViperIngestOnStart, false)
	viper.SetDefault(constants.ViperEmissionFactorDir, "./import/emission_factors")
	viper.SetDefault(constants.ViperAirTravelDir, "./import/air_travel")
	viper.SetDefault(constants.ViperGoodsAndServicesDir, "./import/purchased_goods_and_services")
	viper.SetDefault(constants.ViperElectricityDir, "./import/electricity")
	viper.SetDefault(constants.ViperMilesToKMConversion, ingest.DefaultMilesToKM)
	viper.SetDefault(constants.ViperCanonicalDistanceUnit, ingest.DefaultCanonicalDistanceUnit)

	viper.SetEnvPrefix("emission")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}

	return nil
}

// IngestConfig assembles the orchestrator configuration from viper.
func IngestConfig() ingest.Config {
	return ingest.Config{
		EmissionFactorDir:     viper.GetString(constants.ViperEmissionFactorDir),
		AirTravelDir:          viper.GetString(constants.ViperAirTravelDir),
		GoodsAndServicesDir:   viper.GetString(constants.ViperGoodsAndServicesDir),
		ElectricityDir:        viper.GetString(constants.ViperElectricityDir),
		MilesToKM:             viper.GetFloat64(constants.ViperMilesToKMConversion),
		CanonicalDistanceUnit: viper.GetString(constants.ViperCanonicalDistanceUnit),
	}
}
