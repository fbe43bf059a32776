package util

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment          string        `mapstructure:"ENVIRONMENT"`
	AllowedOrigins       []string      `mapstructure:"ALLOWED_ORIGINS"`
	DBSource             string        `mapstructure:"DB_SOURCE"`
	MigrationURL         string        `mapstructure:"MIGRATION_URL"`
	RedisAddress         string        `mapstructure:"REDIS_ADDRESS"`
	RedisPassword        string        `mapstructure:"REDIS_PASSWORD"`
	HTTPServerAddress    string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	TokenSymmetricKey    string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	AccessTokenDuration  time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	RefreshTokenDuration time.Duration `mapstructure:"REFRESH_TOKEN_DURATION"`

	// Collection eligibility thresholds
	CollectionFillThreshold int32         `mapstructure:"COLLECTION_FILL_THRESHOLD"` // fill level (%) that marks a bin ready
	OrganicStaleAfter       time.Duration `mapstructure:"ORGANIC_STALE_AFTER"`       // organic bins uncollected longer than this are eligible regardless of fill

	// Route generation
	RouteChunkSize    int     `mapstructure:"ROUTE_CHUNK_SIZE"`    // max stops per generated route
	RouteMaxPerRun    int     `mapstructure:"ROUTE_MAX_PER_RUN"`   // default route cap per generation run
	DepotLatitude     float64 `mapstructure:"DEPOT_LATITUDE"`      // route start anchor
	DepotLongitude    float64 `mapstructure:"DEPOT_LONGITUDE"`
	RouteGenSchedule  string  `mapstructure:"ROUTE_GEN_SCHEDULE"`  // cron spec for the nightly generation run
	RouteGenAutomatic bool    `mapstructure:"ROUTE_GEN_AUTOMATIC"` // enable the scheduler

	// Billing
	BillDueAfter time.Duration `mapstructure:"BILL_DUE_AFTER"` // time until an unpaid bill becomes overdue
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	applyDefaults(&config)
	return
}

// applyDefaults fills the domain tunables that are usually absent from app.env.
func applyDefaults(config *Config) {
	if config.CollectionFillThreshold == 0 {
		config.CollectionFillThreshold = 90
	}
	if config.OrganicStaleAfter == 0 {
		config.OrganicStaleAfter = 48 * time.Hour
	}
	if config.RouteChunkSize == 0 {
		config.RouteChunkSize = 15
	}
	if config.RouteMaxPerRun == 0 {
		config.RouteMaxPerRun = 10
	}
	if config.RouteGenSchedule == "" {
		config.RouteGenSchedule = "0 4 * * *"
	}
	if config.BillDueAfter == 0 {
		config.BillDueAfter = 15 * 24 * time.Hour
	}
}
