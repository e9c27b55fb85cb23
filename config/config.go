package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisFunnelDB   int    `mapstructure:"REDIS_FUNNEL_DB"`
	RedisRatesDB    int    `mapstructure:"REDIS_RATES_DB"`
	RedisFollowupDB int    `mapstructure:"REDIS_FOLLOWUP_DB"`

	// Funnel behaviour.
	FunnelSessionTTLMinutes int    `mapstructure:"FUNNEL_SESSION_TTL_MINUTES"`
	RatesCacheTTLMinutes    int    `mapstructure:"RATES_CACHE_TTL_MINUTES"`
	BusinessTimezone        string `mapstructure:"BUSINESS_TIMEZONE"`

	// Upstream booking backend.
	BookingAPIBaseURL string `mapstructure:"BOOKING_API_BASE_URL"`
	BookingCompany    string `mapstructure:"BOOKING_COMPANY"`
	BookingAPIKey     string `mapstructure:"BOOKING_API_KEY"`

	// Payment and lookup providers.
	StripeKey        string `mapstructure:"STRIPE_KEY"`
	CheckoutReturnTo string `mapstructure:"CHECKOUT_RETURN_URL"`
	GoogleAPIKey     string `mapstructure:"GOOGLE_API_KEY"`
	WeatherAPIKey    string `mapstructure:"WEATHER_API_KEY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_FUNNEL_DB", 0)
	viper.SetDefault("REDIS_RATES_DB", 1)
	viper.SetDefault("REDIS_FOLLOWUP_DB", 2)
	viper.SetDefault("FUNNEL_SESSION_TTL_MINUTES", 60)
	viper.SetDefault("RATES_CACHE_TTL_MINUTES", 10)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Toronto")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("BOOKING_API_BASE_URL", "")
	viper.SetDefault("BOOKING_COMPANY", "")
	viper.SetDefault("BOOKING_API_KEY", "")
	viper.SetDefault("CHECKOUT_RETURN_URL", "")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("WEATHER_API_KEY", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
