package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (per-session chat transcripts).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisChatDB   int    `mapstructure:"REDIS_CHAT_DB"`

	// Inference endpoint (Hugging Face TGI-style).
	HFEndpointURL string `mapstructure:"HF_ENDPOINT_URL"`
	HFToken       string `mapstructure:"HF_TOKEN"`
	SystemPrompt  string `mapstructure:"SYSTEM_PROMPT"`

	// Cal.com scheduling.
	CalAPIKey        string `mapstructure:"CAL_API_KEY"`
	CalEventTypeID   string `mapstructure:"CAL_EVENT_TYPE_ID"`
	CalUsername      string `mapstructure:"CAL_USERNAME"`
	CalEventTypeSlug string `mapstructure:"CAL_EVENT_TYPE_SLUG"`
	CalTimezone      string `mapstructure:"CAL_TIMEZONE"`

	// Mercado Pago. Empty token is allowed; payment link creation then
	// reports a configuration error at the point of use.
	MPAccessToken string `mapstructure:"MP_ACCESS_TOKEN"`

	// This service's own public base URL, used for payment callbacks.
	PublicBaseURL string `mapstructure:"PUBLIC_BASE_URL"`
}

// DefaultSystemPrompt is the instruction prepended to every chat message.
const DefaultSystemPrompt = "Eres un asistente para reservas y pagos. " +
	"Si el usuario pide horarios, consultá la disponibilidad; " +
	"si confirma, reservá; si quiere pagar, generá un link. " +
	"Pedí confirmación antes de ejecutar acciones."

var AppConfig Config

// EventType is the addressing mode resolved from configuration, and
// Location the scheduling time zone. Both are set once by LoadConfig.
var (
	EventType EventTypeRef
	Location  *time.Location
)

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHAT_DB", 0)
	viper.SetDefault("SYSTEM_PROMPT", DefaultSystemPrompt)
	viper.SetDefault("CAL_TIMEZONE", "America/Argentina/Buenos_Aires")
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:8000")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ref, err := ResolveEventTypeRef(AppConfig.CalEventTypeID, AppConfig.CalUsername, AppConfig.CalEventTypeSlug)
	if err != nil {
		log.Fatalf("Failed to resolve event type addressing: %v", err)
	}
	EventType = ref

	loc, err := time.LoadLocation(AppConfig.CalTimezone)
	if err != nil {
		log.Fatalf("Invalid CAL_TIMEZONE %q: %v", AppConfig.CalTimezone, err)
	}
	Location = loc
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
