package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Gemini text generation.
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string `mapstructure:"GEMINI_MODEL"`
	AITimeoutSeconds int    `mapstructure:"AI_TIMEOUT_SECONDS"`

	// Default venue pricing, used when a request carries none.
	HourlyRate  float64 `mapstructure:"HOURLY_RATE"`
	AttendeeFee float64 `mapstructure:"ATTENDEE_FEE"`
	TaxRate     float64 `mapstructure:"TAX_RATE"`

	// Placeholder booking request substituted when extraction fails.
	PlaceholderEventType    string `mapstructure:"PLACEHOLDER_EVENT_TYPE"`
	PlaceholderContactName  string `mapstructure:"PLACEHOLDER_CONTACT_NAME"`
	PlaceholderContactEmail string `mapstructure:"PLACEHOLDER_CONTACT_EMAIL"`
	PlaceholderLeadDays     int    `mapstructure:"PLACEHOLDER_LEAD_DAYS"`
	PlaceholderStartTime    string `mapstructure:"PLACEHOLDER_START_TIME"`
	PlaceholderEndTime      string `mapstructure:"PLACEHOLDER_END_TIME"`
	PlaceholderAttendees    int    `mapstructure:"PLACEHOLDER_ATTENDEES"`
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
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("AI_TIMEOUT_SECONDS", 30)
	viper.SetDefault("HOURLY_RATE", 150.0)
	viper.SetDefault("ATTENDEE_FEE", 25.0)
	viper.SetDefault("TAX_RATE", 0.08)
	viper.SetDefault("PLACEHOLDER_EVENT_TYPE", "Event")
	viper.SetDefault("PLACEHOLDER_CONTACT_NAME", "Valued Client")
	viper.SetDefault("PLACEHOLDER_CONTACT_EMAIL", "client@example.com")
	viper.SetDefault("PLACEHOLDER_LEAD_DAYS", 7)
	viper.SetDefault("PLACEHOLDER_START_TIME", "9:00 AM")
	viper.SetDefault("PLACEHOLDER_END_TIME", "11:00 AM")
	viper.SetDefault("PLACEHOLDER_ATTENDEES", 10)

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

// ResolutionTimeout returns the bounded timeout applied to each text
// generation call, in seconds.
func ResolutionTimeout() int {
	if AppConfig.AITimeoutSeconds <= 0 {
		return 30
	}
	return AppConfig.AITimeoutSeconds
}
