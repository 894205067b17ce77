package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string `validate:"required,numeric"`
	IsProduction   bool
	MigrationsPath string `validate:"required"`

	JWTSecret         string        `validate:"required,min=16"`
	JWTExpiryDuration time.Duration `validate:"gt=0"`
	JWTIssuer         string        `validate:"required"`

	// Single administrator behind the admin gate
	AdminUsername     string `validate:"required"`
	AdminPasswordHash string

	// Messaging gateway (WhatsApp Cloud API)
	WhatsAppAPIBaseURL    string `validate:"required,url"`
	WhatsAppAPIToken      string
	WhatsAppPhoneNumberID string
	WhatsAppLanguageCode  string        `validate:"required"`
	NotifierTimeout       time.Duration `validate:"gt=0"`

	TemplateInbound      string   `validate:"required"`
	TemplateOutbound     string   `validate:"required"`
	TemplateAdminSummary string   `validate:"required"`
	AdminSummaryLabel    string   `validate:"required"`
	AdminRecipients      []string `validate:"dive,required"`

	BusinessTimeZone string `validate:"required"`
	BusinessLocation *time.Location
	SummaryCron      string `validate:"required"`

	KafkaBrokers []string
	KafkaTopic   string `validate:"required"`

	RedisURL           string
	RateLimit          string `validate:"required"`
	LoginRateLimit     string `validate:"required"`
	CORSAllowedOrigins []string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "cashbook-backend")
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("WHATSAPP_API_BASE_URL", "https://graph.facebook.com/v22.0")
	v.SetDefault("WHATSAPP_API_TOKEN", "")
	v.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	v.SetDefault("WHATSAPP_LANGUAGE_CODE", "en")
	v.SetDefault("NOTIFIER_TIMEOUT", "10s")
	v.SetDefault("TEMPLATE_INBOUND", "inbound-transaction")
	v.SetDefault("TEMPLATE_OUTBOUND", "outbound-transaction")
	v.SetDefault("TEMPLATE_ADMIN_SUMMARY", "daily-admin-summary")
	v.SetDefault("ADMIN_SUMMARY_LABEL", "Admin")
	v.SetDefault("ADMIN_RECIPIENTS", "")
	v.SetDefault("BUSINESS_TIME_ZONE", "Asia/Kolkata")
	v.SetDefault("SUMMARY_CRON", "0 0 * * *")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "ledger_entry.recorded")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		MigrationsPath:        v.GetString("MIGRATIONS_PATH"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		AdminUsername:         v.GetString("ADMIN_USERNAME"),
		AdminPasswordHash:     v.GetString("ADMIN_PASSWORD_HASH"),
		WhatsAppAPIBaseURL:    strings.TrimRight(v.GetString("WHATSAPP_API_BASE_URL"), "/"),
		WhatsAppAPIToken:      v.GetString("WHATSAPP_API_TOKEN"),
		WhatsAppPhoneNumberID: v.GetString("WHATSAPP_PHONE_NUMBER_ID"),
		WhatsAppLanguageCode:  v.GetString("WHATSAPP_LANGUAGE_CODE"),
		TemplateInbound:       v.GetString("TEMPLATE_INBOUND"),
		TemplateOutbound:      v.GetString("TEMPLATE_OUTBOUND"),
		TemplateAdminSummary:  v.GetString("TEMPLATE_ADMIN_SUMMARY"),
		AdminSummaryLabel:     v.GetString("ADMIN_SUMMARY_LABEL"),
		AdminRecipients:       splitList(v.GetString("ADMIN_RECIPIENTS")),
		BusinessTimeZone:      v.GetString("BUSINESS_TIME_ZONE"),
		SummaryCron:           v.GetString("SUMMARY_CRON"),
		KafkaBrokers:          splitList(v.GetString("KAFKA_BROKERS")),
		KafkaTopic:            v.GetString("KAFKA_TOPIC"),
		RedisURL:              v.GetString("REDIS_URL"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		LoginRateLimit:        v.GetString("LOGIN_RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PosthogAPIKey:         v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:       v.GetString("POSTHOG_ENDPOINT"),
	}

	var err error
	if cfg.JWTExpiryDuration, err = parseDuration(v, "JWT_EXPIRY_DURATION", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.NotifierTimeout, err = parseDuration(v, "NOTIFIER_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}

	cfg.BusinessLocation, err = time.LoadLocation(cfg.BusinessTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIME_ZONE %q: %w", cfg.BusinessTimeZone, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	warnMissing(cfg)
	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := v.GetString(key)
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func warnMissing(cfg *Config) {
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL not set. Entries will be kept in memory only.")
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin login is disabled.")
	}
	if cfg.WhatsAppAPIToken == "" || cfg.WhatsAppPhoneNumberID == "" {
		log.Println("Warning: WHATSAPP_API_TOKEN or WHATSAPP_PHONE_NUMBER_ID not set. Notifications will not be sent.")
	}
	if len(cfg.AdminRecipients) == 0 {
		log.Println("Warning: ADMIN_RECIPIENTS not set. Daily summaries have no recipients.")
	}
	if cfg.IsProduction && cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET is the insecure default. Set it in production.")
	}
}
