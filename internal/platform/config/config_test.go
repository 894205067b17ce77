package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ADMIN_RECIPIENTS", " +910000000001, ,+910000000002 ")
	t.Setenv("KAFKA_BROKERS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "Asia/Kolkata", cfg.BusinessLocation.String())
	assert.Equal(t, []string{"+910000000001", "+910000000002"}, cfg.AdminRecipients)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, 10*time.Second, cfg.NotifierTimeout)
	assert.Equal(t, "0 0 * * *", cfg.SummaryCron)
	assert.Equal(t, "inbound-transaction", cfg.TemplateInbound)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("NOTIFIER_TIMEOUT", "3s")
	t.Setenv("WHATSAPP_API_BASE_URL", "https://gateway.example.com/v1/")
	t.Setenv("BUSINESS_TIME_ZONE", "UTC")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 3*time.Second, cfg.NotifierTimeout)
	assert.Equal(t, "https://gateway.example.com/v1", cfg.WhatsAppAPIBaseURL)
	assert.Equal(t, time.UTC, cfg.BusinessLocation)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad duration", "JWT_EXPIRY_DURATION", "forever"},
		{"unknown zone", "BUSINESS_TIME_ZONE", "Mars/Olympus"},
		{"short secret", "JWT_SECRET", "short"},
		{"non numeric port", "PORT", "http"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
