package notifications

import (
	"os"
	"strings"
)

// ProviderType identifies which push provider to use.
type ProviderType string

const (
	ProviderExpo ProviderType = "expo"
)

// DefaultExpoPushURL is Expo's push API endpoint.
const DefaultExpoPushURL = "https://exp.host/--/api/v2/push/send"

// Config holds configuration for the push provider.
type Config struct {
	// Provider type: currently only "expo"
	Provider ProviderType

	// Expo-specific config
	ExpoPushURL     string
	ExpoAccessToken string
}

// LoadFromEnv loads push configuration from environment variables.
//
// Environment variables:
//   - PUSH_PROVIDER: "expo" (default: "expo")
//   - EXPO_PUSH_URL: push endpoint (default: Expo's hosted API)
//   - EXPO_ACCESS_TOKEN: optional bearer token for the Expo API
func LoadFromEnv() Config {
	// Unrecognized values pass through so NewProvider can reject them.
	provider := ProviderType(strings.ToLower(strings.TrimSpace(os.Getenv("PUSH_PROVIDER"))))
	if provider == "" {
		provider = ProviderExpo
	}

	pushURL := strings.TrimSpace(os.Getenv("EXPO_PUSH_URL"))
	if pushURL == "" {
		pushURL = DefaultExpoPushURL
	}

	return Config{
		Provider:        provider,
		ExpoPushURL:     pushURL,
		ExpoAccessToken: os.Getenv("EXPO_ACCESS_TOKEN"),
	}
}

// Validate checks that the configuration is valid for the selected provider.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderExpo:
		if c.ExpoPushURL == "" {
			return ErrMissingPushURL
		}
	}
	return nil
}
