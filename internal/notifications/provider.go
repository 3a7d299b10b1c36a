package notifications

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingPushURL   = errors.New("EXPO_PUSH_URL environment variable is required for expo provider")
	ErrUnknownProvider  = errors.New("unknown push provider type")
	ErrNoDeviceTokens   = errors.New("no device tokens registered for user")
	ErrProviderDisabled = errors.New("push provider is not configured")
)

// Notification is the payload handed to the provider.
type Notification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
	Type  string            `json:"type,omitempty"`
}

// PushProvider is the interface every push delivery backend implements. It
// abstracts the differences between Expo and any future provider.
type PushProvider interface {
	// Name returns the provider name for logging purposes.
	Name() string

	// Push delivers the notification to the given device tokens.
	Push(ctx context.Context, deviceTokens []string, n Notification) error
}

// providerRegistry holds registered provider constructors, so new providers
// can be added without modifying this file.
var providerRegistry = make(map[ProviderType]func(Config) (PushProvider, error))

// RegisterProvider registers a provider constructor for a given provider
// type. This should be called from init() in each provider file.
func RegisterProvider(providerType ProviderType, constructor func(Config) (PushProvider, error)) {
	providerRegistry[providerType] = constructor
}

// NewProvider creates a PushProvider based on the configuration.
func NewProvider(cfg Config) (PushProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constructor, ok := providerRegistry[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}

	return constructor(cfg)
}
