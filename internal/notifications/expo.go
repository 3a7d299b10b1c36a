package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func init() {
	RegisterProvider(ProviderExpo, func(cfg Config) (PushProvider, error) {
		return &ExpoProvider{
			pushURL:     cfg.ExpoPushURL,
			accessToken: cfg.ExpoAccessToken,
			client:      &http.Client{Timeout: 10 * time.Second},
		}, nil
	})
}

// ExpoProvider delivers notifications through Expo's push API.
type ExpoProvider struct {
	pushURL     string
	accessToken string
	client      *http.Client
}

func (p *ExpoProvider) Name() string { return "expo" }

type expoMessage struct {
	To    []string          `json:"to"`
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

func (p *ExpoProvider) Push(ctx context.Context, deviceTokens []string, n Notification) error {
	data := n.Data
	if n.Type != "" {
		if data == nil {
			data = map[string]string{}
		}
		data["type"] = n.Type
	}

	payload, err := json.Marshal(expoMessage{
		To:    deviceTokens,
		Title: n.Title,
		Body:  n.Body,
		Data:  data,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.pushURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if p.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+p.accessToken)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("push request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
