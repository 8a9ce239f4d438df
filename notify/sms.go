package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// SMSSender delivers one text message, best-effort.
type SMSSender interface {
	Send(ctx context.Context, phone, message string) error
}

// GatewayClient posts to a generic JSON SMS gateway.
type GatewayClient struct {
	apiURL string
	apiKey string
	sender string
	client *http.Client
}

func NewGatewayClientFromEnv() (*GatewayClient, error) {
	apiURL := os.Getenv("SMS_API_URL")
	apiKey := os.Getenv("SMS_API_KEY")
	if apiURL == "" || apiKey == "" {
		return nil, fmt.Errorf("sms configuration missing: SMS_API_URL and SMS_API_KEY must be set")
	}
	sender := os.Getenv("SMS_SENDER")
	if sender == "" {
		sender = "FoodOrder"
	}
	return &GatewayClient{
		apiURL: apiURL,
		apiKey: apiKey,
		sender: sender,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *GatewayClient) Send(ctx context.Context, phone, message string) error {
	payload := map[string]string{
		"sender":  c.sender,
		"to":      phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach SMS gateway: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("SMS gateway error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
