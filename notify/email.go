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

// EmailSender delivers one transactional email. Implementations are
// best-effort; callers log failures instead of surfacing them.
type EmailSender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResendClient talks to a Resend-style transactional email API.
type ResendClient struct {
	apiURL string
	apiKey string
	from   string
	client *http.Client
}

func NewResendClientFromEnv() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("email configuration missing: RESEND_API_KEY not set")
	}
	apiURL := os.Getenv("RESEND_API_URL")
	if apiURL == "" {
		apiURL = "https://api.resend.com/emails"
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "orders@example.com"
	}
	return &ResendClient{
		apiURL: apiURL,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

func (c *ResendClient) Send(ctx context.Context, to, subject, html string) error {
	payload := map[string]interface{}{
		"from":    c.from,
		"to":      []string{to},
		"subject": subject,
		"html":    html,
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
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}
