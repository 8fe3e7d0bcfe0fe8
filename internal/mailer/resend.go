package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"driveline/internal/config"
	"driveline/internal/constants"
	"driveline/pkg/errors"
)

// ResendClient relays inquiries through the Resend REST API.
type ResendClient struct {
	apiKey     string
	from       string
	endpoint   string
	recipients []string
	client     *http.Client
}

func NewResendClient(cfg config.MailerConfig) *ResendClient {
	from := cfg.From
	if from == "" {
		from = constants.DefaultMailFrom
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultMailEndpoint
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}

	return &ResendClient{
		apiKey:     cfg.APIKey,
		from:       from,
		endpoint:   endpoint,
		recipients: constants.OperatorRecipients,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *ResendClient) Configured() bool {
	return c.apiKey != ""
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type resendResponse struct {
	ID string `json:"id"`
}

func (c *ResendClient) Send(ctx context.Context, f Fields) (string, error) {
	if !c.Configured() {
		return "", errors.ErrNotConfigured.WithCause(fmt.Errorf("resend API key is empty"))
	}

	subject, html := Render(f)

	payload := resendPayload{
		From:    c.from,
		To:      c.recipients,
		ReplyTo: f.Email,
		Subject: subject,
		HTML:    html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", errors.ErrProvider.WithCause(fmt.Errorf("failed to marshal resend payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.ErrProvider.WithCause(fmt.Errorf("failed to create resend request: %w", err))
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.ErrProvider.WithCause(fmt.Errorf("resend request failed: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errors.ErrProvider.WithCause(
			fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(detail)))
	}

	var result resendResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.ErrProvider.WithCause(fmt.Errorf("failed to decode resend response: %w", err))
	}

	return result.ID, nil
}
