package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/audiophile/storefront/internal/core/domain"
	"github.com/audiophile/storefront/internal/port"
)

var (
	ErrInvalidNotification = errors.New("missing recipient, customer name or order id")
	ErrTransport           = errors.New("email transport rejected the send")
)

const defaultEndpoint = "https://api.resend.com/emails"

// ResendClient delivers order confirmations through the Resend HTTP API in
// a single attempt.
type ResendClient struct {
	apiKey   string
	from     string
	appURL   string
	endpoint string
	client   *http.Client
}

func NewResendClient(apiKey, from, appURL string) *ResendClient {
	return &ResendClient{
		apiKey:   apiKey,
		from:     from,
		appURL:   appURL,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// WithEndpoint overrides the API endpoint, for tests.
func (c *ResendClient) WithEndpoint(endpoint string) *ResendClient {
	c.endpoint = endpoint
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// SendConfirmation renders the confirmation email and posts it to the
// transport. Malformed input is rejected before any network interaction.
func (c *ResendClient) SendConfirmation(ctx context.Context, order domain.Order) error {
	if order.CustomerEmail == "" || order.CustomerName == "" || order.OrderID == "" {
		return ErrInvalidNotification
	}

	html, err := renderConfirmation(order, c.appURL)
	if err != nil {
		return fmt.Errorf("render confirmation: %w", err)
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{order.CustomerEmail},
		Subject: fmt.Sprintf("Order Confirmation - %s", order.OrderID),
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("encode send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, body)
	}

	return nil
}

var _ port.Notifier = (*ResendClient)(nil)
