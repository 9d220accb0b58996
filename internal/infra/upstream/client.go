package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"booking-wizard/internal/domain/wizard"
	"booking-wizard/internal/infra"
	"booking-wizard/internal/pkg/config"
	"booking-wizard/internal/usecase/shared"
)

// Client talks to the booking backend. All three endpoints share one
// envelope convention: status:false is a domain-level failure carrying a
// message, even on HTTP 200 — callers must check status, not just
// transport success.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.UpstreamConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) CheckAvailability(ctx context.Context, key wizard.AvailabilityKey) ([]wizard.TimeSlot, error) {
	body := map[string]string{
		"date":      key.Date,
		"serviceId": key.ServiceID,
		"roomId":    key.RoomID,
	}
	data, err := c.post(ctx, "/booking/check-availability", body, "")
	if err != nil {
		return nil, err
	}

	var slots []wizard.TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "failed to decode time slots", err)
	}
	return slots, nil
}

func (c *Client) CreateBooking(ctx context.Context, payload shared.BookingSubmission, bearerToken string) (shared.BookingCreated, error) {
	data, err := c.post(ctx, "/booking", payload, bearerToken)
	if err != nil {
		return shared.BookingCreated{}, err
	}

	var created struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(data, &created); err != nil || created.ID == "" {
		return shared.BookingCreated{}, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "booking response missing _id", err)
	}
	return shared.BookingCreated{ID: created.ID}, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, bookingID string) (shared.PaymentIntent, error) {
	body := map[string]string{"booking": bookingID}
	data, err := c.post(ctx, "/payment/payment-intent", body, "")
	if err != nil {
		return shared.PaymentIntent{}, err
	}

	var intent struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(data, &intent); err != nil || intent.URL == "" {
		return shared.PaymentIntent{}, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "payment intent response missing url", err)
	}
	return shared.PaymentIntent{URL: intent.URL}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, bearerToken string) (json.RawMessage, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "failed to encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindUnreachable, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindUnreachable, "upstream request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close upstream response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, infra.WrapInfraErr(c.logger, infra.KindUnreachable, "upstream returned "+resp.Status, nil)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "failed to decode upstream envelope", err)
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "upstream rejected the request"
		}
		return nil, infra.WrapInfraErr(c.logger, infra.KindRejected, msg, nil)
	}
	return env.Data, nil
}
