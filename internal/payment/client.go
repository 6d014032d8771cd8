package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// GatewayClient talks to the payment gateway's REST API.
type GatewayClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  zerolog.Logger
}

func NewGatewayClient(baseURL, apiKey string, timeout time.Duration, logger zerolog.Logger) *GatewayClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GatewayClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With().Str("component", "payment").Logger(),
	}
}

type chargeBody struct {
	UserID      string `json:"user_id"`
	RoomID      string `json:"room_id"`
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	MethodToken string `json:"method_token"`
}

type chargeResult struct {
	Reference   string    `json:"reference"`
	AmountCents int64     `json:"amount_cents"`
	ChargedAt   time.Time `json:"charged_at"`
}

func (g *GatewayClient) Charge(ctx context.Context, req ChargeRequest) (*Receipt, error) {
	body, err := json.Marshal(chargeBody{
		UserID:      req.UserID,
		RoomID:      req.RoomID,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Description: req.Description,
		MethodToken: req.MethodToken,
	})
	if err != nil {
		return nil, fmt.Errorf("encode charge request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/charges", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build charge request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error().Err(err).Msg("charge request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusUnprocessableEntity:
		return nil, ErrDeclined
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w: gateway returned %d", ErrUnavailable, resp.StatusCode)
	default:
		return nil, fmt.Errorf("charge rejected with status %d", resp.StatusCode)
	}

	var result chargeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode charge response: %w", err)
	}

	g.logger.Info().
		Str("reference", result.Reference).
		Int64("amount_cents", result.AmountCents).
		Msg("charge succeeded")

	return &Receipt{
		Reference:   result.Reference,
		AmountCents: result.AmountCents,
		ChargedAt:   result.ChargedAt,
	}, nil
}

func (g *GatewayClient) Refund(ctx context.Context, reference string) error {
	body, err := json.Marshal(map[string]string{"reference": reference})
	if err != nil {
		return fmt.Errorf("encode refund request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/refunds", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build refund request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error().Err(err).Str("reference", reference).Msg("refund request failed")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("refund rejected with status %d", resp.StatusCode)
	}

	g.logger.Info().Str("reference", reference).Msg("refund succeeded")
	return nil
}
