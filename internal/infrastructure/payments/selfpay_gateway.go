package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"pix-backend/internal/domain/entities"
	"pix-backend/internal/logger"

	"go.uber.org/zap"
)

var (
	ErrMissingSelfPayBaseURL = errors.New("missing selfpay base url")
	ErrMissingSelfPayAPIKey  = errors.New("missing selfpay api key")
)

const selfPayTimeout = 30 * time.Second

// SelfPayGateway talks to the SelfPay PIX REST API with bearer authentication.
// It owns the provider-shape translation in both directions: PaymentOrder to
// the snake_case request payload, and the provider JSON back into a
// PaymentRecord.
type SelfPayGateway struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	now        func() time.Time
}

func NewSelfPayGateway(baseURL, apiKey string) (*SelfPayGateway, error) {
	if baseURL == "" {
		return nil, ErrMissingSelfPayBaseURL
	}
	if apiKey == "" {
		return nil, ErrMissingSelfPayAPIKey
	}

	return &SelfPayGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: selfPayTimeout,
		},
		now: time.Now,
	}, nil
}

func (g *SelfPayGateway) CreatePayment(ctx context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error) {
	log := logger.L().With(
		zap.String("transaction_id", order.TransactionID),
		zap.Int64("amount", order.Amount),
	)

	body := map[string]any{
		"external_id":      order.TransactionID,
		"amount":           order.Amount,
		"description":      order.Description,
		"customer":         order.Customer,
		"items":            order.Items,
		"expires_at":       order.ExpiresAt.Format(time.RFC3339),
		"notification_url": order.NotificationURL,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal payment payload", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/payments", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	log.Info("sending payment request to selfpay")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("selfpay request failed", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read selfpay response", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: fmt.Errorf("failed to read selfpay response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("selfpay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return entities.PaymentRecord{}, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	record := recordFromProviderJSON(respBody, g.now())
	log.Info("selfpay payment created",
		zap.String("payment_id", record.ID),
		zap.String("status", string(record.Status)),
	)
	return record, nil
}

func (g *SelfPayGateway) CheckStatus(ctx context.Context, transactionID string) (json.RawMessage, error) {
	log := logger.L().With(zap.String("transaction_id", transactionID))

	endpoint := fmt.Sprintf("%s/payments/%s", g.baseURL, url.PathEscape(transactionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Error("failed building status request", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("selfpay status request failed", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read selfpay response", zap.Error(err))
		return nil, &GatewayError{Err: fmt.Errorf("failed to read selfpay response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("selfpay status check returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", respBody),
		)
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}
