package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"pix-backend/internal/domain/entities"
	"pix-backend/internal/logger"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Orders carry amounts in centavos; the Mercado Pago API denominates
// transaction_amount in BRL.
const centavosPerReal = 100

// MercadoPagoGateway creates PIX charges through the Mercado Pago SDK.
//
// The order maps onto a payment.Request with payment_method_id "pix"; the QR
// code comes back under point_of_interaction.transaction_data.
type MercadoPagoGateway struct {
	client payment.Client
	now    func() time.Time
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if accessToken == "" {
		logger.L().Error("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.L().Error("failed creating mercado pago sdk config", zap.Error(err))
		return nil, err
	}
	logger.L().Info("mercado pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg), now: time.Now}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error) {
	log := logger.L().With(
		zap.String("transaction_id", order.TransactionID),
		zap.Int64("amount", order.Amount),
	)

	req := buildMercadoPagoRequest(order)

	log.Info("sending payment request to mercado pago")

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Error("mercado pago create failed", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: err}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		log.Error("failed to marshal mercado pago response", zap.Error(err))
		return entities.PaymentRecord{}, &GatewayError{Err: err}
	}

	record := g.recordFromResponse(strconv.Itoa(resp.ID), resp.Status, raw)
	log.Info("mercado pago payment created",
		zap.String("payment_id", record.ID),
		zap.String("status", string(record.Status)),
	)
	return record, nil
}

func buildMercadoPagoRequest(order entities.PaymentOrder) payment.Request {
	expiresAt := order.ExpiresAt
	return payment.Request{
		TransactionAmount: float64(order.Amount) / centavosPerReal,
		Description:       order.Description,
		PaymentMethodID:   "pix",
		ExternalReference: order.TransactionID,
		NotificationURL:   order.NotificationURL,
		DateOfExpiration:  &expiresAt,
		Payer: &payment.PayerRequest{
			Email:     order.Customer.Email,
			FirstName: order.Customer.Name,
			Identification: &payment.IdentificationRequest{
				Type:   strings.ToUpper(order.Customer.Document.Type),
				Number: order.Customer.Document.Number,
			},
		},
	}
}

func (g *MercadoPagoGateway) CheckStatus(ctx context.Context, transactionID string) (json.RawMessage, error) {
	log := logger.L().With(zap.String("transaction_id", transactionID))

	id, err := strconv.Atoi(strings.TrimSpace(transactionID))
	if err != nil {
		log.Error("mercado pago payment ids are numeric", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Error("mercado pago get failed", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, &GatewayError{Err: err}
	}
	return raw, nil
}

// recordFromResponse reads the marshaled SDK response with tolerant map
// access; the SDK omits most of these fields for non-PIX payment methods.
func (g *MercadoPagoGateway) recordFromResponse(id, status string, raw []byte) entities.PaymentRecord {
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	transactionData := subObject(subObject(body, "point_of_interaction"), "transaction_data")

	record := entities.PaymentRecord{
		ID:         id,
		ExternalID: stringField(body, "external_reference"),
		Status:     entities.PaymentStatusWaitingPayment,
		Amount:     numberField(body, "transaction_amount") * centavosPerReal,
		Pix: entities.PixDetails{
			QRCode:         stringField(transactionData, "qr_code"),
			QRCodeImageURL: stringField(transactionData, "ticket_url"),
			ExpirationDate: stringField(body, "date_of_expiration"),
		},
		CreatedAt: g.now().Format(time.RFC3339),
	}

	if status != "" {
		record.Status = entities.PaymentStatus(status)
	}
	if createdAt := stringField(body, "date_created"); createdAt != "" {
		record.CreatedAt = createdAt
	}

	return record
}
