package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pix-backend/internal/adapter/http/dto/request"
	"pix-backend/internal/domain/entities"
	"pix-backend/internal/logger"
	"pix-backend/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidTransactionID   = errors.New("invalid transaction id")
	ErrPaymentGatewayNotWired = errors.New("payment gateway not configured")
)

const paymentExpiry = 30 * time.Minute

// IPixPaymentUseCase encapsulates the validate -> transform -> gateway
// pipeline for PIX charges. Nothing is stored between calls.
type IPixPaymentUseCase interface {
	CreatePayment(ctx context.Context, req request.PaymentRequest, notificationURL string) (entities.PaymentRecord, error)
	CheckStatus(ctx context.Context, transactionID string) (json.RawMessage, error)
}

type PixPaymentUseCase struct {
	gateway interfaces.IPaymentGateway

	// Overridable for tests.
	now   func() time.Time
	newID func() string
}

var _ IPixPaymentUseCase = (*PixPaymentUseCase)(nil)

func NewPixPaymentUseCase(gateway interfaces.IPaymentGateway) *PixPaymentUseCase {
	return &PixPaymentUseCase{
		gateway: gateway,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CreatePayment validates the inbound request, builds the provider order and
// issues the single outbound call. Validation failures never reach the
// gateway.
func (u *PixPaymentUseCase) CreatePayment(ctx context.Context, req request.PaymentRequest, notificationURL string) (entities.PaymentRecord, error) {
	if vErr := req.Validate(); vErr != nil {
		logger.L().Warn("payment request rejected",
			zap.String("kind", string(vErr.Kind)),
			zap.String("field", vErr.Field),
		)
		return entities.PaymentRecord{}, vErr
	}
	if u.gateway == nil {
		return entities.PaymentRecord{}, ErrPaymentGatewayNotWired
	}

	order := u.buildOrder(req, notificationURL)

	logger.L().Info("creating pix payment",
		zap.String("transaction_id", order.TransactionID),
		zap.Int64("amount", order.Amount),
	)
	return u.gateway.CreatePayment(ctx, order)
}

// buildOrder translates the validated request into the provider order: a
// fresh UUID transaction id, a 30-minute expiry, the document type
// normalized to lower case and a description carrying the short id.
func (u *PixPaymentUseCase) buildOrder(req request.PaymentRequest, notificationURL string) entities.PaymentOrder {
	transactionID := u.newID()

	items := make([]entities.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entities.Item{Name: it.Name, Price: it.Price, Quantity: it.Quantity})
	}

	return entities.PaymentOrder{
		TransactionID: transactionID,
		Amount:        int64(*req.Amount),
		Description:   fmt.Sprintf("Pagamento PIX - %s", transactionID[:8]),
		Customer: entities.Customer{
			Name:  req.Customer.Name,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
			Document: entities.Document{
				Number: req.Customer.Document.Number,
				Type:   strings.ToLower(req.Customer.Document.Type),
			},
		},
		Items:           items,
		ExpiresAt:       u.now().Add(paymentExpiry),
		NotificationURL: notificationURL,
	}
}

func (u *PixPaymentUseCase) CheckStatus(ctx context.Context, transactionID string) (json.RawMessage, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return nil, ErrInvalidTransactionID
	}
	if u.gateway == nil {
		return nil, ErrPaymentGatewayNotWired
	}
	return u.gateway.CheckStatus(ctx, transactionID)
}
