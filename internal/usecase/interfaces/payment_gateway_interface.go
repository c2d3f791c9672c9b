package interfaces

import (
	"context"
	"encoding/json"

	"pix-backend/internal/domain/entities"
)

// IPaymentGateway abstracts external PIX providers (SelfPay, Mercado Pago).
//
// Each call is a single synchronous outbound request: no retries, no caching.
// Non-success provider statuses and transport failures surface as
// *payments.GatewayError.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error)
	CheckStatus(ctx context.Context, transactionID string) (json.RawMessage, error)
}
