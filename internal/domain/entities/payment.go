package entities

import "time"

// PaymentStatus is the provider-defined payment lifecycle status.
//
// The set is open ended; only the values the service itself needs to reason
// about are named here.

type PaymentStatus string

const (
	PaymentStatusWaitingPayment PaymentStatus = "waiting_payment"
	PaymentStatusPaid           PaymentStatus = "paid"
	PaymentStatusExpired        PaymentStatus = "expired"
)

type Document struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type Customer struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Document Document `json:"document"`
}

type Item struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// PaymentOrder is the validated, enriched charge the gateway adapters send to
// the provider: a fresh transaction id, a 30-minute expiry window and the
// webhook callback URL derived from the inbound request.
type PaymentOrder struct {
	TransactionID   string
	Amount          int64
	Description     string
	Customer        Customer
	Items           []Item
	ExpiresAt       time.Time
	NotificationURL string
}

type PixDetails struct {
	QRCode         string
	QRCodeImageURL string
	ExpirationDate string
}

// PaymentRecord is built solely from the provider response and discarded once
// the HTTP response is written. Nothing is persisted on this side; the
// provider's ledger is the source of truth.
//
// Customer and Items are kept untyped: they echo whatever shape the provider
// returned, without re-validation.
type PaymentRecord struct {
	ID         string
	ExternalID string
	Status     PaymentStatus
	Amount     float64
	Customer   any
	Items      any
	Pix        PixDetails
	CreatedAt  string
}
