package request

import (
	"fmt"
	"strings"
)

// ValidationKind classifies which rule a payment request violated.
type ValidationKind string

const (
	KindMissingField    ValidationKind = "MISSING_FIELD"
	KindInvalidDocument ValidationKind = "INVALID_DOCUMENT"
	KindInvalidItems    ValidationKind = "INVALID_ITEMS"
	KindInvalidAmount   ValidationKind = "INVALID_AMOUNT"
)

// ValidationError reports the first violated rule. Field names the offending
// field using its JSON path (e.g. "customer.email").
type ValidationError struct {
	Kind  ValidationKind
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing required field: %s", e.Field)
	case KindInvalidDocument:
		return "document must contain number and type"
	case KindInvalidItems:
		return "items must be a non-empty list"
	case KindInvalidAmount:
		return "amount must be a positive number"
	default:
		return fmt.Sprintf("invalid field: %s", e.Field)
	}
}

type DocumentRequest struct {
	Number string `json:"number"`
	Type   string `json:"type"`
}

type CustomerRequest struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Document *DocumentRequest `json:"document"`
}

type ItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// PaymentRequest is the inbound payment-creation payload.
//
// Pointer fields distinguish absent from zero-valued JSON, so Validate can
// tell "amount": 0 apart from a missing amount.
type PaymentRequest struct {
	Customer *CustomerRequest `json:"customer"`
	Items    []ItemRequest    `json:"items"`
	Amount   *float64         `json:"amount"`
}

// Validate checks the request shape and fails on the first violated rule:
// top-level fields, customer sub-fields, document, items, amount.
func (r PaymentRequest) Validate() *ValidationError {
	if r.Customer == nil {
		return &ValidationError{Kind: KindMissingField, Field: "customer"}
	}
	if r.Items == nil {
		return &ValidationError{Kind: KindMissingField, Field: "items"}
	}
	if r.Amount == nil {
		return &ValidationError{Kind: KindMissingField, Field: "amount"}
	}

	for _, f := range []struct {
		name  string
		value string
	}{
		{"customer.name", r.Customer.Name},
		{"customer.email", r.Customer.Email},
		{"customer.phone", r.Customer.Phone},
	} {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Kind: KindMissingField, Field: f.name}
		}
	}
	if r.Customer.Document == nil {
		return &ValidationError{Kind: KindMissingField, Field: "customer.document"}
	}

	if strings.TrimSpace(r.Customer.Document.Number) == "" || strings.TrimSpace(r.Customer.Document.Type) == "" {
		return &ValidationError{Kind: KindInvalidDocument, Field: "customer.document"}
	}

	if len(r.Items) == 0 {
		return &ValidationError{Kind: KindInvalidItems, Field: "items"}
	}

	if *r.Amount <= 0 {
		return &ValidationError{Kind: KindInvalidAmount, Field: "amount"}
	}

	return nil
}
