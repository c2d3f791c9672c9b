package payments

import (
	"encoding/json"
	"time"

	"pix-backend/internal/domain/entities"
)

// recordFromProviderJSON projects the raw SelfPay response into the internal
// PaymentRecord. Access is tolerant: missing or mistyped fields yield zero
// values instead of failing, status defaults to waiting_payment and createdAt
// to the current time.
//
// The QR-code image lives under pix.qrCodeUrl on the wire; the internal
// contract exposes it as qrcode_image_url.
func recordFromProviderJSON(raw []byte, now time.Time) entities.PaymentRecord {
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	pix := subObject(body, "pix")

	record := entities.PaymentRecord{
		ID:         stringField(body, "id"),
		ExternalID: stringField(body, "external_id"),
		Status:     entities.PaymentStatusWaitingPayment,
		Amount:     numberField(body, "amount"),
		Customer:   body["customer"],
		Items:      body["items"],
		Pix: entities.PixDetails{
			QRCode:         stringField(pix, "qrcode"),
			QRCodeImageURL: stringField(pix, "qrCodeUrl"),
			ExpirationDate: stringField(pix, "expirationDate"),
		},
		CreatedAt: now.Format(time.RFC3339),
	}

	if s := stringField(body, "status"); s != "" {
		record.Status = entities.PaymentStatus(s)
	}
	if createdAt := stringField(body, "createdAt"); createdAt != "" {
		record.CreatedAt = createdAt
	}

	return record
}

func subObject(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	sub, _ := m[key].(map[string]any)
	return sub
}

func stringField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func numberField(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	n, _ := m[key].(float64)
	return n
}
