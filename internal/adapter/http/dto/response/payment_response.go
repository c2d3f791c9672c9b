package response

import (
	"pix-backend/internal/domain/entities"
)

// PaymentResponse is the stable internal contract returned by the
// payment-creation endpoint, regardless of which provider served the call.

type PixResponse struct {
	QRCode         string `json:"qrcode"`
	QRCodeImageURL string `json:"qrcode_image_url"`
	ExpirationDate string `json:"expirationDate"`
}

type PaymentResponse struct {
	ID         string      `json:"id"`
	ExternalID string      `json:"external_id"`
	Status     string      `json:"status"`
	Amount     float64     `json:"amount"`
	Customer   any         `json:"customer"`
	Items      any         `json:"items"`
	Pix        PixResponse `json:"pix"`
	CreatedAt  string      `json:"createdAt"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		Status:     string(p.Status),
		Amount:     p.Amount,
		Customer:   p.Customer,
		Items:      p.Items,
		Pix: PixResponse{
			QRCode:         p.Pix.QRCode,
			QRCodeImageURL: p.Pix.QRCodeImageURL,
			ExpirationDate: p.Pix.ExpirationDate,
		},
		CreatedAt: p.CreatedAt,
	}
}
