package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pix-backend/internal/logger"
	"pix-backend/internal/webhook"
	"pix-backend/pkg"
	"pix-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SignatureHeader carries the provider's HMAC signature of the raw body.
const SignatureHeader = "X-Signature"

// WebhookHandler verifies and acknowledges provider payment notifications.
// Valid deliveries are logged only; the provider's ledger is authoritative.

type WebhookHandler struct {
	verifier *webhook.Verifier
}

func NewWebhookHandler(verifier *webhook.Verifier) *WebhookHandler {
	return &WebhookHandler{verifier: verifier}
}

// ReceiveWebhook godoc
// @Summary      Receive a PIX payment notification
// @Accept       json
// @Produce      json
// @Param        X-Signature  header  string  true  "HMAC-SHA256 signature of the raw body"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  pkg.HTTPError
// @Router       /pix/webhook [post]
func (h *WebhookHandler) ReceiveWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		metrics.IncWebhook("read_error")
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Failed to read request body", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.verifier.Verify(body, c.GetHeader(SignatureHeader)); err != nil {
		appErr := mapWebhookError(err)
		logger.L().Warn("webhook rejected", zap.String("code", appErr.Code))
		metrics.IncWebhook("rejected")
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var event map[string]any
	if err := json.Unmarshal(body, &event); err != nil {
		metrics.IncWebhook("invalid_payload")
		appErr := pkg.NewDomainError("INVALID_PAYLOAD", "Webhook body must be valid JSON", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	logger.L().Info("webhook received", zap.Any("event", event))
	metrics.IncWebhook("accepted")

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, webhook.ErrMissingSignature):
		return pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Missing webhook signature", http.StatusUnauthorized)
	case errors.Is(err, webhook.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
