package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "pix-backend/internal/adapter/http/dto/request"
	response "pix-backend/internal/adapter/http/dto/response"
	"pix-backend/internal/infrastructure/payments"
	"pix-backend/internal/logger"
	"pix-backend/internal/usecase"
	"pix-backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PixPaymentHandler handles HTTP requests for PIX payment creation and
// status checks.

type PixPaymentHandler struct {
	usecase usecase.IPixPaymentUseCase
}

func NewPixPaymentHandler(uc usecase.IPixPaymentUseCase) *PixPaymentHandler {
	return &PixPaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Create a PIX payment
// @Description  Validates the payload and forwards the charge to the configured provider.
// @Accept       json
// @Produce      json
// @Param        payment  body  request.PaymentRequest  true  "Payment request"
// @Success      201  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pix/gerar-pix [post]
func (h *PixPaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Request body must be valid JSON", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.usecase.CreatePayment(c.Request.Context(), payload, notificationURLFromRequest(c))
	if err != nil {
		logger.L().Error("payment creation failed", zap.Error(err))
		appErr := mapPixPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentRecord(record))
}

// CheckStatus godoc
// @Summary      Check a PIX payment status
// @Produce      json
// @Param        transaction_id  path  string  true  "Provider transaction id"
// @Success      200  {object}  map[string]any
// @Failure      500  {object}  pkg.HTTPError
// @Router       /pix/status/{transaction_id} [get]
func (h *PixPaymentHandler) CheckStatus(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	raw, err := h.usecase.CheckStatus(c.Request.Context(), transactionID)
	if err != nil {
		logger.L().Error("status check failed",
			zap.String("transaction_id", transactionID),
			zap.Error(err),
		)
		appErr := mapPixPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Data(http.StatusOK, "application/json", raw)
}

// notificationURLFromRequest derives the webhook callback URL from the
// inbound request's host, so the provider calls back the instance that
// created the charge.
func notificationURLFromRequest(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/v1/pix/webhook", scheme, c.Request.Host)
}

func mapPixPaymentError(err error) *pkg.AppError {
	var vErr *request.ValidationError
	var gErr *payments.GatewayError

	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple(string(vErr.Kind), vErr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTransactionID):
		return pkg.NewDomainErrorSimple("INVALID_TRANSACTION_ID", "Invalid transaction id", http.StatusBadRequest)
	case errors.As(err, &gErr):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
