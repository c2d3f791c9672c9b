package routes

import (
	"pix-backend/internal/adapter/http/handlers"
	"pix-backend/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPix = "/pix"

func addPixRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PixPaymentHandler, webhookHandler *handlers.WebhookHandler) {
	pix := rg.Group(PathPix)
	{
		pix.POST("/gerar-pix", middleware.RateLimit(middleware.LimitStrict, middleware.BurstStrict), paymentHandler.CreatePayment)
		pix.GET("/status/:transaction_id", middleware.RateLimit(middleware.LimitGeneral, middleware.BurstGeneral), paymentHandler.CheckStatus)
		pix.POST("/webhook", middleware.RateLimit(middleware.LimitStrict, middleware.BurstStrict), webhookHandler.ReceiveWebhook)
		pix.GET("/health", handlers.HealthCheck)
	}
}
