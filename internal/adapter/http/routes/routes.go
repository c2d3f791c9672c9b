package routes

import (
	"strconv"
	"time"

	"pix-backend/internal/adapter/http/handlers"
	"pix-backend/internal/config"
	"pix-backend/internal/infrastructure/payments"
	"pix-backend/internal/logger"
	"pix-backend/internal/usecase"
	"pix-backend/internal/usecase/interfaces"
	"pix-backend/internal/webhook"
	"pix-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.New()

// Run wires the service together and starts the HTTP server.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	setMiddlewares()

	// Operational endpoints live outside the versioned group.
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	logger.L().Info("starting pix-backend",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.Provider),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.L().Fatal("failed to start the server", zap.Error(err))
	}
}

func getRoutes(cfg *config.Config) {
	gateway := buildGateway(cfg)

	paymentUseCase := usecase.NewPixPaymentUseCase(gateway)
	verifier := webhook.NewVerifier(cfg.WebhookSecret)

	paymentHandler := handlers.NewPixPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(verifier)

	v1 := router.Group("/v1")
	addPixRoutes(v1, paymentHandler, webhookHandler)
}

// buildGateway selects the provider adapter from configuration; there is one
// canonical contract, never a per-provider copy of the service.
func buildGateway(cfg *config.Config) interfaces.IPaymentGateway {
	switch cfg.Provider {
	case config.ProviderMercadoPago:
		gateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
		if err != nil {
			logger.L().Fatal("mercado pago gateway not configured", zap.Error(err))
		}
		return gateway
	default:
		gateway, err := payments.NewSelfPayGateway(cfg.PixAPIURL, cfg.PixAPIKey)
		if err != nil {
			logger.L().Fatal("selfpay gateway not configured", zap.Error(err))
		}
		return gateway
	}
}

func setMiddlewares() {
	router.Use(gin.Recovery())
	router.Use(requestMetrics())
	router.Use(requestLogger())
}

// requestMetrics records per-route counters and latency histograms.
func requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.IncRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()))
		metrics.ObserveDuration(c.Request.Method, route, time.Since(start).Seconds())
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.L().Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote_ip", c.ClientIP()),
		)
	}
}
