// File: turnera/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"turnera/config"
	"turnera/handlers"
	"turnera/middleware"
	"turnera/routes"
	"turnera/services/assistant"
	"turnera/services/calendar"
	"turnera/services/inference"
	"turnera/services/payments"
	"turnera/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitChatCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Upstream clients.
	inferenceClient := inference.NewClient(config.AppConfig.HFEndpointURL, config.AppConfig.HFToken)
	calendarClient := calendar.NewClient(config.AppConfig.CalAPIKey)

	// Payments stays nil without a credential; link creation then reports
	// a configuration error instead of calling out.
	var paymentsClient assistant.PaymentsClient
	if config.AppConfig.MPAccessToken != "" {
		paymentsClient = payments.NewClient(config.AppConfig.MPAccessToken)
	} else {
		logger.Sugar().Warn("main: MP_ACCESS_TOKEN not set, payment links disabled")
	}

	historyStore := assistant.NewRedisHistoryStore(utils.GetChatCacheClient(), 30*time.Minute)

	assistantService := &assistant.DefaultAssistantService{
		Inference:     inferenceClient,
		Calendar:      calendarClient,
		Payments:      paymentsClient,
		History:       historyStore,
		EventType:     config.EventType,
		Location:      config.Location,
		PublicBaseURL: config.AppConfig.PublicBaseURL,
		SystemPrompt:  config.AppConfig.SystemPrompt,
	}

	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ChatHandler:        assistantHandler.ChatHandler,
		ChatHistoryHandler: assistantHandler.ChatHistoryHandler,

		SlotsHandler:         assistantHandler.SlotsHandler,
		CreateBookingHandler: assistantHandler.CreateBookingHandler,

		PaymentLinkHandler:    assistantHandler.PaymentLinkHandler,
		PaymentWebhookHandler: assistantHandler.PaymentWebhookHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
