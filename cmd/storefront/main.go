package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/runocole/geomart/internal/catalog"
	"github.com/runocole/geomart/internal/checkout"
	"github.com/runocole/geomart/internal/cookie"
	"github.com/runocole/geomart/internal/currency"
	h "github.com/runocole/geomart/internal/http"
	"github.com/runocole/geomart/internal/messaging"
	"github.com/runocole/geomart/internal/payment"
	"github.com/runocole/geomart/internal/videos"
)

type Config struct {
	HTTPPort         string
	PaymentBaseURL   string
	PaymentSecretKey string
	PaymentTimeout   time.Duration
	WhatsAppPhone    string
	VideoAPIBaseURL  string
	VideoAPIKey      string
	VideoChannelID   string
	RateURL          string
	SecureCookies    bool
	SessionTTL       time.Duration
	RequestTimeout   time.Duration
	ShutdownTimeout  time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:         getEnv("HTTP_PORT", "8080"),
		PaymentBaseURL:   getEnv("PAYMENT_BASE_URL", "https://api.paystack.co"),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentTimeout:   30 * time.Second,
		WhatsAppPhone:    getEnv("WHATSAPP_PHONE", "2348098765432"),
		VideoAPIBaseURL:  getEnv("VIDEO_API_BASE_URL", "https://www.googleapis.com/youtube/v3"),
		VideoAPIKey:      getEnv("VIDEO_API_KEY", ""),
		VideoChannelID:   getEnv("VIDEO_CHANNEL_ID", ""),
		RateURL:          getEnv("RATE_URL", ""),
		SecureCookies:    getEnv("SECURE_COOKIES", "false") == "true",
		SessionTTL:       30 * time.Minute,
		RequestTimeout:   30 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfg := loadConfig()

	catalogRepo := catalog.NewStaticRepository()
	cookies := cookie.NewCartCookie(catalogRepo, cfg.SecureCookies)
	converter := currency.NewConverter(nil, cfg.RateURL)
	paymentClient := payment.NewClient(cfg.PaymentBaseURL, cfg.PaymentSecretKey, cfg.PaymentTimeout)
	links := messaging.NewLinkBuilder(cfg.WhatsAppPhone)
	videoClient := videos.NewClient(nil, cfg.VideoAPIBaseURL, cfg.VideoAPIKey, cfg.VideoChannelID)
	sessions := checkout.NewSessions(cfg.SessionTTL)

	// Sweep abandoned checkout sessions for the life of the process.
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, time.Minute)

	router := h.NewRouter(h.Handlers{
		Cart:     h.NewCartHandler(catalogRepo, cookies, converter),
		Checkout: h.NewCheckoutHandler(cookies, sessions, paymentClient, links),
		Catalog:  h.NewCatalogHandler(catalogRepo, converter),
		Currency: h.NewCurrencyHandler(converter),
		Contact:  h.NewContactHandler(),
		Videos:   h.NewVideosHandler(videoClient),
	}, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
