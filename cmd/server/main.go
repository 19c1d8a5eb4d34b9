package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"readiness/internal/cache"
	"readiness/internal/config"
	"readiness/internal/render"
	"readiness/internal/repository"
	"readiness/internal/service"
	"readiness/internal/transport/rest"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	if cfg.ResendAPIKey != "" {
		log.Println("Mail: RESEND_API_KEY configured")
	} else {
		log.Println("Mail: RESEND_API_KEY NOT SET (sends will fail until configured)")
	}

	// MongoDB connection (questionnaire content only)
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("readiness")

	// Redis connection (live session state)
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Repositories and caches
	questionnaireRepo := repository.NewQuestionnaireRepo(db)
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)

	// Services
	questionnaireSvc := service.NewQuestionnaireService(questionnaireRepo)
	mailClient := service.NewMailClient(cfg.MailEndpoint)
	mailSender := service.NewResendSender(cfg)
	reportSvc := service.NewReportService(sessionCache, mailClient)
	sessionSvc := service.NewSessionService(sessionCache, reportSvc)
	renderer := render.NewPDFRenderer()

	container := &rest.Container{
		QuestionnaireService: questionnaireSvc,
		SessionService:       sessionSvc,
		MailSender:           mailSender,
		MailClient:           mailClient,
		PDFRenderer:          renderer,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  GET  /v1/questionnaire")
		log.Println("  POST /v1/sessions")
		log.Println("  PUT  /v1/sessions/{id}/answers")
		log.Println("  POST /v1/sessions/{id}/contact")
		log.Println("  GET  /v1/sessions/{id}/results")
		log.Println("  POST /v1/sessions/{id}/email")
		log.Println("  GET  /v1/sessions/{id}/report.pdf")
		log.Println("  POST /v1/mail/send")
		log.Println("  POST /v1/mail/test")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
