package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"readiness/internal/render"
	"readiness/internal/service"
	"readiness/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	QuestionnaireService *service.QuestionnaireService
	SessionService       *service.SessionService
	MailSender           *service.ResendSender
	MailClient           *service.MailClient
	PDFRenderer          *render.PDFRenderer
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	questionnaireHandler := handler.NewQuestionnaireHandler(c.QuestionnaireService)
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	reportHandler := handler.NewReportHandler(c.SessionService, c.PDFRenderer)
	mailHandler := handler.NewMailHandler(c.MailSender, c.MailClient)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/questionnaire", questionnaireHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/answers", sessionHandler.RecordAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/contact", sessionHandler.SubmitContact).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/results", sessionHandler.Results).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/email", sessionHandler.ResendEmail).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/report.pdf", reportHandler.DownloadPDF).Methods("GET", "OPTIONS")

	v1.HandleFunc("/mail/send", mailHandler.Send).Methods("POST", "OPTIONS")
	v1.HandleFunc("/mail/test", mailHandler.Test).Methods("POST", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
