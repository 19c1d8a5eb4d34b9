package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"readiness/internal/render"
	"readiness/internal/service"
)

// ReportHandler serves the exported PDF report
type ReportHandler struct {
	sessionSvc *service.SessionService
	renderer   *render.PDFRenderer
}

// NewReportHandler creates a new report handler
func NewReportHandler(sessionSvc *service.SessionService, renderer *render.PDFRenderer) *ReportHandler {
	return &ReportHandler{
		sessionSvc: sessionSvc,
		renderer:   renderer,
	}
}

var pdfNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// DownloadPDF handles GET /v1/sessions/{sessionId}/report.pdf
func (h *ReportHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if session.Result == nil || session.Contact == nil {
		writeError(w, http.StatusConflict, "survey is not complete")
		return
	}

	payload, err := service.AssembleReport(session.Lead, *session.Contact, session.Answers, session.Result)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	markdown := service.BuildReportMarkdown(payload, time.Now())
	pdf, err := h.renderer.Render(r.Context(), markdown)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	org := payload.Organization
	if org == "" {
		org = "Readiness"
	}
	fileName := pdfNameSanitizer.ReplaceAllString(org, "_") + "_Readiness_Report.pdf"

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
