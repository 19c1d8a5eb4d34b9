package handler

import (
	"net/http"

	"readiness/internal/service"
)

// QuestionnaireHandler serves the fixed assessment content
type QuestionnaireHandler struct {
	questionnaireSvc *service.QuestionnaireService
}

// NewQuestionnaireHandler creates a new questionnaire handler
func NewQuestionnaireHandler(questionnaireSvc *service.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireSvc: questionnaireSvc}
}

// Get handles GET /v1/questionnaire
func (h *QuestionnaireHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.questionnaireSvc.Get(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, q)
}
