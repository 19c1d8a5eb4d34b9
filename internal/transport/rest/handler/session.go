package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"readiness/internal/model"
	"readiness/internal/service"
)

// SessionHandler handles the assessment lifecycle endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// RecordAnswerRequest is the request body for recording one answer
type RecordAnswerRequest struct {
	Section  int `json:"section"`
	Question int `json:"question"`
	Value    int `json:"value"`
}

// SessionResponse wraps a session with derived progress fields
type SessionResponse struct {
	*model.Session
	AnsweredCount    int    `json:"answeredCount"`
	SurveyComplete   bool   `json:"surveyComplete"`
	SectionsComplete []bool `json:"sectionsComplete"`
}

func sessionResponse(session *model.Session) *SessionResponse {
	sections := make([]bool, model.SectionCount)
	for i := range sections {
		sections[i] = session.Answers.SectionComplete(i)
	}
	return &SessionResponse{
		Session:          session,
		AnsweredCount:    session.Answers.AnswerCount(),
		SurveyComplete:   session.Answers.Complete(),
		SectionsComplete: sections,
	}
}

// Create handles POST /v1/sessions (lead capture)
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var lead model.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.StartSession(r.Context(), lead)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse(session))
}

// Get handles GET /v1/sessions/{sessionId}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

// RecordAnswer handles PUT /v1/sessions/{sessionId}/answers
func (h *SessionHandler) RecordAnswer(w http.ResponseWriter, r *http.Request) {
	var req RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.RecordAnswer(r.Context(), mux.Vars(r)["sessionId"], req.Section, req.Question, req.Value)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse(session))
}

// SubmitContact handles POST /v1/sessions/{sessionId}/contact
func (h *SessionHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var contact model.Contact
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.SubmitContact(r.Context(), mux.Vars(r)["sessionId"], contact)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse(session))
}

// Results handles GET /v1/sessions/{sessionId}/results
func (h *SessionHandler) Results(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if session.Result == nil {
		writeError(w, http.StatusConflict, "survey is not complete")
		return
	}
	writeJSON(w, http.StatusOK, resultsResponse(session))
}

// ResendEmail handles POST /v1/sessions/{sessionId}/email
func (h *SessionHandler) ResendEmail(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.ResendEmail(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil && session == nil {
		writeSessionError(w, err)
		return
	}

	status := map[string]interface{}{
		"emailStatus": session.EmailStatus,
	}
	if err != nil {
		status["emailError"] = err.Error()
		writeJSON(w, http.StatusBadGateway, status)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func resultsResponse(session *model.Session) map[string]interface{} {
	return map[string]interface{}{
		"sessionId":   session.ID,
		"result":      session.Result,
		"insights":    service.BusinessInsights(session.Result.SectionScores, session.Result.Percentage),
		"emailStatus": session.EmailStatus,
	}
}

func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrSurveyIncomplete), errors.Is(err, service.ErrSessionFinalized):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrIncompleteContact):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}
