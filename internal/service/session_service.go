package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/google/uuid"

	"readiness/internal/cache"
	"readiness/internal/model"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrSessionFinalized = errors.New("session already finalized")
	ErrSurveyIncomplete = errors.New("survey is not complete")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SessionService owns the assessment lifecycle: lead capture, answer
// recording, contact capture and finalization. One session object holds all
// state for a respondent; it lives in the session cache and is discarded
// when its TTL lapses.
type SessionService struct {
	sessions  cache.SessionCache
	reportSvc *ReportService
}

// NewSessionService creates a new session service
func NewSessionService(sessions cache.SessionCache, reportSvc *ReportService) *SessionService {
	return &SessionService{
		sessions:  sessions,
		reportSvc: reportSvc,
	}
}

// StartSession captures the lead record and opens the survey. The lead is
// immutable for the rest of the session.
func (s *SessionService) StartSession(ctx context.Context, lead model.Lead) (*model.Session, error) {
	if lead.CompanyName == "" {
		return nil, errors.New("company name is required")
	}
	if lead.Email == "" {
		return nil, errors.New("email is required")
	}
	if !emailPattern.MatchString(lead.Email) {
		return nil, errors.New("please enter a valid email address")
	}

	session := &model.Session{
		ID:          uuid.NewString(),
		Step:        model.StepSurvey,
		Lead:        lead,
		Answers:     model.AnswerSet{},
		EmailStatus: model.EmailIdle,
		CreatedAt:   time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	log.Printf("[Session] started %s for %s", session.ID, lead.CompanyName)
	return session, nil
}

// Get retrieves a live session
func (s *SessionService) Get(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// RecordAnswer stores one answer, overwriting any prior value for that
// question. Navigation back to an earlier section overwrites, never deletes.
// Once the session is finalized answers are frozen.
func (s *SessionService) RecordAnswer(ctx context.Context, id string, sectionIndex, questionIndex, value int) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == model.StepResults {
		return nil, ErrSessionFinalized
	}

	if err := session.Answers.Record(sectionIndex, questionIndex, value); err != nil {
		return nil, err
	}

	if session.Answers.Complete() {
		session.Step = model.StepContact
	} else {
		session.Step = model.StepSurvey
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return session, nil
}

// SubmitContact captures the final contact record, computes the score and
// fires the report email. The send is fire-and-forget: the session is
// returned with its results immediately and email state is tracked on the
// session as the send resolves.
func (s *SessionService) SubmitContact(ctx context.Context, id string, contact model.Contact) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step == model.StepResults {
		return nil, ErrSessionFinalized
	}

	if contact.FirstName == "" {
		return nil, errors.New("first name is required")
	}
	if contact.LastName == "" {
		return nil, errors.New("last name is required")
	}
	if contact.CompanySize == "" {
		return nil, errors.New("company size is required")
	}
	if !contact.AgreedToReceiveReport {
		return nil, errors.New("consent to receive the report is required")
	}
	if contact.Email != "" && !emailPattern.MatchString(contact.Email) {
		return nil, errors.New("please enter a valid email address")
	}
	if !session.Answers.Complete() {
		return nil, fmt.Errorf("%w: %d of %d answers recorded",
			ErrSurveyIncomplete, session.Answers.AnswerCount(), model.SectionCount*model.QuestionsPerSection)
	}

	now := time.Now()
	session.Contact = &contact
	session.Result = ComputeScore(session.Answers)
	session.Step = model.StepResults
	session.CompletedAt = &now

	// Reject assembly before anything is stored or sent when required
	// report fields are missing.
	if _, err := AssembleReport(session.Lead, contact, session.Answers, session.Result); err != nil {
		return nil, err
	}

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	go func(snapshot model.Session) {
		sendCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := s.reportSvc.SendForSession(sendCtx, &snapshot); err != nil {
			log.Printf("[Session] report email failed for %s: %v", snapshot.ID, err)
		}
	}(*session)

	log.Printf("[Session] finalized %s: score %d/%d (%d%%)",
		session.ID, session.Result.TotalScore, session.Result.MaxScore, session.Result.Percentage)
	return session, nil
}

// ResendEmail re-triggers the report email for a finalized session
func (s *SessionService) ResendEmail(ctx context.Context, id string) (*model.Session, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Step != model.StepResults {
		return nil, ErrSurveyIncomplete
	}

	if err := s.reportSvc.SendForSession(ctx, session); err != nil {
		return session, err
	}
	return session, nil
}
