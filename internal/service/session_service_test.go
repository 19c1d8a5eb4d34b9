package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/model"
)

func newTestSessionService(sender *stubSender) (*SessionService, *memSessionCache) {
	sessions := newMemSessionCache()
	reportSvc := NewReportService(sessions, sender)
	return NewSessionService(sessions, reportSvc), sessions
}

func TestStartSessionValidation(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()

	cases := []struct {
		name string
		lead model.Lead
	}{
		{"missing company", model.Lead{Email: "a@b.co"}},
		{"missing email", model.Lead{CompanyName: "Acme"}},
		{"malformed email", model.Lead{CompanyName: "Acme", Email: "not-an-email"}},
		{"email without domain dot", model.Lead{CompanyName: "Acme", Email: "a@b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.StartSession(ctx, tc.lead)
			assert.Error(t, err)
		})
	}
}

func TestStartSessionOpensSurvey(t *testing.T) {
	svc, sessions := newTestSessionService(&stubSender{})
	ctx := context.Background()

	session, err := svc.StartSession(ctx, testLead())
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, model.StepSurvey, session.Step)
	assert.Equal(t, model.EmailIdle, session.EmailStatus)
	assert.Empty(t, session.Answers)

	stored, err := sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, session.Lead, stored.Lead)
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRecordAnswerOverwrites(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, testLead())
	require.NoError(t, err)

	session, err = svc.RecordAnswer(ctx, session.ID, 2, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, session.Answers["section_2"]["question_1"])

	// Revisiting a question replaces the prior value
	session, err = svc.RecordAnswer(ctx, session.ID, 2, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, session.Answers["section_2"]["question_1"])
	assert.Equal(t, 1, session.Answers.AnswerCount())
}

func TestRecordAnswerRejectsOutOfRange(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, testLead())
	require.NoError(t, err)

	cases := []struct {
		name                    string
		section, question, value int
	}{
		{"value below range", 0, 0, -1},
		{"value above range", 0, 0, 5},
		{"section out of range", 6, 0, 2},
		{"question out of range", 0, 4, 2},
		{"negative section", -1, 0, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RecordAnswer(ctx, session.ID, tc.section, tc.question, tc.value)
			assert.Error(t, err)
		})
	}

	fresh, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, fresh.Answers.AnswerCount())
}

func TestRecordAnswerAdvancesToContact(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, testLead())
	require.NoError(t, err)

	for s := 0; s < model.SectionCount; s++ {
		for q := 0; q < model.QuestionsPerSection; q++ {
			session, err = svc.RecordAnswer(ctx, session.ID, s, q, 2)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, model.StepContact, session.Step)
	assert.True(t, session.Answers.Complete())
}

func TestSubmitContactRequiresCompleteSurvey(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session, err := svc.StartSession(ctx, testLead())
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, session.ID, 0, 0, 4)
	require.NoError(t, err)

	_, err = svc.SubmitContact(ctx, session.ID, testContact())
	assert.ErrorIs(t, err, ErrSurveyIncomplete)
}

func TestSubmitContactValidation(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session := startCompletedSurvey(t, svc, 2)

	cases := []struct {
		name   string
		mutate func(*model.Contact)
	}{
		{"missing first name", func(c *model.Contact) { c.FirstName = "" }},
		{"missing last name", func(c *model.Contact) { c.LastName = "" }},
		{"missing company size", func(c *model.Contact) { c.CompanySize = "" }},
		{"no consent", func(c *model.Contact) { c.AgreedToReceiveReport = false }},
		{"malformed contact email", func(c *model.Contact) { c.Email = "bogus" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			contact := testContact()
			tc.mutate(&contact)
			_, err := svc.SubmitContact(ctx, session.ID, contact)
			assert.Error(t, err)
		})
	}
}

func TestSubmitContactFinalizes(t *testing.T) {
	sender := &stubSender{}
	svc, sessions := newTestSessionService(sender)
	ctx := context.Background()
	session := startCompletedSurvey(t, svc, 3)

	finalized, err := svc.SubmitContact(ctx, session.ID, testContact())
	require.NoError(t, err)

	assert.Equal(t, model.StepResults, finalized.Step)
	require.NotNil(t, finalized.Result)
	assert.Equal(t, 72, finalized.Result.TotalScore)
	assert.Equal(t, 75, finalized.Result.Percentage)
	assert.Equal(t, "Leading", finalized.Result.LevelName)
	require.NotNil(t, finalized.CompletedAt)

	// Send is async; wait for the email status to settle
	require.Eventually(t, func() bool {
		stored, err := sessions.Get(ctx, session.ID)
		return err == nil && stored != nil && stored.EmailStatus == model.EmailSent
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, sender.callCount())
}

func TestFinalizedSessionFreezesAnswers(t *testing.T) {
	svc, _ := newTestSessionService(&stubSender{})
	ctx := context.Background()
	session := startCompletedSurvey(t, svc, 2)

	_, err := svc.SubmitContact(ctx, session.ID, testContact())
	require.NoError(t, err)

	_, err = svc.RecordAnswer(ctx, session.ID, 0, 0, 4)
	assert.ErrorIs(t, err, ErrSessionFinalized)

	_, err = svc.SubmitContact(ctx, session.ID, testContact())
	assert.ErrorIs(t, err, ErrSessionFinalized)
}

func TestResendEmailRequiresResults(t *testing.T) {
	sender := &stubSender{}
	svc, _ := newTestSessionService(sender)
	ctx := context.Background()
	session := startCompletedSurvey(t, svc, 1)

	_, err := svc.ResendEmail(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSurveyIncomplete)
	assert.Equal(t, 0, sender.callCount())
}

func TestResendEmailDeliversAgain(t *testing.T) {
	sender := &stubSender{}
	svc, sessions := newTestSessionService(sender)
	ctx := context.Background()
	session := startCompletedSurvey(t, svc, 2)

	_, err := svc.SubmitContact(ctx, session.ID, testContact())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return sender.callCount() == 1
	}, 2*time.Second, 10*time.Millisecond)

	resent, err := svc.ResendEmail(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EmailSent, resent.EmailStatus)
	assert.Equal(t, 2, sender.callCount())

	stored, err := sessions.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EmailSent, stored.EmailStatus)
}

// startCompletedSurvey opens a session and answers every question with value
func startCompletedSurvey(t *testing.T, svc *SessionService, value int) *model.Session {
	t.Helper()
	session, err := svc.StartSession(context.Background(), testLead())
	require.NoError(t, err)
	for s := 0; s < model.SectionCount; s++ {
		for q := 0; q < model.QuestionsPerSection; q++ {
			session, err = svc.RecordAnswer(context.Background(), session.ID, s, q, value)
			require.NoError(t, err)
		}
	}
	return session
}
