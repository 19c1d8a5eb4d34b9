package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readiness/internal/model"
)

func testLead() model.Lead {
	return model.Lead{CompanyName: "Acme Manufacturing", Email: "owner@acme.example"}
}

func testContact() model.Contact {
	return model.Contact{
		FirstName:             "Dana",
		LastName:              "Reyes",
		CompanySize:           "25-49 employees",
		Phone:                 "555-0134",
		AgreedToReceiveReport: true,
	}
}

func TestAssembleReportMergesLeadAndContact(t *testing.T) {
	answers := answersWithTotal(50)
	result := ComputeScore(answers)

	payload, err := AssembleReport(testLead(), testContact(), answers, result)
	require.NoError(t, err)

	assert.Equal(t, "Acme Manufacturing", payload.Organization)
	assert.Equal(t, "owner@acme.example", payload.UserEmail)
	assert.Equal(t, "Dana", payload.FirstName)
	assert.Equal(t, "Reyes", payload.LastName)
	assert.Equal(t, result.TotalScore, payload.Score)
	assert.Equal(t, model.MaxTotalScore, payload.MaxScore)
	assert.Equal(t, result.SectionScores, payload.SectionScores)
	assert.Equal(t, answers, payload.SurveyData)
}

func TestAssembleReportContactEmailWins(t *testing.T) {
	contact := testContact()
	contact.Email = "dana@acme.example"

	payload, err := AssembleReport(testLead(), contact, model.AnswerSet{}, ComputeScore(model.AnswerSet{}))
	require.NoError(t, err)
	assert.Equal(t, "dana@acme.example", payload.UserEmail)
}

func TestAssembleReportRejectsMissingFields(t *testing.T) {
	answers := completeAnswers(2)
	result := ComputeScore(answers)

	cases := []struct {
		name    string
		mutate  func(*model.Lead, *model.Contact)
	}{
		{"missing organization", func(l *model.Lead, c *model.Contact) { l.CompanyName = "" }},
		{"missing email", func(l *model.Lead, c *model.Contact) { l.Email = "" }},
		{"missing first name", func(l *model.Lead, c *model.Contact) { c.FirstName = "" }},
		{"missing last name", func(l *model.Lead, c *model.Contact) { c.LastName = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lead := testLead()
			contact := testContact()
			tc.mutate(&lead, &contact)

			_, err := AssembleReport(lead, contact, answers, result)
			assert.ErrorIs(t, err, ErrIncompleteContact)
		})
	}
}

func TestAssemblyFailureNeverInvokesSender(t *testing.T) {
	// Scenario: contact record with no email anywhere
	sender := &stubSender{}
	sessions := newMemSessionCache()
	svc := NewReportService(sessions, sender)

	answers := completeAnswers(2)
	session := &model.Session{
		ID:      "s1",
		Lead:    model.Lead{CompanyName: "Acme Manufacturing"},
		Contact: &model.Contact{FirstName: "Dana", LastName: "Reyes"},
		Answers: answers,
		Result:  ComputeScore(answers),
	}
	require.NoError(t, sessions.Set(context.Background(), session))

	err := svc.SendForSession(context.Background(), session)
	assert.ErrorIs(t, err, ErrIncompleteContact)
	assert.Equal(t, 0, sender.callCount())
}

func TestSendForSessionRecordsDeliveryState(t *testing.T) {
	sender := &stubSender{}
	sessions := newMemSessionCache()
	svc := NewReportService(sessions, sender)

	answers := completeAnswers(2)
	contact := testContact()
	session := &model.Session{
		ID:      "s2",
		Lead:    testLead(),
		Contact: &contact,
		Answers: answers,
		Result:  ComputeScore(answers),
	}
	require.NoError(t, sessions.Set(context.Background(), session))

	require.NoError(t, svc.SendForSession(context.Background(), session))
	assert.Equal(t, 1, sender.callCount())
	assert.Equal(t, model.EmailSent, session.EmailStatus)

	stored, err := sessions.Get(context.Background(), "s2")
	require.NoError(t, err)
	assert.Equal(t, model.EmailSent, stored.EmailStatus)
}

func TestConcurrentResendsCollapseToOneSend(t *testing.T) {
	sender := &stubSender{delay: 100 * time.Millisecond}
	sessions := newMemSessionCache()
	svc := NewReportService(sessions, sender)

	answers := completeAnswers(3)
	contact := testContact()
	session := &model.Session{
		ID:      "s3",
		Lead:    testLead(),
		Contact: &contact,
		Answers: answers,
		Result:  ComputeScore(answers),
	}
	require.NoError(t, sessions.Set(context.Background(), session))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clone := *session
			_ = svc.SendForSession(context.Background(), &clone)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, sender.callCount())
}

func TestReportRoundTrip(t *testing.T) {
	// Deriving from the assembled payload's embedded section scores must
	// match deriving from the original score result
	answers := answersWithTotal(61)
	result := ComputeScore(answers)

	payload, err := AssembleReport(testLead(), testContact(), answers, result)
	require.NoError(t, err)

	assert.Equal(t, result.Recommendations, DeriveRecommendations(payload.SectionScores, payload.Percentage))
	assert.Equal(t,
		ReportInsights(result.SectionScores, result.Percentage),
		ReportInsights(payload.SectionScores, payload.Percentage))
	assert.Equal(t,
		BusinessInsights(result.SectionScores, result.Percentage),
		BusinessInsights(payload.SectionScores, payload.Percentage))
}

func TestBuildReportMarkdownLayout(t *testing.T) {
	answers := completeAnswers(4)
	require.NoError(t, answers.Record(0, 0, 0))
	require.NoError(t, answers.Record(0, 1, 0))
	require.NoError(t, answers.Record(0, 2, 0))
	require.NoError(t, answers.Record(0, 3, 1))
	result := ComputeScore(answers)

	payload, err := AssembleReport(testLead(), testContact(), answers, result)
	require.NoError(t, err)

	md := BuildReportMarkdown(payload, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC))

	assert.Contains(t, md, "# AI & Cybersecurity Readiness Report")
	assert.Contains(t, md, "Generated: March 14, 2026")
	assert.Contains(t, md, "Prepared for: Acme Manufacturing")
	assert.Contains(t, md, "## Executive Summary")
	assert.Contains(t, md, "## Section Analysis")
	assert.Contains(t, md, "Business Strategy & AI Vision")
	assert.Contains(t, md, "Ongoing Improvement")
	assert.Contains(t, md, "⚠️ Requires immediate attention")
	assert.Contains(t, md, "✅ Strong performance")
	assert.Contains(t, md, "## Strategic Recommendations")
	assert.Contains(t, md, "1. "+result.Recommendations[0])
	assert.Contains(t, md, "## Next Steps")
	assert.Contains(t, md, "Schedule a consultation with DataSolved experts")
}
