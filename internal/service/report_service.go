package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"readiness/internal/cache"
	"readiness/internal/model"
)

// ErrIncompleteContact rejects report assembly before anything is sent.
// The email relay performs its own minimal validation but the assembler is
// the authoritative guard.
var ErrIncompleteContact = errors.New("missing required contact information")

// ReportSender delivers an assembled report payload (avoids import cycle
// with the transport layer; the mail client implements this).
type ReportSender interface {
	SendReport(ctx context.Context, payload *model.ReportPayload) error
}

// ReportService assembles report payloads and owns outbound email delivery
// state for sessions. Sends are fire-and-forget; a singleflight group keyed
// by session ID collapses duplicate concurrent resends.
type ReportService struct {
	sessions cache.SessionCache
	sender   ReportSender
	inflight singleflight.Group
}

// NewReportService creates a new report service
func NewReportService(sessions cache.SessionCache, sender ReportSender) *ReportService {
	return &ReportService{
		sessions: sessions,
		sender:   sender,
	}
}

// AssembleReport merges lead, contact, answers and score result into the
// flat payload consumed by the email and PDF collaborators. Later fields
// win on collision: the contact email overrides the lead email when set.
// Assembly fails when organization, user email, first name or last name is
// missing; nothing downstream is invoked in that case.
func AssembleReport(lead model.Lead, contact model.Contact, answers model.AnswerSet, result *model.ScoreResult) (*model.ReportPayload, error) {
	email := lead.Email
	if contact.Email != "" {
		email = contact.Email
	}

	if lead.CompanyName == "" || email == "" || contact.FirstName == "" || contact.LastName == "" {
		return nil, fmt.Errorf("%w: organization=%t email=%t firstName=%t lastName=%t",
			ErrIncompleteContact,
			lead.CompanyName != "", email != "", contact.FirstName != "", contact.LastName != "")
	}

	return &model.ReportPayload{
		Organization:    lead.CompanyName,
		UserEmail:       email,
		FirstName:       contact.FirstName,
		LastName:        contact.LastName,
		CompanySize:     contact.CompanySize,
		Phone:           contact.Phone,
		Score:           result.TotalScore,
		MaxScore:        result.MaxScore,
		Percentage:      result.Percentage,
		Level:           result.Level,
		LevelName:       result.LevelName,
		RiskCategory:    result.RiskCategory,
		Description:     result.Description,
		Recommendations: result.Recommendations,
		KeyRisks:        result.KeyRisks,
		SectionScores:   result.SectionScores,
		SurveyData:      answers,
	}, nil
}

// SendForSession assembles the session's report and delivers it, recording
// delivery state on the session. A second call for the same session while a
// send is in flight joins the first instead of producing a duplicate email.
func (s *ReportService) SendForSession(ctx context.Context, session *model.Session) error {
	if session.Result == nil {
		return errors.New("session has no score result")
	}
	if session.Contact == nil {
		return ErrIncompleteContact
	}

	_, err, shared := s.inflight.Do(session.ID, func() (interface{}, error) {
		payload, err := AssembleReport(session.Lead, *session.Contact, session.Answers, session.Result)
		if err != nil {
			return nil, err
		}

		s.setEmailStatus(ctx, session, model.EmailSending, "")
		if err := s.sender.SendReport(ctx, payload); err != nil {
			s.setEmailStatus(ctx, session, model.EmailFailed, err.Error())
			return nil, err
		}
		s.setEmailStatus(ctx, session, model.EmailSent, "")
		return nil, nil
	})
	if shared {
		log.Printf("[Report] duplicate send for session %s joined in-flight call", session.ID)
	}
	return err
}

func (s *ReportService) setEmailStatus(ctx context.Context, session *model.Session, status model.EmailStatus, errMsg string) {
	session.EmailStatus = status
	session.EmailError = errMsg
	if err := s.sessions.Set(ctx, session); err != nil {
		log.Printf("[Report] failed to persist email status for session %s: %v", session.ID, err)
	}
}

// BuildReportMarkdown lays out the exported report document. Its only data
// dependencies on the scoring core are the recommendations, the section
// scores and the fixed section display names.
func BuildReportMarkdown(payload *model.ReportPayload, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("# AI & Cybersecurity Readiness Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("January 2, 2006"))
	org := payload.Organization
	if org == "" {
		org = "Not provided"
	}
	fmt.Fprintf(&b, "Prepared for: %s\n\n", org)

	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b,
		"Your organization achieved a readiness score of %d%%, placing you in the %s category with a %s risk profile. This assessment evaluated your capabilities across six critical dimensions of AI and cybersecurity readiness.\n\n",
		payload.Percentage, payload.LevelName, payload.RiskCategory)
	fmt.Fprintf(&b, "**Overall Score: %d/%d (%d%%)**\n\n", payload.Score, payload.MaxScore, payload.Percentage)
	fmt.Fprintf(&b, "Risk Level: %s\n\n", payload.RiskCategory)
	fmt.Fprintf(&b, "Readiness Level: %s\n\n", payload.LevelName)

	b.WriteString("## Section Analysis\n\n")
	keys := make([]string, 0, len(payload.SectionScores))
	for key := range payload.SectionScores {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		score := payload.SectionScores[key]
		name := model.SectionDisplayNames[key]
		if name == "" {
			name = key
		}
		pct := int(math.Round(float64(score) / float64(model.MaxSectionScore) * 100))
		fmt.Fprintf(&b, "**%s** — Score: %d%% (%d/%d)\n\n", name, pct, score, model.MaxSectionScore)
		if pct < 50 {
			b.WriteString("⚠️ Requires immediate attention\n\n")
		} else if pct >= 75 {
			b.WriteString("✅ Strong performance\n\n")
		}
	}

	b.WriteString("## Key Business Insights\n\n")
	for _, insight := range ReportInsights(payload.SectionScores, payload.Percentage) {
		fmt.Fprintf(&b, "- %s\n", insight)
	}
	b.WriteString("\n")

	b.WriteString("## Strategic Recommendations\n\n")
	for i, rec := range payload.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString("## Next Steps\n\n")
	nextSteps := []string{
		"Schedule a consultation with DataSolved experts to develop your implementation roadmap",
		"Prioritize high-impact recommendations based on your business objectives",
		"Establish metrics to track progress and measure ROI",
		"Create a timeline for implementation with clear milestones",
	}
	for _, step := range nextSteps {
		fmt.Fprintf(&b, "- %s\n", step)
	}
	b.WriteString("\n---\n\n")
	b.WriteString("This report was generated by DataSolved AI & Cybersecurity Readiness Assessment\n")

	return b.String()
}
