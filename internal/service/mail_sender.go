package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"time"

	"readiness/internal/config"
	"readiness/internal/model"
)

// ErrMissingMailFields is returned when a payload lacks the fields the
// relay needs to address its emails.
var ErrMissingMailFields = errors.New("missing required fields")

// ResendSender is the relay side of the email contract: it turns a report
// payload into a user confirmation and an admin notification and posts each
// to the Resend API.
type ResendSender struct {
	apiKey     string
	baseURL    string
	from       string
	admins     []string
	httpClient *http.Client
}

// NewResendSender creates the Resend-backed email sender
func NewResendSender(cfg *config.Config) *ResendSender {
	if cfg.ResendAPIKey == "" {
		log.Println("Warning: RESEND_API_KEY not set, email sends will fail")
	}
	return &ResendSender{
		apiKey:  cfg.ResendAPIKey,
		baseURL: cfg.ResendBaseURL,
		from:    cfg.MailFrom,
		admins:  cfg.AdminEmails,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether an API key is configured
func (s *ResendSender) Enabled() bool {
	return s.apiKey != ""
}

type resendMessage struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Deliver sends both emails for one report payload. The user confirmation
// goes out first; a failure on either aborts with the provider's error.
func (s *ResendSender) Deliver(ctx context.Context, payload *model.ReportPayload) error {
	name := payload.FirstName
	if payload.LastName != "" {
		name = payload.FirstName + " " + payload.LastName
	}
	if payload.UserEmail == "" || name == "" || payload.Organization == "" || payload.Score <= 0 {
		return ErrMissingMailFields
	}

	userMsg := resendMessage{
		From:    s.from,
		To:      []string{payload.UserEmail},
		Subject: "Your AI & Cybersecurity Readiness Assessment Results",
		HTML:    buildUserEmailHTML(name, payload),
	}
	adminMsg := resendMessage{
		From:    s.from,
		To:      s.admins,
		Subject: "📩 New AI & Cybersecurity Readiness Submission",
		HTML:    buildAdminEmailHTML(name, payload),
	}

	if err := s.sendOne(ctx, userMsg); err != nil {
		return fmt.Errorf("user email: %w", err)
	}
	if err := s.sendOne(ctx, adminMsg); err != nil {
		return fmt.Errorf("admin email: %w", err)
	}
	return nil
}

func (s *ResendSender) sendOne(ctx context.Context, msg resendMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API status %d: %s", resp.StatusCode, string(text))
	}
	return nil
}

func buildUserEmailHTML(name string, payload *model.ReportPayload) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color: #333; line-height: 1.6; margin: 0; padding: 0;">
  <div style="max-width:600px;margin:auto;padding:30px;background:#f9f9f9;">
    <h2 style="text-align:center;color:#0078D4;">🎯 Your Results Are In</h2>
    <p>Hi %s,</p>
    <p>Thank you for completing the <strong>AI &amp; Cybersecurity Readiness Assessment</strong> with DataSolved.</p>
    <p><strong>Organization:</strong> %s<br/>
    <strong>Score:</strong> %d</p>
    <p>We'll follow up soon with personalized recommendations to help your business improve security and AI readiness.</p>
    <div style="text-align:center;margin-top:30px;">
      <a href="https://datasolved.com/meet" style="background:#0078D4;color:white;padding:12px 24px;text-decoration:none;border-radius:8px;">Schedule a Call</a>
    </div>
    <p style="margin-top:40px;font-size:12px;color:#888;">This message was sent automatically by DataSolved's AI Readiness platform.</p>
  </div>
</body>
</html>`, html.EscapeString(name), html.EscapeString(payload.Organization), payload.Score)
}

func buildAdminEmailHTML(name string, payload *model.ReportPayload) string {
	return fmt.Sprintf(`<html>
<body style="font-family: Arial, sans-serif; color:#333; line-height:1.6; margin:0; padding:0;">
  <div style="max-width:600px;margin:auto;padding:30px;background:#f9f9f9;">
    <h2 style="color:#0078D4;">New Readiness Assessment Submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Organization:</strong> %s</p>
    <p><strong>Score:</strong> %d</p>
    <p><strong>User Email:</strong> %s</p>
    <p style="margin-top:30px;">Submitted: %s</p>
    <hr/>
    <p style="font-size:12px;color:#888;">Automated notification from DataSolved's AI Readiness platform.</p>
  </div>
</body>
</html>`, html.EscapeString(name), html.EscapeString(payload.Organization), payload.Score,
		html.EscapeString(payload.UserEmail), time.Now().Format("1/2/2006, 3:04:05 PM"))
}
