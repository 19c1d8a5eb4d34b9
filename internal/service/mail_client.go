package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"readiness/internal/model"
)

// MailClient is the core's side of the email transport contract: it posts
// the full report payload to the configured relay endpoint and treats a 2xx
// response carrying a truthy success flag as delivered. It never knows which
// provider actually sent the mail.
type MailClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewMailClient creates a mail client targeting the given relay endpoint
func NewMailClient(endpoint string) *MailClient {
	return &MailClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendResult is the relay's response body
type SendResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// SendReport delivers a report payload through the relay
func (c *MailClient) SendReport(ctx context.Context, payload *model.ReportPayload) error {
	log.Printf("[Mail Client] sending report for %s to %s", payload.Organization, payload.UserEmail)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode report payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail relay unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("invalid mail relay response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		if result.Error != "" {
			return fmt.Errorf("mail relay rejected send: %s", result.Error)
		}
		return fmt.Errorf("mail relay rejected send: status %d", resp.StatusCode)
	}

	log.Printf("[Mail Client] report delivered for %s", payload.Organization)
	return nil
}

// TestConfiguration exercises the relay end to end with a fixed payload.
// Triggered explicitly via the mail test endpoint, never automatically.
func (c *MailClient) TestConfiguration(ctx context.Context) error {
	payload := &model.ReportPayload{
		Organization: "Test Organization",
		UserEmail:    "test@example.com",
		FirstName:    "Test",
		LastName:     "User",
		Score:        50,
		MaxScore:     model.MaxTotalScore,
		Percentage:   52,
		RiskCategory: "Medium",
		Level:        2,
		LevelName:    "Exploring",
		Description:  "Test description",
		Recommendations: []string{
			"Test recommendation",
		},
		SectionScores: map[string]int{
			"section_0": 8, "section_1": 8, "section_2": 8,
			"section_3": 8, "section_4": 8, "section_5": 8,
		},
		Phone:       "555-1234",
		CompanySize: "10-24 employees",
	}
	return c.SendReport(ctx, payload)
}
