package model

import (
	"fmt"
	"time"
)

// Step tracks where a session is in the capture flow
type Step string

const (
	StepLead    Step = "lead"    // created, survey not started
	StepSurvey  Step = "survey"  // answering questions
	StepContact Step = "contact" // all 24 answers in, awaiting contact details
	StepResults Step = "results" // finalized, score computed
)

// EmailStatus tracks the outbound report email for a session
type EmailStatus string

const (
	EmailIdle    EmailStatus = "idle"
	EmailSending EmailStatus = "sending"
	EmailSent    EmailStatus = "sent"
	EmailFailed  EmailStatus = "failed"
)

// Lead is the initial capture step: company and a contact email
type Lead struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
}

// Contact is the final capture step before results are shown
type Contact struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email,omitempty"`
	CompanySize           string `json:"companySize"`
	Phone                 string `json:"phone,omitempty"`
	AgreedToReceiveReport bool   `json:"agreedToReceiveReport"`
}

// AnswerSet maps section key -> question key -> answer value [0,4].
// Keys follow the section_N / question_N convention.
type AnswerSet map[string]map[string]int

// Record stores one answer, overwriting any prior value for the slot.
// Out-of-range input is rejected at this boundary; there is no removal.
func (a AnswerSet) Record(sectionIndex, questionIndex, value int) error {
	if sectionIndex < 0 || sectionIndex >= SectionCount {
		return fmt.Errorf("section index %d out of range [0,%d]", sectionIndex, SectionCount-1)
	}
	if questionIndex < 0 || questionIndex >= QuestionsPerSection {
		return fmt.Errorf("question index %d out of range [0,%d]", questionIndex, QuestionsPerSection-1)
	}
	if value < 0 || value > MaxAnswerValue {
		return fmt.Errorf("answer value %d out of range [0,%d]", value, MaxAnswerValue)
	}

	key := SectionKey(sectionIndex)
	if a[key] == nil {
		a[key] = make(map[string]int, QuestionsPerSection)
	}
	a[key][QuestionKey(questionIndex)] = value
	return nil
}

// SectionComplete reports whether every question slot in the section is populated
func (a AnswerSet) SectionComplete(sectionIndex int) bool {
	section := a[SectionKey(sectionIndex)]
	if section == nil {
		return false
	}
	for q := 0; q < QuestionsPerSection; q++ {
		if _, ok := section[QuestionKey(q)]; !ok {
			return false
		}
	}
	return true
}

// Complete reports whether all six sections are complete (24 answers)
func (a AnswerSet) Complete() bool {
	for s := 0; s < SectionCount; s++ {
		if !a.SectionComplete(s) {
			return false
		}
	}
	return true
}

// AnswerCount returns the number of recorded answers
func (a AnswerSet) AnswerCount() int {
	n := 0
	for _, section := range a {
		n += len(section)
	}
	return n
}

// Session is the explicit per-respondent state object. It owns the lead,
// contact record and answer set for the lifetime of one assessment run and
// is discarded when the cache TTL expires. Nothing here is ever written to
// durable storage.
type Session struct {
	ID          string       `json:"id"`
	Step        Step         `json:"step"`
	Lead        Lead         `json:"lead"`
	Contact     *Contact     `json:"contact,omitempty"`
	Answers     AnswerSet    `json:"answers"`
	Result      *ScoreResult `json:"result,omitempty"`
	EmailStatus EmailStatus  `json:"emailStatus"`
	EmailError  string       `json:"emailError,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}
