package model

import (
	"fmt"
	"time"
)

// Scoring dimensions of the fixed assessment
const (
	SectionCount        = 6
	QuestionsPerSection = 4
	MaxAnswerValue      = 4
	MaxSectionScore     = QuestionsPerSection * MaxAnswerValue // 16
	MaxTotalScore       = SectionCount * MaxSectionScore       // 96
)

// SectionKey returns the canonical key for a section index, e.g. "section_0"
func SectionKey(index int) string {
	return fmt.Sprintf("section_%d", index)
}

// QuestionKey returns the canonical key for a question index, e.g. "question_2"
func QuestionKey(index int) string {
	return fmt.Sprintf("question_%d", index)
}

// SectionDisplayNames maps section keys to the names used in reports and emails
var SectionDisplayNames = map[string]string{
	"section_0": "Business Strategy & AI Vision",
	"section_1": "Data Management & Infrastructure",
	"section_2": "Cybersecurity Confidence",
	"section_3": "AI-Specific Risk & Governance",
	"section_4": "Workforce & Change Readiness",
	"section_5": "Ongoing Improvement",
}

// Option is one of the five answer choices for a question
type Option struct {
	Value       int    `json:"value" bson:"value"` // 0-4
	Label       string `json:"label" bson:"label"`
	Description string `json:"description" bson:"description"`
}

// Question is a single assessment question with its fixed options
type Question struct {
	Text    string   `json:"text" bson:"text"`
	Options []Option `json:"options" bson:"options"`
}

// Section is one of the six fixed readiness categories
type Section struct {
	Title     string     `json:"title" bson:"title"`
	Questions []Question `json:"questions" bson:"questions"`
}

// Questionnaire is the full fixed assessment definition. It is content, not
// user data: the only document this service ever stores in MongoDB.
type Questionnaire struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Title     string    `json:"title" bson:"title"`
	Sections  []Section `json:"sections" bson:"sections"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}
