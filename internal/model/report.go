package model

// ReportPayload is the single flat record handed to the email and PDF
// collaborators. It is the merge of lead, contact, score result and raw
// answers; contact fields win over lead fields on collision. Constructed
// once per completed session, never persisted.
type ReportPayload struct {
	Organization string `json:"organization"`
	UserEmail    string `json:"user_email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	CompanySize  string `json:"companySize,omitempty"`
	Phone        string `json:"phone,omitempty"`

	Score           int            `json:"score"`
	MaxScore        int            `json:"max_score"`
	Percentage      int            `json:"percentage"`
	Level           int            `json:"level"`
	LevelName       string         `json:"levelName"`
	RiskCategory    string         `json:"risk_category"`
	Description     string         `json:"description"`
	Recommendations []string       `json:"recommendations"`
	KeyRisks        []string       `json:"key_risks"`
	SectionScores   map[string]int `json:"sectionScores"`
	SurveyData      AnswerSet      `json:"surveyData"`
}
