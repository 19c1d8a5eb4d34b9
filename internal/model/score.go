package model

// ScoreResult is the immutable outcome of scoring a completed (or partial)
// answer set. Once computed it is only ever copied, never mutated.
type ScoreResult struct {
	SectionScores   map[string]int `json:"sectionScores"`
	TotalScore      int            `json:"totalScore"`
	Score           int            `json:"score"` // alias of TotalScore kept for the report payload
	MaxScore        int            `json:"max_score"`
	Percentage      int            `json:"percentage"`
	Level           int            `json:"level"` // 1-4
	LevelName       string         `json:"levelName"`
	RiskCategory    string         `json:"risk_category"`
	Description     string         `json:"description"`
	Recommendations []string       `json:"recommendations"`
	KeyRisks        []string       `json:"key_risks"`
}

// Insight priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// Insight is a short narrative takeaway shown on the results screen
type Insight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}
