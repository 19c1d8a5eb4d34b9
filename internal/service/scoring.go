package service

import (
	"math"

	"readiness/internal/model"
)

// Readiness level bands, inclusive on the upper percentage bound
type levelBand struct {
	maxPercentage int
	level         int
	name          string
	riskCategory  string
	description   string
}

var levelBands = []levelBand{
	{24, 1, "Emerging", "High", "Your organization is in the early stages of AI and cybersecurity readiness. Focus on foundational elements before advancing to more complex initiatives."},
	{49, 2, "Exploring", "Medium", "You've begun exploring AI and cybersecurity initiatives but need to strengthen governance and infrastructure to scale effectively."},
	{74, 3, "Advancing", "Low", "Your organization shows good progress in AI and cybersecurity readiness. Focus on optimization and scaling your existing initiatives."},
	{100, 4, "Leading", "Low", "Your organization demonstrates advanced AI and cybersecurity capabilities. Focus on innovation and maintaining your competitive edge."},
}

// Per-section recommendation text, indexed by section. Weak fires below 50%
// of the section maximum, strong at 75% and above.
var weakRecommendations = [model.SectionCount]string{
	"Establish an AI steering committee with executive sponsorship to drive strategic alignment and resource allocation",
	"Implement a data governance framework and consolidate data systems to create a reliable foundation for AI initiatives",
	"Prioritize cybersecurity investments including MFA, endpoint protection, and employee security awareness training",
	"Develop comprehensive AI usage policies and establish an AI governance framework to ensure responsible adoption",
	"Launch a comprehensive change management program with targeted training to build employee confidence in new technologies",
	"Implement regular assessment processes and create documented procedures for continuous improvement",
}

var strongRecommendations = [model.SectionCount]string{
	"Leverage your strong leadership support to accelerate AI adoption across the organization",
	"Advanced your data infrastructure with real-time analytics and automated data quality controls",
	"Implement advanced threat detection and automated security response systems",
	"Create an AI innovation lab to explore emerging technologies and maintain competitive advantage",
	"Establish an internal AI ambassador program to scale best practices and drive continuous learning",
	"Develop advanced analytics capabilities to measure and optimize ROI from technology investments",
}

const (
	// FoundationalRecommendation leads the list when overall readiness is below 30%
	FoundationalRecommendation = "Focus on foundational cybersecurity and data management before investing in advanced AI solutions"
	// RoadmapRecommendation closes the list when overall readiness is above 70%
	RoadmapRecommendation = "Develop a strategic roadmap for AI innovation and competitive differentiation"

	maxRecommendations = 8
	keyRiskCount       = 3
)

// ComputeScore aggregates an answer set into the immutable score result.
// It is total over any in-contract input, including an empty set. Every
// section contributes an entry to SectionScores even when unanswered.
func ComputeScore(answers model.AnswerSet) *model.ScoreResult {
	sectionScores := make(map[string]int, model.SectionCount)
	totalScore := 0
	for s := 0; s < model.SectionCount; s++ {
		key := model.SectionKey(s)
		sum := 0
		for _, v := range answers[key] {
			sum += v
		}
		sectionScores[key] = sum
		totalScore += sum
	}

	percentage := int(math.Round(float64(totalScore) / float64(model.MaxTotalScore) * 100))

	band := levelBands[len(levelBands)-1]
	for _, b := range levelBands {
		if percentage <= b.maxPercentage {
			band = b
			break
		}
	}

	recommendations := DeriveRecommendations(sectionScores, percentage)
	keyRisks := recommendations
	if len(keyRisks) > keyRiskCount {
		keyRisks = keyRisks[:keyRiskCount]
	}

	return &model.ScoreResult{
		SectionScores:   sectionScores,
		TotalScore:      totalScore,
		Score:           totalScore,
		MaxScore:        model.MaxTotalScore,
		Percentage:      percentage,
		Level:           band.level,
		LevelName:       band.name,
		RiskCategory:    band.riskCategory,
		Description:     band.description,
		Recommendations: recommendations,
		KeyRisks:        keyRisks,
	}
}

// DeriveRecommendations walks the six sections in fixed order, collecting
// weak/strong guidance per section performance, frames the list with the
// overall-percentage entries, then dedupes preserving first occurrence and
// truncates. Output is order-stable for identical input; the PDF layer
// numbers entries positionally.
func DeriveRecommendations(sectionScores map[string]int, percentage int) []string {
	var recommendations []string

	for s := 0; s < model.SectionCount; s++ {
		score, ok := sectionScores[model.SectionKey(s)]
		if !ok {
			continue
		}
		sectionPct := float64(score) / float64(model.MaxSectionScore) * 100
		if sectionPct < 50 {
			recommendations = append(recommendations, weakRecommendations[s])
		} else if sectionPct >= 75 {
			recommendations = append(recommendations, strongRecommendations[s])
		}
	}

	if percentage < 30 {
		recommendations = append([]string{FoundationalRecommendation}, recommendations...)
	} else if percentage > 70 {
		recommendations = append(recommendations, RoadmapRecommendation)
	}

	seen := make(map[string]bool, len(recommendations))
	unique := make([]string, 0, len(recommendations))
	for _, rec := range recommendations {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		unique = append(unique, rec)
	}

	if len(unique) > maxRecommendations {
		unique = unique[:maxRecommendations]
	}
	return unique
}
