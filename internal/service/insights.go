package service

import "readiness/internal/model"

// Section score below this means the section needs attention in insights
const insightThreshold = 8

// Insight text shown on the results screen
var (
	leadershipInsight = model.Insight{
		Title:       "Leadership Engagement Needed",
		Description: "Your organization requires stronger executive involvement to drive successful AI transformation.",
		Priority:    model.PriorityHigh,
	}
	dataInsight = model.Insight{
		Title:       "Data Infrastructure Priority",
		Description: "Consolidate data systems and establish governance to enable effective AI initiatives.",
		Priority:    model.PriorityHigh,
	}
	securityInsight = model.Insight{
		Title:       "Security Foundation Critical",
		Description: "Address cybersecurity gaps before implementing AI solutions to protect business assets.",
		Priority:    model.PriorityHigh,
	}
	workforceInsight = model.Insight{
		Title:       "Workforce Transformation",
		Description: "Invest in change management and training to build employee confidence in new technologies.",
		Priority:    model.PriorityMedium,
	}
)

// BusinessInsights derives the short on-screen insight list from section
// scores. Rules are evaluated in fixed order and the result is truncated to
// three entries, not sorted by priority. The thresholds here are independent
// of the recommendation thresholds; the two must not be unified.
func BusinessInsights(sectionScores map[string]int, percentage int) []model.Insight {
	var insights []model.Insight

	if score, ok := sectionScores[model.SectionKey(0)]; ok && score < insightThreshold {
		insights = append(insights, leadershipInsight)
	}
	if score, ok := sectionScores[model.SectionKey(1)]; ok && score < insightThreshold {
		insights = append(insights, dataInsight)
	}
	if score, ok := sectionScores[model.SectionKey(2)]; ok && score < insightThreshold {
		insights = append(insights, securityInsight)
	}
	if score, ok := sectionScores[model.SectionKey(4)]; ok && score < insightThreshold {
		insights = append(insights, workforceInsight)
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

// ReportInsights derives the narrative bullets for the exported report. This
// is a distinct flavor from BusinessInsights: it also reacts to a leadership
// strength signal and to the overall percentage, and caps at four entries.
func ReportInsights(sectionScores map[string]int, percentage int) []string {
	if sectionScores == nil {
		return []string{"Survey data analysis was not available for detailed insights."}
	}

	var insights []string

	if score, ok := sectionScores[model.SectionKey(0)]; ok {
		if score < insightThreshold {
			insights = append(insights, "Leadership engagement is critical for digital transformation success. Consider establishing an executive steering committee to drive AI initiatives.")
		} else if score >= 12 {
			insights = append(insights, "Your strong leadership support provides excellent foundation for AI adoption and should be leveraged to accelerate transformation.")
		}
	}
	if score, ok := sectionScores[model.SectionKey(1)]; ok && score < insightThreshold {
		insights = append(insights, "Data infrastructure gaps will significantly impact AI effectiveness. Prioritize data governance and integration before scaling AI initiatives.")
	}
	if score, ok := sectionScores[model.SectionKey(2)]; ok && score < insightThreshold {
		insights = append(insights, "Cybersecurity vulnerabilities pose immediate risks to your business. Address fundamental security gaps before implementing AI solutions.")
	}

	if percentage < 30 {
		insights = append(insights, "Your organization has significant opportunity for competitive advantage by addressing these foundational gaps quickly.")
	} else if percentage > 70 {
		insights = append(insights, "Your advanced readiness position enables you to focus on innovation and maintaining competitive leadership.")
	}

	if len(insights) > 4 {
		insights = insights[:4]
	}
	return insights
}
