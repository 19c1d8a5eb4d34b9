package model

// DefaultQuestionnaire returns the built-in assessment content: six sections of
// four questions each, every question answered on a labeled 0-4 scale. cmd/seed
// writes this into MongoDB; the questionnaire service falls back to it when no
// seeded document exists.
func DefaultQuestionnaire() *Questionnaire {
	return &Questionnaire{
		Title: "AI & Cybersecurity Readiness Assessment",
		Sections: []Section{
			{
				Title: "Business Strategy and AI Vision",
				Questions: []Question{
					{
						Text: "How involved is leadership in shaping the company's approach to AI and cybersecurity?",
						Options: []Option{
							{Value: 0, Label: "Not involved", Description: "Leadership hasn't addressed this"},
							{Value: 1, Label: "Aware but not active", Description: "Leadership knows it exists"},
							{Value: 2, Label: "Occasionally involved", Description: "Discussed in some meetings"},
							{Value: 3, Label: "Sets goals and reviews", Description: "Leadership tracks progress"},
							{Value: 4, Label: "Core to strategy", Description: "Integrated into business planning"},
						},
					},
					{
						Text: "How clearly have you defined what success with AI looks like for your business?",
						Options: []Option{
							{Value: 0, Label: "No clear goals", Description: "Haven't defined success"},
							{Value: 1, Label: "General ideas", Description: "Vague sense of benefits"},
							{Value: 2, Label: "Basic objectives", Description: "Some specific targets"},
							{Value: 3, Label: "Clear outcomes", Description: "Defined business goals"},
							{Value: 4, Label: "Comprehensive targets", Description: "Detailed metrics and timelines"},
						},
					},
					{
						Text: "Who is accountable for driving AI initiatives and ensuring cybersecurity in your organization?",
						Options: []Option{
							{Value: 0, Label: "No clear ownership", Description: "Responsibility is unclear"},
							{Value: 1, Label: "Informal ownership", Description: "Ad-hoc responsibility"},
							{Value: 2, Label: "Single owner", Description: "One person accountable"},
							{Value: 3, Label: "Dedicated team", Description: "Small group with clear roles"},
							{Value: 4, Label: "Executive sponsor", Description: "C-level ownership and committee"},
						},
					},
					{
						Text: "How often do leadership discussions include AI and cybersecurity planning?",
						Options: []Option{
							{Value: 0, Label: "Never discussed", Description: "Not on the agenda"},
							{Value: 1, Label: "Rarely mentioned", Description: "Occasional references"},
							{Value: 2, Label: "Sometimes included", Description: "Periodic discussions"},
							{Value: 3, Label: "Regularly covered", Description: "Standard meeting topic"},
							{Value: 4, Label: "Always integrated", Description: "Core to every major decision"},
						},
					},
				},
			},
			{
				Title: "Data Management and Infrastructure",
				Questions: []Question{
					{
						Text: "How organized and accessible is your business data for making decisions?",
						Options: []Option{
							{Value: 0, Label: "Very scattered", Description: "Data in many places, hard to find"},
							{Value: 1, Label: "Somewhat organized", Description: "We know where data lives"},
							{Value: 2, Label: "Mostly centralized", Description: "Main systems unified"},
							{Value: 3, Label: "Well organized", Description: "Data is clean and accessible"},
							{Value: 4, Label: "Fully unified", Description: "Single source of truth"},
						},
					},
					{
						Text: "How confident are you that your business systems work together seamlessly?",
						Options: []Option{
							{Value: 0, Label: "Many disconnected systems", Description: "Information silos exist"},
							{Value: 1, Label: "Basic connections", Description: "Some systems talk to each other"},
							{Value: 2, Label: "Partial integration", Description: "Key systems connected"},
							{Value: 3, Label: "Well connected", Description: "Most systems integrated"},
							{Value: 4, Label: "Fully integrated", Description: "Seamless data flow"},
						},
					},
					{
						Text: "How confident are you that your company could recover critical data quickly after a major IT failure or cyberattack?",
						Options: []Option{
							{Value: 0, Label: "No recovery plan", Description: "Haven't addressed this"},
							{Value: 1, Label: "Basic backups only", Description: "We have backups but never tested"},
							{Value: 2, Label: "Tested occasionally", Description: "Recovery tested periodically"},
							{Value: 3, Label: "Regularly tested", Description: "Recovery verified frequently"},
							{Value: 4, Label: "Fully automated recovery", Description: "Reliable, tested systems"},
						},
					},
					{
						Text: "How well do you understand who has access to your sensitive business information?",
						Options: []Option{
							{Value: 0, Label: "No clear visibility", Description: "Access is untracked"},
							{Value: 1, Label: "Basic understanding", Description: "We know some access levels"},
							{Value: 2, Label: "Documented access", Description: "Most access is recorded"},
							{Value: 3, Label: "Well documented", Description: "Comprehensive access records"},
							{Value: 4, Label: "Fully managed", Description: "Access controlled and reviewed"},
						},
					},
				},
			},
			{
				Title: "Cybersecurity Confidence",
				Questions: []Question{
					{
						Text: "How confident are you that only authorized people can access your business systems?",
						Options: []Option{
							{Value: 0, Label: "Passwords only", Description: "Basic protection"},
							{Value: 1, Label: "Some restrictions", Description: "Sensitive areas limited"},
							{Value: 2, Label: "Secure logins", Description: "Most systems protected"},
							{Value: 3, Label: "Controlled access", Description: "All business systems secured"},
							{Value: 4, Label: "Advanced security", Description: "Multiple layers of protection"},
						},
					},
					{
						Text: "How proactive are you in keeping your business systems protected against new threats?",
						Options: []Option{
							{Value: 0, Label: "No schedule", Description: "Ad-hoc maintenance"},
							{Value: 1, Label: "Inconsistent", Description: "Irregular updates"},
							{Value: 2, Label: "Basic schedule", Description: "Regular maintenance"},
							{Value: 3, Label: "Proactive monitoring", Description: "Continuous protection"},
							{Value: 4, Label: "Automated defense", Description: "Real-time threat response"},
						},
					},
					{
						Text: "How recently have you assessed your cybersecurity risks?",
						Options: []Option{
							{Value: 0, Label: "Never assessed", Description: "No formal evaluation"},
							{Value: 1, Label: "Over a year ago", Description: "Outdated assessment"},
							{Value: 2, Label: "Within the past year", Description: "Slightly dated"},
							{Value: 3, Label: "Within 6 months", Description: "Recent evaluation"},
							{Value: 4, Label: "Within 3 months", Description: "Current assessment"},
						},
					},
					{
						Text: "How prepared are you to respond to a cybersecurity incident?",
						Options: []Option{
							{Value: 0, Label: "No plan", Description: "Would react in the moment"},
							{Value: 1, Label: "Basic plan", Description: "Documented but untested"},
							{Value: 2, Label: "Developed plan", Description: "Reviewed and understood"},
							{Value: 3, Label: "Tested plan", Description: "Regular practice drills"},
							{Value: 4, Label: "Mature response", Description: "Comprehensive and practiced"},
						},
					},
				},
			},
			{
				Title: "AI-Specific Risk and Governance",
				Questions: []Question{
					{
						Text: "How do you ensure employees use AI tools safely with your business information?",
						Options: []Option{
							{Value: 0, Label: "No guidance", Description: "Employees use AI freely"},
							{Value: 1, Label: "Informal guidance", Description: "Verbal warnings only"},
							{Value: 2, Label: "Basic rules", Description: "Some restrictions in place"},
							{Value: 3, Label: "Clear policies", Description: "Comprehensive guidelines"},
							{Value: 4, Label: "Strict enforcement", Description: "Technical controls in place"},
						},
					},
					{
						Text: "How carefully do you evaluate AI tools before employees use them?",
						Options: []Option{
							{Value: 0, Label: "No review process", Description: "Anyone can use any AI tool"},
							{Value: 1, Label: "Informal checks", Description: "Basic validation"},
							{Value: 2, Label: "Standard review", Description: "Regular evaluation process"},
							{Value: 3, Label: "Thorough evaluation", Description: "Detailed assessment"},
							{Value: 4, Label: "Rigorous vetting", Description: "Comprehensive validation"},
						},
					},
					{
						Text: "How well do you understand how AI is being used across your organization?",
						Options: []Option{
							{Value: 0, Label: "No visibility", Description: "Unknown usage patterns"},
							{Value: 1, Label: "Limited awareness", Description: "Basic tracking"},
							{Value: 2, Label: "Partial visibility", Description: "Some departments monitored"},
							{Value: 3, Label: "Good visibility", Description: "Most usage tracked"},
							{Value: 4, Label: "Full visibility", Description: "Comprehensive monitoring"},
						},
					},
					{
						Text: "How well are your employees trained on using AI responsibly?",
						Options: []Option{
							{Value: 0, Label: "No training", Description: "Employees learn on their own"},
							{Value: 1, Label: "Basic awareness", Description: "General information shared"},
							{Value: 2, Label: "Formal training", Description: "Structured sessions provided"},
							{Value: 3, Label: "Regular training", Description: "Ongoing education programs"},
							{Value: 4, Label: "Comprehensive program", Description: "Culture of responsible AI use"},
						},
					},
				},
			},
			{
				Title: "Workforce and Change Readiness",
				Questions: []Question{
					{
						Text: "How ready are your employees to adopt new technology and AI tools?",
						Options: []Option{
							{Value: 0, Label: "Very resistant", Description: "Strong opposition to change"},
							{Value: 1, Label: "Somewhat hesitant", Description: "Cautious about new tools"},
							{Value: 2, Label: "Neutral", Description: "Mixed reactions to change"},
							{Value: 3, Label: "Generally open", Description: "Willing to try new things"},
							{Value: 4, Label: "Very enthusiastic", Description: "Eager to innovate"},
						},
					},
					{
						Text: "How are your employees currently using AI tools in their daily work?",
						Options: []Option{
							{Value: 0, Label: "No AI usage", Description: "Not using AI tools"},
							{Value: 1, Label: "Minimal experimentation", Description: "Few individuals exploring"},
							{Value: 2, Label: "Department adoption", Description: "Some teams using AI"},
							{Value: 3, Label: "Widespread use", Description: "Many employees using AI"},
							{Value: 4, Label: "Universal adoption", Description: "AI embedded in workflows"},
						},
					},
					{
						Text: "How prepared are your employees to use technology and AI tools safely and effectively?",
						Options: []Option{
							{Value: 0, Label: "No training provided", Description: "Employees figure it out alone"},
							{Value: 1, Label: "Occasional tips", Description: "Informal guidance only"},
							{Value: 2, Label: "Annual training", Description: "Regular educational sessions"},
							{Value: 3, Label: "Role-specific training", Description: "Tailored education programs"},
							{Value: 4, Label: "Continuous learning", Description: "Ongoing skill development"},
						},
					},
					{
						Text: "How clearly does leadership communicate that technology and AI support employees rather than replace them?",
						Options: []Option{
							{Value: 0, Label: "No communication", Description: "Silence on the topic"},
							{Value: 1, Label: "Rarely mentioned", Description: "Occasional references"},
							{Value: 2, Label: "Sometimes addressed", Description: "Periodic messaging"},
							{Value: 3, Label: "Regularly communicated", Description: "Consistent messaging"},
							{Value: 4, Label: "Consistently reinforced", Description: "Clear, frequent communication"},
						},
					},
				},
			},
			{
				Title: "Ongoing Improvement",
				Questions: []Question{
					{
						Text: "How well documented are your guidelines for using AI and maintaining cybersecurity?",
						Options: []Option{
							{Value: 0, Label: "No documentation", Description: "Guidelines don't exist"},
							{Value: 1, Label: "Draft documents", Description: "In development phase"},
							{Value: 2, Label: "Basic guidelines", Description: "Core rules documented"},
							{Value: 3, Label: "Comprehensive guides", Description: "Detailed policies in place"},
							{Value: 4, Label: "Robust framework", Description: "Complete governance system"},
						},
					},
					{
						Text: "How regularly do you review your AI and cybersecurity practices?",
						Options: []Option{
							{Value: 0, Label: "No reviews", Description: "No formal oversight"},
							{Value: 1, Label: "Informal checks", Description: "Casual reviews only"},
							{Value: 2, Label: "Periodic reviews", Description: "Regular assessments"},
							{Value: 3, Label: "Systematic process", Description: "Structured evaluation"},
							{Value: 4, Label: "Continuous monitoring", Description: "Ongoing oversight"},
						},
					},
					{
						Text: "How clearly is responsibility assigned for data and AI oversight at the executive level?",
						Options: []Option{
							{Value: 0, Label: "Unclear ownership", Description: "Responsibility undefined"},
							{Value: 1, Label: "Shared responsibility", Description: "Distributed accountability"},
							{Value: 2, Label: "Clear owner", Description: "Specific executive accountable"},
							{Value: 3, Label: "Dedicated focus", Description: "Executive with dedicated time"},
							{Value: 4, Label: "Executive sponsorship", Description: "C-level champion and committee"},
						},
					},
					{
						Text: "How effectively do you measure the business impact of your AI and technology investments?",
						Options: []Option{
							{Value: 0, Label: "No measurement", Description: "Don't track ROI"},
							{Value: 1, Label: "Basic tracking", Description: "Simple success metrics"},
							{Value: 2, Label: "Regular measurement", Description: "Periodic performance reviews"},
							{Value: 3, Label: "Advanced analytics", Description: "Comprehensive metrics"},
							{Value: 4, Label: "Sophisticated tracking", Description: "Real-time optimization"},
						},
					},
				},
			},
		},
	}
}
