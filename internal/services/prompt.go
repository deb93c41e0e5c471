package services

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildStructuredAnalysisPrompt creates the instruction for structured-output
// mode. The response shape itself is enforced by the response schema.
func (pb *PromptBuilder) BuildStructuredAnalysisPrompt() string {
	return `Please analyze this resume and provide a detailed analysis including:
1. Overall impression and summary
2. Key strengths with specific examples
3. Areas for improvement with actionable recommendations
4. ATS compatibility analysis
5. Key skills assessment (technical, soft, and missing/suggested skills)

All scores are integers on a 0-100 scale. Please be specific and provide actionable insights.`
}

// BuildTextAnalysisPrompt creates the instruction for free-text mode. The
// heading lines are load-bearing: the normalizer keys on them verbatim.
func (pb *PromptBuilder) BuildTextAnalysisPrompt() string {
	return `Please analyze this resume and respond in plain text, structured exactly as follows:

Overall impression:
A short paragraph summarizing the resume.

Key strengths:
- One strength per line, each with specific evidence from the resume.

Areas for improvement:
- One improvement area per line, each with an actionable recommendation.

ATS compatibility score: <integer between 0 and 100>

Use exactly the section headings above. Use "-" for bullet points. Be specific and provide actionable insights.`
}
