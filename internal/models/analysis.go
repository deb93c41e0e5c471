package models

type AnalysisMode string

const (
	ModeStructured AnalysisMode = "structured"
	ModeText       AnalysisMode = "text"
)

// AnalysisResult is a tagged variant: exactly one of the branches below is
// populated, discriminated by Mode.
type AnalysisResult struct {
	Mode       AnalysisMode        `json:"mode"`
	Structured *ResumeAnalysis     `json:"structured,omitempty"`
	Text       *TextAnalysis       `json:"text,omitempty"`
	Normalized *NormalizedAnalysis `json:"normalized,omitempty"`
}

// ResumeAnalysis is the structured critique returned by the model. All
// scores are integers on a 0-100 scale; responses outside that range fail
// schema validation instead of being clamped.
type ResumeAnalysis struct {
	Overall  OverallAnalysis  `json:"overall"`
	Sections AnalysisSections `json:"sections"`
	ATS      ATSAnalysis      `json:"ats"`
	Skills   SkillsAnalysis   `json:"skills"`
}

type OverallAnalysis struct {
	Summary string `json:"summary"`
	Score   int    `json:"score"`
}

type AnalysisSections struct {
	Strengths    []Strength    `json:"strengths"`
	Improvements []Improvement `json:"improvements"`
	Keywords     []Keyword     `json:"keywords"`
}

type Strength struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact,omitempty"`
}

type Improvement struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type Keyword struct {
	Word      string `json:"word"`
	Relevance string `json:"relevance,omitempty"`
	Context   string `json:"context,omitempty"`
}

type ATSAnalysis struct {
	Compatibility   ATSCompatibility `json:"compatibility"`
	Recommendations []string         `json:"recommendations"`
}

type ATSCompatibility struct {
	Score       int    `json:"score"`
	Format      string `json:"format"`
	Parsability string `json:"parsability"`
}

type SkillsAnalysis struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Missing   []string `json:"missing,omitempty"`
}

// TextAnalysis is the free-text critique: raw prose plus the model-reported
// safety classification per harm category.
type TextAnalysis struct {
	Text          string         `json:"text"`
	SafetyRatings []SafetyRating `json:"safetyRatings"`
}

type SafetyRating struct {
	Category         string  `json:"category"`
	Probability      string  `json:"probability"`
	ProbabilityScore float32 `json:"probabilityScore"`
	Severity         string  `json:"severity"`
	SeverityScore    float32 `json:"severityScore"`
	Blocked          bool    `json:"blocked,omitempty"`
}

// NormalizedAnalysis is the fixed local shape reduced from free-text prose.
type NormalizedAnalysis struct {
	Summary      string   `json:"summary"`
	Score        int      `json:"score"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}
