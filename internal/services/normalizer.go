package services

import (
	"regexp"
	"strconv"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// defaultATSScore is used when no parseable score appears in the prose.
// Deliberately not zero: an unparseable score should not read as total
// failure.
const defaultATSScore = 70

// Section heading cues the model is instructed to emit. Matching is by
// substring, so surrounding markdown decoration does not break it.
const (
	cueScore        = "ATS compatibility score:"
	cueStrengths    = "Key strengths:"
	cueImprovements = "Areas for improvement:"
	cueSummary      = "Overall impression:"
)

var (
	firstIntPattern = regexp.MustCompile(`\d+`)
	bulletPattern   = regexp.MustCompile(`^[-•]\s*`)
)

// NormalizeAnalysisText reduces free-text prose to the fixed local shape in
// a single forward pass. It is a pure function of its input. When none of
// the cue phrases appear it silently yields empty lists and the default
// score; that fragility is inherent to prose parsing.
func NormalizeAnalysisText(text string) *models.NormalizedAnalysis {
	result := &models.NormalizedAnalysis{
		Score:        defaultATSScore,
		Strengths:    []string{},
		Improvements: []string{},
	}

	currentSection := ""

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.Contains(line, cueScore):
			if match := firstIntPattern.FindString(line); match != "" {
				if score, err := strconv.Atoi(match); err == nil {
					result.Score = score
				}
			}
		case strings.Contains(line, cueStrengths):
			currentSection = "strengths"
		case strings.Contains(line, cueImprovements):
			currentSection = "improvements"
		case strings.Contains(line, cueSummary):
			currentSection = "summary"
		case strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "•"):
			point := strings.TrimSpace(bulletPattern.ReplaceAllString(trimmed, ""))
			if point == "" {
				continue
			}
			// Bullets outside the two list sections are ignored.
			switch currentSection {
			case "strengths":
				result.Strengths = append(result.Strengths, point)
			case "improvements":
				result.Improvements = append(result.Improvements, point)
			}
		case currentSection == "summary" && trimmed != "" && !strings.Contains(line, ":"):
			// First colon-free line wins; the colon check avoids
			// re-capturing a heading.
			if result.Summary == "" {
				result.Summary = trimmed
			}
		}
	}

	return result
}
