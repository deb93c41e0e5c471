package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// analysisSchemaJSON is the local contract for a structured model response.
// A response violating it (including any score outside 0-100) is a hard
// failure of the whole analysis, never clamped or patched up.
const analysisSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["overall", "sections", "ats", "skills"],
  "properties": {
    "overall": {
      "type": "object",
      "required": ["summary", "score"],
      "properties": {
        "summary": {"type": "string"},
        "score": {"type": "integer", "minimum": 0, "maximum": 100}
      }
    },
    "sections": {
      "type": "object",
      "required": ["strengths", "improvements", "keywords"],
      "properties": {
        "strengths": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title", "description"],
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "impact": {"type": "string"}
            }
          }
        },
        "improvements": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["title", "description", "recommendation"],
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "recommendation": {"type": "string"}
            }
          }
        },
        "keywords": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["word"],
            "properties": {
              "word": {"type": "string"},
              "relevance": {"type": "string"},
              "context": {"type": "string"}
            }
          }
        }
      }
    },
    "ats": {
      "type": "object",
      "required": ["compatibility", "recommendations"],
      "properties": {
        "compatibility": {
          "type": "object",
          "required": ["score", "format", "parsability"],
          "properties": {
            "score": {"type": "integer", "minimum": 0, "maximum": 100},
            "format": {"type": "string"},
            "parsability": {"type": "string"}
          }
        },
        "recommendations": {
          "type": "array",
          "items": {"type": "string"}
        }
      }
    },
    "skills": {
      "type": "object",
      "required": ["technical", "soft"],
      "properties": {
        "technical": {"type": "array", "items": {"type": "string"}},
        "soft": {"type": "array", "items": {"type": "string"}},
        "missing": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

// ValidateAnalysisJSON checks a raw structured response against the local
// schema before it is decoded.
func ValidateAnalysisJSON(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return models.NewSchemaError("failed to validate analysis response", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		problems = append(problems, fmt.Sprintf("%s: %s", field, desc.Description()))
	}

	return models.NewSchemaError(
		fmt.Sprintf("analysis response does not match expected shape: %s", strings.Join(problems, "; ")),
		nil,
	)
}

// resumeAnalysisSchema mirrors analysisSchemaJSON for the Gemini structured
// output request.
func resumeAnalysisSchema() *genai.Schema {
	scoreSchema := func(description string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeInteger,
			Description: description,
			Minimum:     genai.Ptr(float64(0)),
			Maximum:     genai.Ptr(float64(100)),
		}
	}

	stringArray := &genai.Schema{
		Type:  genai.TypeArray,
		Items: &genai.Schema{Type: genai.TypeString},
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overall": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"summary": {Type: genai.TypeString, Description: "A comprehensive summary of the resume"},
					"score":   scoreSchema("ATS compatibility score out of 100"),
				},
				Required: []string{"summary", "score"},
			},
			"sections": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"strengths": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"title":       {Type: genai.TypeString},
								"description": {Type: genai.TypeString},
								"impact":      {Type: genai.TypeString},
							},
							Required: []string{"title", "description"},
						},
					},
					"improvements": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"title":          {Type: genai.TypeString},
								"description":    {Type: genai.TypeString},
								"recommendation": {Type: genai.TypeString},
							},
							Required: []string{"title", "description", "recommendation"},
						},
					},
					"keywords": {
						Type: genai.TypeArray,
						Items: &genai.Schema{
							Type: genai.TypeObject,
							Properties: map[string]*genai.Schema{
								"word":      {Type: genai.TypeString},
								"relevance": {Type: genai.TypeString},
								"context":   {Type: genai.TypeString},
							},
							Required: []string{"word"},
						},
					},
				},
				Required: []string{"strengths", "improvements", "keywords"},
			},
			"ats": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"compatibility": {
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"score":       scoreSchema("ATS compatibility score out of 100"),
							"format":      {Type: genai.TypeString},
							"parsability": {Type: genai.TypeString},
						},
						Required: []string{"score", "format", "parsability"},
					},
					"recommendations": stringArray,
				},
				Required: []string{"compatibility", "recommendations"},
			},
			"skills": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"technical": stringArray,
					"soft":      stringArray,
					"missing":   stringArray,
				},
				Required: []string{"technical", "soft"},
			},
		},
		Required: []string{"overall", "sections", "ats", "skills"},
	}
}
