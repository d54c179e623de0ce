// Package service implements the LLM-facing business logic: idea analysis
// and PRD synthesis.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"clearprd/internal/llm"
	"clearprd/internal/models"
	"clearprd/internal/prompts"
)

// IdeaAnalyzer turns a one-line app idea into a validated list of clarifying
// questions via a single LLM round trip.
type IdeaAnalyzer struct {
	llm     llm.Client
	prompts prompts.Set
}

// NewIdeaAnalyzer returns an analyzer using the given client and template
// set. A nil client is permitted and reports a configuration error on use.
func NewIdeaAnalyzer(client llm.Client, set prompts.Set) *IdeaAnalyzer {
	return &IdeaAnalyzer{llm: client, prompts: set}
}

// Analyze makes exactly one LLM call and parses the reply into clarifying
// questions. Any missing field fails the whole call; there is no partial
// result.
func (a *IdeaAnalyzer) Analyze(ctx context.Context, idea string) ([]models.ClarifyingQuestion, error) {
	if a.llm == nil {
		return nil, models.NewConfigError("LLM API key not configured")
	}

	prompt := "Analyze this app idea and generate clarifying questions:\n\n" + idea
	raw, err := a.llm.Complete(ctx, a.prompts.QuestionGenerator, prompt)
	if err != nil {
		return nil, models.NewUpstreamError("LLM request failed", err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		return nil, models.NewUpstreamError("failed to parse LLM response", err)
	}
	return questions, nil
}

// parseQuestions parses the model reply into questions. The reply must be a
// single JSON object, optionally wrapped in exactly one Markdown code fence;
// anything else is a parse failure rather than something to silently repair.
func parseQuestions(raw string) ([]models.ClarifyingQuestion, error) {
	payload, err := extractJSONObject(raw)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []struct {
			ID       string `json:"id"`
			Question string `json:"question"`
			Category string `json:"category"`
			Options  []struct {
				Label string `json:"label"`
				Value string `json:"value"`
			} `json:"options"`
		} `json:"questions"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(parsed.Questions) == 0 {
		return nil, fmt.Errorf("response contains no questions")
	}

	questions := make([]models.ClarifyingQuestion, 0, len(parsed.Questions))
	for i, q := range parsed.Questions {
		if q.ID == "" || q.Question == "" || q.Category == "" {
			return nil, fmt.Errorf("question %d is missing a required field", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %q has no options", q.ID)
		}
		opts := make([]models.QuestionOption, 0, len(q.Options))
		for j, opt := range q.Options {
			if opt.Label == "" || opt.Value == "" {
				return nil, fmt.Errorf("question %q option %d is missing a required field", q.ID, j)
			}
			opts = append(opts, models.QuestionOption{Label: opt.Label, Value: opt.Value})
		}
		questions = append(questions, models.ClarifyingQuestion{
			ID:       q.ID,
			Question: q.Question,
			Category: q.Category,
			Options:  opts,
		})
	}
	return questions, nil
}

// extractJSONObject unwraps at most one Markdown code fence and verifies the
// remainder looks like a single JSON object.
func extractJSONObject(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		body := strings.TrimPrefix(s, "```")
		body = strings.TrimPrefix(body, "json")
		if !strings.HasSuffix(body, "```") {
			return "", fmt.Errorf("unterminated code fence")
		}
		s = strings.TrimSpace(strings.TrimSuffix(body, "```"))
		if strings.Contains(s, "```") {
			return "", fmt.Errorf("more than one code fence in response")
		}
	}
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return "", fmt.Errorf("response is not a JSON object")
	}
	return s, nil
}
