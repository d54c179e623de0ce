package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"clearprd/internal/llm"
	"clearprd/internal/models"
	"clearprd/internal/prompts"
)

// PRDSynthesizer generates the final PRD document from an idea and the
// user's answers to the clarifying questions.
type PRDSynthesizer struct {
	llm     llm.Client
	prompts prompts.Set
}

// NewPRDSynthesizer returns a synthesizer using the given client and
// template set. A nil client is permitted and reports a configuration error
// on use.
func NewPRDSynthesizer(client llm.Client, set prompts.Set) *PRDSynthesizer {
	return &PRDSynthesizer{llm: client, prompts: set}
}

// Synthesize makes exactly one LLM call and returns the generated Markdown
// verbatim. The output is free-form document text for a human/AI consumer;
// no structural validation is applied. An empty answer map is accepted.
func (s *PRDSynthesizer) Synthesize(ctx context.Context, idea string, answers map[string]string) (string, error) {
	if s.llm == nil {
		return "", models.NewConfigError("LLM API key not configured")
	}

	prompt := buildSynthesisPrompt(idea, answers)
	text, err := s.llm.Complete(ctx, s.prompts.PRDGenerator, prompt)
	if err != nil {
		return "", models.NewUpstreamError("LLM request failed", err)
	}
	return text, nil
}

// buildSynthesisPrompt renders the idea and the answer map into the user
// prompt. Answers render as "- key: value" bullets; keys are sorted so the
// prompt is deterministic for a given answer map.
func buildSynthesisPrompt(idea string, answers map[string]string) string {
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %s\n", k, answers[k])
	}

	return fmt.Sprintf(`Generate a comprehensive PRD for this app idea:

## Original Idea:
%s

## User's Answers to Clarifying Questions:
%s
Generate the full PRD now.`, idea, b.String())
}
