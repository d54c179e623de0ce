package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clearprd/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns model text verbatim", func(t *testing.T) {
		doc := "# MyApp - Product Requirements Document\n\n## 1. The North Star\n..."
		client := &stubClient{response: doc}
		synth := NewPRDSynthesizer(client, testPrompts(t))

		got, err := synth.Synthesize(ctx, "A habit tracker", map[string]string{"q1": "email_password"})
		require.NoError(t, err)
		assert.Equal(t, doc, got)
		assert.Equal(t, testPrompts(t).PRDGenerator, client.lastSystem)
	})

	t.Run("Prompt carries idea and answers", func(t *testing.T) {
		client := &stubClient{response: "doc"}
		synth := NewPRDSynthesizer(client, testPrompts(t))

		_, err := synth.Synthesize(ctx, "A habit tracker", map[string]string{
			"q2": "feed",
			"q1": "email_password",
		})
		require.NoError(t, err)

		assert.Contains(t, client.lastPrompt, "A habit tracker")
		assert.Contains(t, client.lastPrompt, "- q1: email_password\n")
		assert.Contains(t, client.lastPrompt, "- q2: feed\n")
		// Answers render sorted by key regardless of map order
		assert.Less(t,
			strings.Index(client.lastPrompt, "- q1:"),
			strings.Index(client.lastPrompt, "- q2:"))
	})

	t.Run("Empty answer map is accepted", func(t *testing.T) {
		client := &stubClient{response: "doc"}
		synth := NewPRDSynthesizer(client, testPrompts(t))

		got, err := synth.Synthesize(ctx, "A habit tracker", nil)
		require.NoError(t, err)
		assert.Equal(t, "doc", got)
	})

	t.Run("Nil client is a config error", func(t *testing.T) {
		synth := NewPRDSynthesizer(nil, testPrompts(t))

		_, err := synth.Synthesize(ctx, "idea", nil)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConfig, appErr.Code)
	})

	t.Run("Provider failure is an upstream error", func(t *testing.T) {
		client := &stubClient{err: errors.New("boom")}
		synth := NewPRDSynthesizer(client, testPrompts(t))

		_, err := synth.Synthesize(ctx, "idea", nil)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeUpstream, appErr.Code)
	})
}
