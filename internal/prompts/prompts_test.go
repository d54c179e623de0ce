package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	t.Run("V1", func(t *testing.T) {
		set, err := Get(VariantV1)
		require.NoError(t, err)

		assert.Equal(t, VariantV1, set.Variant)
		assert.Equal(t, 8, set.MinQuestions)
		assert.Equal(t, 8, set.MaxQuestions)
		assert.Len(t, set.Categories, 7)
		assert.NotContains(t, set.Categories, "ui_style")
		assert.Contains(t, set.QuestionGenerator, "exactly 8")
		assert.NotEmpty(t, set.PRDGenerator)
	})

	t.Run("V2", func(t *testing.T) {
		set, err := Get(VariantV2)
		require.NoError(t, err)

		assert.Equal(t, 8, set.MinQuestions)
		assert.Equal(t, 10, set.MaxQuestions)
		assert.Len(t, set.Categories, 8)
		assert.Contains(t, set.Categories, "ui_style")
		assert.Contains(t, set.QuestionGenerator, "8-10")
	})

	t.Run("Unknown variant", func(t *testing.T) {
		_, err := Get(Variant("v99"))
		assert.Error(t, err)
	})

	t.Run("Default variant resolves", func(t *testing.T) {
		_, err := Get(DefaultVariant)
		assert.NoError(t, err)
	})
}

func TestTemplatesMentionEveryCategory(t *testing.T) {
	for _, v := range []Variant{VariantV1, VariantV2} {
		set, err := Get(v)
		require.NoError(t, err)

		for _, category := range set.Categories {
			assert.True(t, strings.Contains(set.QuestionGenerator, category),
				"variant %s question template should mention category %s", v, category)
		}
	}
}

func TestVariantsShareSynthesisTemplate(t *testing.T) {
	v1, err := Get(VariantV1)
	require.NoError(t, err)
	v2, err := Get(VariantV2)
	require.NoError(t, err)

	assert.Equal(t, v1.PRDGenerator, v2.PRDGenerator)
}
