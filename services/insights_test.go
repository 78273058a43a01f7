package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampStars(t *testing.T) {
	assert.Equal(t, 1, ClampStars(-3))
	assert.Equal(t, 1, ClampStars(0))
	assert.Equal(t, 3, ClampStars(3))
	assert.Equal(t, 5, ClampStars(5))
	assert.Equal(t, 5, ClampStars(12))
}

func TestCleanJSONResponse(t *testing.T) {
	fenced := "```json\n{\"stars\": 4}\n```"
	assert.Equal(t, `{"stars": 4}`, cleanJSONResponse(fenced))
	assert.Equal(t, `{"stars": 4}`, cleanJSONResponse(`{"stars": 4}`))
}

func TestFallbackInsight(t *testing.T) {
	insight := FallbackInsight()

	assert.Equal(t, []string{"Error al procesar datos"}, insight.Findings)
	assert.Equal(t, "No se pudo generar un análisis en este momento.", insight.Interpretation)
	assert.NotEmpty(t, insight.Alerts)
	assert.NotEmpty(t, insight.Recommendations)
	assert.NotNil(t, insight.SuggestedQuestions)
	assert.Empty(t, insight.SuggestedQuestions)
}
