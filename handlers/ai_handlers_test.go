package handlers

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusLBDev/vetsoft/forecast"
)

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, extractJSON(`{"a":1}`))
	assert.Equal(t, "", extractJSON("no json here"))
}

func TestParseInsightsResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text(`{"summary":"Vendas estáveis.","positive_factors":["demanda constante"],"negative_factors":["estoque baixo de ração"]}`)},
			},
		}},
	}

	analysis, err := parseInsightsResponse(resp)
	require.NoError(t, err)

	assert.Equal(t, "Vendas estáveis.", analysis.Summary)
	assert.Equal(t, []string{"demanda constante"}, analysis.PositiveFactors)
	assert.Equal(t, []string{"estoque baixo de ração"}, analysis.NegativeFactors)
}

func TestParseInsightsResponseEmpty(t *testing.T) {
	_, err := parseInsightsResponse(&genai.GenerateContentResponse{})
	assert.Error(t, err)
}

func TestConstructInsightsPrompt(t *testing.T) {
	result := &forecast.Result{
		Forecast: []forecast.Point{
			{Date: "2024-01-21", PredictedSales: 100},
			{Date: "2024-01-22", PredictedSales: 100},
		},
		Summary: forecast.Summary,
		InventorySuggestions: []forecast.Suggestion{{
			ProductName:          "Ração Premium",
			CurrentStock:         10,
			EstimatedSales30Days: 3000,
			Suggestion:           "Estoque recomendado: 2990 unidades.",
		}},
	}

	prompt := constructInsightsPrompt(result)

	assert.Contains(t, prompt, "Ração Premium")
	assert.Contains(t, prompt, "2024-01-21")
	assert.Contains(t, prompt, "minified JSON object")
}
