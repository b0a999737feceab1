package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/MatheusLBDev/vetsoft/config"
	"github.com/MatheusLBDev/vetsoft/forecast"
	"github.com/MatheusLBDev/vetsoft/models"
)

// HandleGetForecastInsights runs the sales forecast and asks Gemini for a
// qualitative reading of it: what looks healthy, what needs attention.
// POST /forecast/insights
func HandleGetForecastInsights(c *fiber.Ctx) error {
	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "AI insights are not configured"})
	}

	ctx := context.Background()
	result, err := newForecastEngine().Run(ctx)
	if err != nil {
		return writeForecastError(c, err)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to connect to AI service"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.5-flash-lite")
	resp, err := model.GenerateContent(ctx, genai.Text(constructInsightsPrompt(result)))
	if err != nil {
		log.Printf("Error from Gemini API: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate insights from AI"})
	}

	analysis, err := parseInsightsResponse(resp)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	return c.JSON(models.ForecastInsightsResponse{
		ReportName:  "30-Day Sales Forecast Insights",
		GeneratedAt: time.Now(),
		AiAnalysis:  *analysis,
	})
}

// constructInsightsPrompt renders the forecast into a prompt for Gemini.
func constructInsightsPrompt(result *forecast.Result) string {
	var data strings.Builder
	fmt.Fprintf(&data, "Projected daily sales level: %.2f (flat over the next 30 days, %d points).\n",
		result.Forecast[0].PredictedSales, len(result.Forecast))
	fmt.Fprintf(&data, "Forecast window: %s to %s.\n", result.Forecast[0].Date, result.Forecast[len(result.Forecast)-1].Date)

	if len(result.InventorySuggestions) == 0 {
		data.WriteString("No product is projected to run out of stock in this window.\n")
	}
	for _, s := range result.InventorySuggestions {
		fmt.Fprintf(&data, "Product %q: current stock %d, estimated 30-day demand %d. %s\n",
			s.ProductName, s.CurrentStock, s.EstimatedSales30Days, s.Suggestion)
	}

	jsonFormat := `{"summary":"string","positive_factors":["string",...],"negative_factors":["string",...]}`

	return fmt.Sprintf(`
        You are an analyst for a small veterinary clinic. Based on the sales
        forecast below, write a short business reading for the clinic owner.

        **Today's Date:** %s

        **Forecast Data:**
        %s

        **Required Output:**
        You must provide a single, minified JSON object with the following exact structure. Do not include any markdown formatting, backticks, or explanatory text before or after the JSON object.

        %s
    `, time.Now().Format("2006-01-02"), data.String(), jsonFormat)
}

func extractJSON(rawString string) string {
	start := strings.Index(rawString, "{")
	end := strings.LastIndex(rawString, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return rawString[start : end+1]
}

// parseInsightsResponse pulls the analysis JSON out of a Gemini reply.
func parseInsightsResponse(resp *genai.GenerateContentResponse) (*models.AiAnalysis, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no content received from AI")
	}

	var geminiText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			geminiText += string(txt)
		}
	}
	if geminiText == "" {
		return nil, fmt.Errorf("no text content received from AI")
	}

	jsonStr := extractJSON(geminiText)
	if jsonStr == "" {
		log.Printf("Could not extract JSON from Gemini response: %s", geminiText)
		return nil, fmt.Errorf("failed to parse AI response format")
	}

	var analysis models.AiAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &analysis); err != nil {
		log.Printf("Error parsing Gemini JSON: %v\nRaw JSON: %s", err, jsonStr)
		return nil, fmt.Errorf("failed to parse AI analysis data")
	}
	return &analysis, nil
}
