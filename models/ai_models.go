package models

import "time"

// AiAnalysis contains the qualitative insights from the Gemini model.
type AiAnalysis struct {
	Summary         string   `json:"summary"`
	PositiveFactors []string `json:"positive_factors"`
	NegativeFactors []string `json:"negative_factors"`
}

// ForecastInsightsResponse is the payload of the AI insights endpoint.
type ForecastInsightsResponse struct {
	ReportName  string     `json:"reportName"`
	GeneratedAt time.Time  `json:"generatedAt"`
	AiAnalysis  AiAnalysis `json:"aiAnalysis"`
}
