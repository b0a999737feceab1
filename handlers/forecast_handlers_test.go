package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatheusLBDev/vetsoft/forecast"
)

func forecastErrorBody(t *testing.T, err error) (int, map[string]string) {
	t.Helper()

	app := fiber.New()
	app.Get("/forecast/sales", func(c *fiber.Ctx) error {
		return writeForecastError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/forecast/sales", nil))
	require.NoError(t, testErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	body := map[string]string{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestWriteForecastErrorNoData(t *testing.T) {
	status, body := forecastErrorBody(t, forecast.ErrNoData)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "No sales data available for forecasting.", body["message"])
	assert.NotContains(t, body, "forecast")
}

func TestWriteForecastErrorInsufficientHistory(t *testing.T) {
	status, body := forecastErrorBody(t, forecast.ErrInsufficientHistory)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Não há dados de vendas suficientes para uma previsão confiável.", body["message"])
}

func TestWriteForecastErrorDateParse(t *testing.T) {
	status, body := forecastErrorBody(t, &forecast.DateParseError{Value: "banana"})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body["message"], "Error parsing dates")
	assert.Contains(t, body["message"], "banana")
}

func TestWriteForecastErrorDataAccess(t *testing.T) {
	status, body := forecastErrorBody(t, assert.AnError)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Failed to compute sales forecast", body["message"])
}
