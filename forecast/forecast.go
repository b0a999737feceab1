// Package forecast projects the next 30 days of sales from the clinic's
// point-of-sale history and turns the projection into restocking
// suggestions. It only reads data: both collaborators are injected so the
// whole pipeline can run against in-memory fixtures.
package forecast

import (
	"context"
	"fmt"
)

const (
	// HorizonDays is the length of the projection.
	HorizonDays = 30

	// MinHistoryDays is the minimum number of daily buckets needed before
	// a projection is considered meaningful (two weeks).
	MinHistoryDays = 14

	// FetchLimit bounds how many rows are pulled from either collaborator.
	FetchLimit = 1000

	emaSpan = 7
)

// Summary is the human-readable headline attached to every successful
// forecast.
const Summary = "Previsão de vendas para os próximos 30 dias."

// LineItem is one line of a historical sale. A nil ProductID means the
// line billed a service, which never counts toward product demand.
type LineItem struct {
	ProductID *int
	Quantity  int
	UnitPrice float64
}

// Sale is a completed transaction as recorded by the POS. Date is kept as
// the raw stored string because the sales table has accumulated more than
// one timestamp format over time.
type Sale struct {
	Date  string
	Total float64
	Items []LineItem
}

// Product is the catalog view the advisor needs: identity and how many
// units are on the shelf right now.
type Product struct {
	ID    int
	Name  string
	Stock int
}

// SalesSource supplies the historical sales the forecast is computed from.
type SalesSource interface {
	FetchSales(ctx context.Context, limit int) ([]Sale, error)
}

// ProductSource supplies the current product catalog.
type ProductSource interface {
	FetchProducts(ctx context.Context, limit int) ([]Product, error)
}

// Point is one forecasted day.
type Point struct {
	Date           string  `json:"date"`
	PredictedSales float64 `json:"predicted_sales"`
}

// Suggestion recommends restocking a product whose projected 30-day
// demand exceeds its current stock.
type Suggestion struct {
	ProductName          string `json:"product_name"`
	CurrentStock         int    `json:"current_stock"`
	EstimatedSales30Days int    `json:"estimated_sales_30_days"`
	Suggestion           string `json:"suggestion"`
}

// Result is the successful forecast payload. InventorySuggestions is
// empty, never nil, when no product has attributable demand.
type Result struct {
	Forecast             []Point      `json:"forecast"`
	Summary              string       `json:"summary"`
	InventorySuggestions []Suggestion `json:"inventory_suggestions"`
}

// Engine runs the forecast pipeline over its two read-only collaborators.
type Engine struct {
	sales    SalesSource
	products ProductSource
}

// NewEngine wires an engine to its data sources.
func NewEngine(sales SalesSource, products ProductSource) *Engine {
	return &Engine{sales: sales, products: products}
}

// Run computes a fresh forecast. It either returns a complete Result or
// an error; there are no partial results. ErrNoData,
// ErrInsufficientHistory and *DateParseError describe data-shape
// conditions the HTTP layer reports as plain messages; any other error is
// a data-access failure.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	sales, err := e.sales.FetchSales(ctx, FetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching sales history: %w", err)
	}
	if len(sales) == 0 {
		return nil, ErrNoData
	}

	series, err := buildDailySeries(sales)
	if err != nil {
		return nil, err
	}
	if series.Len() < MinHistoryDays {
		return nil, ErrInsufficientHistory
	}

	level := emaLevel(series.Totals, emaSpan)
	result := &Result{
		Forecast:             projectFlat(series.LastDay(), level, HorizonDays),
		Summary:              Summary,
		InventorySuggestions: []Suggestion{},
	}

	shares := demandShares(sales)
	if len(shares) == 0 {
		// Every historical line was a service sale. The forecast itself
		// still stands, there is just no product to restock.
		return result, nil
	}

	products, err := e.products.FetchProducts(ctx, FetchLimit)
	if err != nil {
		return nil, fmt.Errorf("fetching product catalog: %w", err)
	}

	total30 := level * HorizonDays
	result.InventorySuggestions = suggestRestocks(products, shares, total30)
	return result, nil
}
