package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MatheusLBDev/vetsoft/database"
	"github.com/MatheusLBDev/vetsoft/forecast"
)

// pgSalesSource feeds the forecast engine from the sales tables.
type pgSalesSource struct {
	db *pgxpool.Pool
}

func (s pgSalesSource) FetchSales(ctx context.Context, limit int) ([]forecast.Sale, error) {
	query := `
		SELECT id, total, date
		FROM sales
		ORDER BY date DESC
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type saleRow struct {
		id   int
		sale forecast.Sale
	}
	saleRows := make([]saleRow, 0)
	for rows.Next() {
		var r saleRow
		if err := rows.Scan(&r.id, &r.sale.Total, &r.sale.Date); err != nil {
			return nil, err
		}
		saleRows = append(saleRows, r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsQuery := `
		SELECT product_id, quantity, price
		FROM sale_items
		WHERE sale_id = $1
	`
	sales := make([]forecast.Sale, 0, len(saleRows))
	for _, r := range saleRows {
		itemRows, err := s.db.Query(ctx, itemsQuery, r.id)
		if err != nil {
			return nil, err
		}
		for itemRows.Next() {
			var item forecast.LineItem
			if err := itemRows.Scan(&item.ProductID, &item.Quantity, &item.UnitPrice); err != nil {
				itemRows.Close()
				return nil, err
			}
			r.sale.Items = append(r.sale.Items, item)
		}
		itemRows.Close()
		if err := itemRows.Err(); err != nil {
			return nil, err
		}
		sales = append(sales, r.sale)
	}
	return sales, nil
}

// pgProductSource feeds the forecast engine the current catalog.
type pgProductSource struct {
	db *pgxpool.Pool
}

func (s pgProductSource) FetchProducts(ctx context.Context, limit int) ([]forecast.Product, error) {
	query := `
		SELECT id, name, stock
		FROM products
		ORDER BY id
		LIMIT $1
	`
	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]forecast.Product, 0)
	for rows.Next() {
		var p forecast.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Stock); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// newForecastEngine builds an engine over the shared pool.
func newForecastEngine() *forecast.Engine {
	db := database.GetDB()
	return forecast.NewEngine(pgSalesSource{db: db}, pgProductSource{db: db})
}

// HandleGetSalesForecast computes the 30-day sales forecast together with
// restocking suggestions.
// GET /forecast/sales
func HandleGetSalesForecast(c *fiber.Ctx) error {
	result, err := newForecastEngine().Run(context.Background())
	if err != nil {
		return writeForecastError(c, err)
	}
	return c.JSON(result)
}

// writeForecastError maps engine errors to responses. Data-shape problems
// (no data, short history, a dirty date) come back as 200s with a plain
// message so the endpoint stays usable on messy datasets; anything else is
// infrastructure trouble and surfaces as a 500.
func writeForecastError(c *fiber.Ctx, err error) error {
	var parseErr *forecast.DateParseError
	switch {
	case errors.Is(err, forecast.ErrNoData):
		return c.JSON(fiber.Map{"message": "No sales data available for forecasting."})
	case errors.Is(err, forecast.ErrInsufficientHistory):
		return c.JSON(fiber.Map{"message": "Não há dados de vendas suficientes para uma previsão confiável."})
	case errors.As(err, &parseErr):
		return c.JSON(fiber.Map{"message": fmt.Sprintf("Error parsing dates: %v", parseErr)})
	default:
		log.Printf("Error computing sales forecast: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to compute sales forecast"})
	}
}
