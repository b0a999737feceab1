package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/MatheusLBDev/vetsoft/database"
	"github.com/MatheusLBDev/vetsoft/models"
	"github.com/MatheusLBDev/vetsoft/utils"
)

// HandleGetSales lists sales with their line items, newest first.
func HandleGetSales(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, total, date
		FROM sales
		ORDER BY date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales"})
	}
	defer rows.Close()

	sales := make([]models.Sale, 0)
	for rows.Next() {
		var sale models.Sale
		if err := rows.Scan(&sale.ID, &sale.Total, &sale.Date); err != nil {
			log.Printf("Error scanning sale row: %v", err)
			continue
		}
		sales = append(sales, sale)
	}
	rows.Close()

	for i := range sales {
		items, err := fetchSaleItems(ctx, sales[i].ID)
		if err != nil {
			log.Printf("Error fetching items for sale %d: %v", sales[i].ID, err)
			items = []models.SaleItem{}
		}
		sales[i].Items = items
	}

	return c.JSON(sales)
}

// HandleCreateSale records a point-of-sale transaction. Stock for every
// product line is validated and decremented inside one transaction, so a
// failed line leaves nothing half-sold.
func HandleCreateSale(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var input models.CreateSaleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "A sale needs at least one item"})
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to start transaction"})
	}
	defer tx.Rollback(ctx)

	// Validate stock before touching anything.
	for _, item := range input.Items {
		if item.ProductID == nil {
			continue
		}
		var name string
		var stock int
		err := tx.QueryRow(ctx, "SELECT name, stock FROM products WHERE id = $1 FOR UPDATE", *item.ProductID).Scan(&name, &stock)
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": fmt.Sprintf("Product with id %d not found", *item.ProductID)})
		}
		if err != nil {
			log.Printf("Error checking stock for product %d: %v", *item.ProductID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create sale"})
		}
		if stock < item.Quantity {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"status":  "error",
				"message": fmt.Sprintf("Not enough stock for product %s. Available: %d, Required: %d", name, stock, item.Quantity),
			})
		}
	}

	var sale models.Sale
	sale.Total = input.Total
	sale.Date = input.Date
	if err := tx.QueryRow(ctx, "INSERT INTO sales (total, date) VALUES ($1, $2) RETURNING id", input.Total, input.Date).Scan(&sale.ID); err != nil {
		log.Printf("Error creating sale: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create sale"})
	}

	for _, item := range input.Items {
		itemQuery := `
			INSERT INTO sale_items (sale_id, product_id, service_id, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		var itemID int
		if err := tx.QueryRow(ctx, itemQuery, sale.ID, item.ProductID, item.ServiceID, item.Quantity, item.Price).Scan(&itemID); err != nil {
			log.Printf("Error creating sale item: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create sale item"})
		}
		sale.Items = append(sale.Items, models.SaleItem{
			ID:        itemID,
			SaleID:    sale.ID,
			ProductID: item.ProductID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})

		if item.ProductID != nil {
			if _, err := tx.Exec(ctx, "UPDATE products SET stock = stock - $1 WHERE id = $2", item.Quantity, *item.ProductID); err != nil {
				log.Printf("Error decrementing stock for product %d: %v", *item.ProductID, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update stock"})
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing sale: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to commit transaction"})
	}

	return c.Status(fiber.StatusCreated).JSON(sale)
}

func fetchSaleItems(ctx context.Context, saleID int) ([]models.SaleItem, error) {
	db := database.GetDB()

	query := `
		SELECT id, sale_id, product_id, service_id, quantity, price
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY id
	`
	rows, err := db.Query(ctx, query, saleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.SaleItem, 0)
	for rows.Next() {
		var item models.SaleItem
		if err := rows.Scan(&item.ID, &item.SaleID, &item.ProductID, &item.ServiceID, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
