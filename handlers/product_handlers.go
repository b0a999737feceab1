package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/MatheusLBDev/vetsoft/database"
	"github.com/MatheusLBDev/vetsoft/models"
	"github.com/MatheusLBDev/vetsoft/utils"
)

// HandleGetProducts lists the product catalog.
func HandleGetProducts(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, name, description, price, stock
		FROM products
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve products"})
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock); err != nil {
			log.Printf("Error scanning product row: %v", err)
			continue
		}
		products = append(products, p)
	}

	return c.JSON(products)
}

// HandleCreateProduct adds a product to the catalog. Names are unique.
func HandleCreateProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var exists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM products WHERE name = $1)", product.Name).Scan(&exists); err != nil {
		log.Printf("Error checking product name %q: %v", product.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Product with this name already registered"})
	}

	query := `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := db.QueryRow(ctx, query, product.Name, product.Description, product.Price, product.Stock).Scan(&product.ID); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create product"})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update. Only fields present in the
// body are changed.
func HandleUpdateProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	var patch models.ProductUpdate
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var product models.Product
	query := "SELECT id, name, description, price, stock FROM products WHERE id = $1"
	err = db.QueryRow(ctx, query, productID).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}
	if err != nil {
		log.Printf("Error fetching product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update product"})
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Stock != nil {
		product.Stock = *patch.Stock
	}

	updateQuery := `
		UPDATE products
		SET name = $1, description = $2, price = $3, stock = $4
		WHERE id = $5
	`
	if _, err := db.Exec(ctx, updateQuery, product.Name, product.Description, product.Price, product.Stock, product.ID); err != nil {
		log.Printf("Error updating product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update product"})
	}

	return c.JSON(product)
}

// HandleDeleteProduct removes a product and returns the deleted record.
func HandleDeleteProduct(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid product id"})
	}

	var product models.Product
	query := `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, description, price, stock
	`
	err = db.QueryRow(ctx, query, productID).Scan(&product.ID, &product.Name, &product.Description, &product.Price, &product.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}
	if err != nil {
		log.Printf("Error deleting product %d: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete product"})
	}

	return c.JSON(product)
}
