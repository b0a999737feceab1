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

// HandleGetServices lists the billable services.
func HandleGetServices(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, name, description, price
		FROM services
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing services: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve services"})
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var s models.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Price); err != nil {
			log.Printf("Error scanning service row: %v", err)
			continue
		}
		services = append(services, s)
	}

	return c.JSON(services)
}

// HandleCreateService adds a service. Names are unique.
func HandleCreateService(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var service models.Service
	if err := c.BodyParser(&service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var exists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM services WHERE name = $1)", service.Name).Scan(&exists); err != nil {
		log.Printf("Error checking service name %q: %v", service.Name, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create service"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Service with this name already registered"})
	}

	query := `
		INSERT INTO services (name, description, price)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := db.QueryRow(ctx, query, service.Name, service.Description, service.Price).Scan(&service.ID); err != nil {
		log.Printf("Error creating service: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create service"})
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// HandleUpdateService applies a partial update to a service.
func HandleUpdateService(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid service id"})
	}

	var patch models.ServiceUpdate
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var service models.Service
	query := "SELECT id, name, description, price FROM services WHERE id = $1"
	err = db.QueryRow(ctx, query, serviceID).Scan(&service.ID, &service.Name, &service.Description, &service.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Service not found"})
	}
	if err != nil {
		log.Printf("Error fetching service %d: %v", serviceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update service"})
	}

	if patch.Name != nil {
		service.Name = *patch.Name
	}
	if patch.Description != nil {
		service.Description = *patch.Description
	}
	if patch.Price != nil {
		service.Price = *patch.Price
	}

	updateQuery := `
		UPDATE services
		SET name = $1, description = $2, price = $3
		WHERE id = $4
	`
	if _, err := db.Exec(ctx, updateQuery, service.Name, service.Description, service.Price, service.ID); err != nil {
		log.Printf("Error updating service %d: %v", serviceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update service"})
	}

	return c.JSON(service)
}

// HandleDeleteService removes a service and returns the deleted record.
func HandleDeleteService(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	serviceID, err := c.ParamsInt("serviceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid service id"})
	}

	var service models.Service
	query := `
		DELETE FROM services
		WHERE id = $1
		RETURNING id, name, description, price
	`
	err = db.QueryRow(ctx, query, serviceID).Scan(&service.ID, &service.Name, &service.Description, &service.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Service not found"})
	}
	if err != nil {
		log.Printf("Error deleting service %d: %v", serviceID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete service"})
	}

	return c.JSON(service)
}
