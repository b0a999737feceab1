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

// HandleCreatePet registers a pet under an existing client.
func HandleCreatePet(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var pet models.Pet
	if err := c.BodyParser(&pet); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	var ownerExists bool
	if err := db.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)", pet.OwnerID).Scan(&ownerExists); err != nil {
		log.Printf("Error checking owner %d: %v", pet.OwnerID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create pet"})
	}
	if !ownerExists {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Owner not found"})
	}

	query := `
		INSERT INTO pets (name, species, breed, birth_date, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := db.QueryRow(ctx, query, pet.Name, pet.Species, pet.Breed, pet.BirthDate, pet.OwnerID).Scan(&pet.ID); err != nil {
		log.Printf("Error creating pet: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create pet"})
	}

	return c.Status(fiber.StatusCreated).JSON(pet)
}

// HandleGetPets lists all pets.
func HandleGetPets(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, name, species, breed, birth_date, owner_id
		FROM pets
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing pets: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve pets"})
	}
	defer rows.Close()

	pets := make([]models.Pet, 0)
	for rows.Next() {
		var pet models.Pet
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.BirthDate, &pet.OwnerID); err != nil {
			log.Printf("Error scanning pet row: %v", err)
			continue
		}
		pets = append(pets, pet)
	}

	return c.JSON(pets)
}

// HandleDeletePet removes a pet and returns the deleted record.
func HandleDeletePet(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	petID, err := c.ParamsInt("petId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid pet id"})
	}

	var pet models.Pet
	query := `
		DELETE FROM pets
		WHERE id = $1
		RETURNING id, name, species, breed, birth_date, owner_id
	`
	err = db.QueryRow(ctx, query, petID).Scan(&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.BirthDate, &pet.OwnerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Pet not found"})
	}
	if err != nil {
		log.Printf("Error deleting pet %d: %v", petID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to delete pet"})
	}

	return c.JSON(pet)
}
