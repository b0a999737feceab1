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

// HandleCreateClient registers a new client.
func HandleCreateClient(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	query := `
		INSERT INTO clients (name, phone, email, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := db.QueryRow(ctx, query, client.Name, client.Phone, client.Email, client.Address).Scan(&client.ID); err != nil {
		log.Printf("Error creating client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create client"})
	}

	client.Pets = []models.Pet{}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// HandleGetClients lists clients together with their pets.
func HandleGetClients(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, name, phone, email, address
		FROM clients
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing clients: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve clients"})
	}
	defer rows.Close()

	clients := make([]models.Client, 0)
	for rows.Next() {
		var client models.Client
		if err := rows.Scan(&client.ID, &client.Name, &client.Phone, &client.Email, &client.Address); err != nil {
			log.Printf("Error scanning client row: %v", err)
			continue
		}
		clients = append(clients, client)
	}
	rows.Close()

	for i := range clients {
		pets, err := fetchPetsForOwner(ctx, clients[i].ID)
		if err != nil {
			log.Printf("Error fetching pets for client %d: %v", clients[i].ID, err)
			pets = []models.Pet{}
		}
		clients[i].Pets = pets
	}

	return c.JSON(clients)
}

// HandleGetClientByID returns a single client with pets.
func HandleGetClientByID(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	clientID, err := c.ParamsInt("clientId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid client id"})
	}

	var client models.Client
	query := "SELECT id, name, phone, email, address FROM clients WHERE id = $1"
	err = db.QueryRow(ctx, query, clientID).Scan(&client.ID, &client.Name, &client.Phone, &client.Email, &client.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Client not found"})
	}
	if err != nil {
		log.Printf("Error fetching client %d: %v", clientID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve client"})
	}

	pets, err := fetchPetsForOwner(ctx, client.ID)
	if err != nil {
		log.Printf("Error fetching pets for client %d: %v", client.ID, err)
		pets = []models.Pet{}
	}
	client.Pets = pets

	return c.JSON(client)
}

func fetchPetsForOwner(ctx context.Context, ownerID int) ([]models.Pet, error) {
	db := database.GetDB()

	query := `
		SELECT id, name, species, breed, birth_date, owner_id
		FROM pets
		WHERE owner_id = $1
		ORDER BY id
	`
	rows, err := db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]models.Pet, 0)
	for rows.Next() {
		var pet models.Pet
		if err := rows.Scan(&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.BirthDate, &pet.OwnerID); err != nil {
			return nil, err
		}
		pets = append(pets, pet)
	}
	return pets, rows.Err()
}
