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

func validAppointmentStatus(status string) bool {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCompleted, models.AppointmentCanceled:
		return true
	}
	return false
}

// HandleCreateAppointment schedules a new appointment.
func HandleCreateAppointment(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var appt models.Appointment
	if err := c.BodyParser(&appt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}
	if !validAppointmentStatus(appt.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid appointment status"})
	}

	query := `
		INSERT INTO appointments (client_id, pet_id, date, reason, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if err := db.QueryRow(ctx, query, appt.ClientID, appt.PetID, appt.Date, appt.Reason, appt.Notes, appt.Status).Scan(&appt.ID); err != nil {
		log.Printf("Error creating appointment: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to create appointment"})
	}

	return c.Status(fiber.StatusCreated).JSON(appt)
}

// HandleGetAppointments lists appointments.
func HandleGetAppointments(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	skip, limit := utils.ClampRange(c.QueryInt("skip", 0), c.QueryInt("limit", 100))

	query := `
		SELECT id, client_id, pet_id, date, reason, notes, status
		FROM appointments
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := db.Query(ctx, query, limit, skip)
	if err != nil {
		log.Printf("Error listing appointments: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve appointments"})
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var appt models.Appointment
		if err := rows.Scan(&appt.ID, &appt.ClientID, &appt.PetID, &appt.Date, &appt.Reason, &appt.Notes, &appt.Status); err != nil {
			log.Printf("Error scanning appointment row: %v", err)
			continue
		}
		appointments = append(appointments, appt)
	}

	return c.JSON(appointments)
}

// HandleUpdateAppointmentStatus transitions an appointment's status.
func HandleUpdateAppointmentStatus(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	appointmentID, err := c.ParamsInt("appointmentId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid appointment id"})
	}

	var update models.AppointmentStatusUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}
	if !validAppointmentStatus(update.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid appointment status"})
	}

	var appt models.Appointment
	query := `
		UPDATE appointments
		SET status = $1
		WHERE id = $2
		RETURNING id, client_id, pet_id, date, reason, notes, status
	`
	err = db.QueryRow(ctx, query, update.Status, appointmentID).
		Scan(&appt.ID, &appt.ClientID, &appt.PetID, &appt.Date, &appt.Reason, &appt.Notes, &appt.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Appointment not found"})
	}
	if err != nil {
		log.Printf("Error updating appointment %d: %v", appointmentID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to update appointment"})
	}

	return c.JSON(appt)
}
