package database

import (
	"context"
	"log"
)

// Date columns are TEXT on purpose: the clinic frontend has always sent
// ISO-ish strings and older rows carry several formats, so parsing is the
// application's job, not the database's.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		address TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		species TEXT NOT NULL,
		breed TEXT NOT NULL,
		birth_date TEXT NOT NULL,
		owner_id INTEGER NOT NULL REFERENCES clients(id)
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id SERIAL PRIMARY KEY,
		client_id INTEGER NOT NULL REFERENCES clients(id),
		pet_id INTEGER NOT NULL REFERENCES pets(id),
		date TEXT NOT NULL,
		reason TEXT NOT NULL,
		notes TEXT,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		stock INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS services (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id SERIAL PRIMARY KEY,
		total DOUBLE PRECISION NOT NULL,
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sale_items (
		id SERIAL PRIMARY KEY,
		sale_id INTEGER NOT NULL REFERENCES sales(id),
		product_id INTEGER REFERENCES products(id),
		service_id INTEGER REFERENCES services(id),
		quantity INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL
	)`,
}

// EnsureSchema creates any missing tables on startup.
func EnsureSchema(ctx context.Context) {
	for _, stmt := range schemaStatements {
		if _, err := DB.Exec(ctx, stmt); err != nil {
			log.Fatalf("Failed to ensure database schema: %v\n", err)
		}
	}
	log.Println("Database schema is up to date")
}
