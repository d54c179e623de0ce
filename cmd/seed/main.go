// Command main seeds the database with sample PRDs for an existing user.
//
// Usage:
//
//	seed -email test@example.com
package main

import (
	"context"
	"flag"
	"log"

	"clearprd/internal/config"
	"clearprd/internal/database"
	"clearprd/internal/seed"
)

func main() {
	email := flag.String("email", "", "Email of the user to attach sample PRDs to")
	flag.Parse()

	if *email == "" {
		log.Fatal("Usage: seed -email <user_email>")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	n, err := seed.Run(context.Background(), db, *email)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Inserted %d sample PRDs for %s", n, *email)
}
