package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/scrandle/api/internal/adapters/repository/postgres"
	"github.com/scrandle/api/internal/core/services"
)

// Generates the matchups for the current UTC day. Safe to run more than
// once; a day that already has rounds is left untouched.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	scranRepo := postgres.NewScranRepository(db)
	roundRepo := postgres.NewRoundRepository(db)
	roundService := services.NewRoundService(scranRepo, roundRepo, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	date := time.Now().UTC().Format("2006-01-02")
	log.Printf("Generating daily rounds for %s...", date)

	result, err := roundService.GenerateDaily(ctx, date)
	if err != nil {
		log.Fatalf("Error generating daily rounds: %v", err)
	}

	if result.Created {
		log.Printf("Generated %d rounds for %s.", len(result.Rounds), date)
	} else {
		log.Printf("Rounds for %s already exist (%d rounds), nothing to do.", date, len(result.Rounds))
	}
}

func dbConnString() string {
	user := os.Getenv("POSTGRES_USER")
	password := os.Getenv("POSTGRES_PASSWORD")
	host := os.Getenv("POSTGRES_HOST")
	port := os.Getenv("POSTGRES_PORT")
	dbName := os.Getenv("POSTGRES_DB")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
