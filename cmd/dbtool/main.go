package main

import (
	"campus-paths-service/internal/adapters/sources"
	"campus-paths-service/internal/config"
	"campus-paths-service/internal/platform/db"
	"campus-paths-service/internal/services"
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool creates the campus tables and loads the CSV dataset into Postgres.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	buildingsPath := config.Get("CAMPUS_BUILDINGS_PATH", "data/campus_buildings.csv")
	pathsPath := config.Get("CAMPUS_PATHS_PATH", "data/campus_paths.csv")

	data, err := sources.NewCSVSource(buildingsPath, pathsPath).LoadCampus(ctx)
	if err != nil {
		log.Fatalf("read dataset: %v", err)
	}

	// Refuse to seed a dataset the server would reject at startup.
	if _, err := services.BuildCampus(data); err != nil {
		log.Fatalf("validate dataset: %v", err)
	}

	log.Println("Initializing database schema...")
	if err := sources.InitSchema(ctx, conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := sources.SeedCampus(ctx, conn, data); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("Seeding complete: %d buildings, %d paths.", len(data.Buildings), len(data.Paths))
}
