package main

import (
	"log"

	"talentboard/database"
	"talentboard/internal/config"
)

func main() {
	config.LoadConfig()

	if err := database.AutoMigrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}
