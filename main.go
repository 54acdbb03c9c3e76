package main

import (
	"log"
	"os"

	"github.com/Rowan7401/dream-team/database"
	"github.com/Rowan7401/dream-team/routes"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	database.Connect()
	database.InitRedis()
	database.ConnectSurreal()
	database.MigrateTables()

	r := routes.SetupRouter()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("Starting server on " + addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
