package main

import (
	"log"
	"os"

	"telecare-backend/internal/config"
	"telecare-backend/internal/protocol"
	"telecare-backend/internal/server"
	"telecare-backend/internal/signalfiles"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config.ConnectDB()

	dataDir := os.Getenv("TELECARE_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	files := signalfiles.New(dataDir)

	router := protocol.NewRouter(config.DB, files)

	port := os.Getenv("TELECARE_PORT")
	if port == "" {
		port = "9000"
	}

	srv := server.New(":"+port, router)
	log.Fatal(srv.ListenAndServe())
}
