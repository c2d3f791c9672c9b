package main

import (
	_ "pix-backend/docs"
	"pix-backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PIX Backend API
// @version         1.0
// @description     Thin backend that forwards PIX payment creation to an external provider and verifies signed webhooks.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
