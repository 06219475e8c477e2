package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/youruser/cardpress/internal/api"
	"github.com/youruser/cardpress/internal/deck"
	"github.com/youruser/cardpress/internal/logging"
)

func main() {
	// Load .env if present (best-effort)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	handlers := api.NewHandlers(deck.NewBuilder())

	r := gin.Default()
	api.RegisterRoutes(r, handlers)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("starting server on http://localhost:" + port)
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
