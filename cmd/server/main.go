package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"priceai_back_end/internal/config"
	"priceai_back_end/internal/database"
	"priceai_back_end/internal/routes"
	"priceai_back_end/internal/store"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	st := selectStore()

	r := gin.Default()
	r.Use(corsMiddleware())
	routes.RegisterRoutes(r, st)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur PriceAI lancé sur le port", port)
	r.Run(":" + port)
}

// selectStore choisit le store de documents : ScyllaDB quand un cluster est
// configuré, sinon le store en mémoire (mode démo, rien n'est persisté)
func selectStore() store.UserStore {
	session, err := database.GetUsersSession()
	if err != nil {
		log.Println("⚠️ Store en mémoire actif:", err)
		return store.NewMemoryStore()
	}
	log.Println("✅ Store utilisateur sur ScyllaDB")
	return store.NewScyllaStore(session)
}

func corsMiddleware() gin.HandlerFunc {
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = []string{frontend}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"}
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	return cors.New(cfg)
}
