package main

import (
	"log"

	"brainstorm-api/internal/auth"
	"brainstorm-api/internal/config"
	"brainstorm-api/internal/database"
	"brainstorm-api/internal/generate"
	"brainstorm-api/internal/handlers"
	"brainstorm-api/internal/realtime"
	"brainstorm-api/internal/repository"
	"brainstorm-api/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	cardRepo := repository.NewCardRepository(db)
	userRepo := repository.NewUserRepository(db)

	tokens := auth.NewManager(cfg.SecretKey)
	hub := realtime.NewHub()
	generator := generate.NewClient(cfg.HFEndpoint, cfg.HFAPIKey)

	ginRoutes := routes.SetupRoutes(routes.Deps{
		Cards:  handlers.NewCardHandler(cardRepo, hub),
		Auth:   handlers.NewAuthHandler(userRepo, tokens),
		AI:     handlers.NewAIHandler(generator),
		WS:     handlers.NewWSHandler(hub),
		Tokens: tokens,
	})

	port := ":" + cfg.Port
	log.Printf("Server starting on port %s", port)
	log.Println("API endpoints:")
	log.Println("  GET    /api/cards")
	log.Println("  POST   /api/cards")
	log.Println("  PUT    /api/cards/:id")
	log.Println("  DELETE /api/cards/:id")
	log.Println("  POST   /api/register")
	log.Println("  POST   /api/login")
	log.Println("  POST   /api/ai")
	log.Println("  GET    /api/me")
	log.Println("  GET    /ws/board")
	log.Println("  GET    /health")

	if err := ginRoutes.Run(port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
