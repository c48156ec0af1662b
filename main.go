package main

import (
	"log"

	"cartera-web/config"
	"cartera-web/database"
	"cartera-web/handlers"
	"cartera-web/session"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to open the database: ", err)
	}

	// Create tables and seed data on first run; a no-op afterwards.
	if err := database.Init(db); err != nil {
		log.Fatal("Failed to initialize the database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	store := database.NewStore(db)
	sessions := session.NewManager(cfg.SessionSecret)

	router := handlers.NewRouter(store, sessions)

	log.Println("Listening on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
