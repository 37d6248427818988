package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"vidyabandhan/backend/config"
	"vidyabandhan/backend/middleware"
	"vidyabandhan/backend/repo"
	"vidyabandhan/backend/routes"
	"vidyabandhan/backend/speech"
	"vidyabandhan/backend/store"
	"vidyabandhan/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Record store (small JSON collections, session pointers)
	records, firstRun, err := store.OpenRecordStore(cfg.RecordDBPath)
	if err != nil {
		log.Fatalf("Error opening record store: %v", err)
	}
	defer records.Close()

	// Blob store (uploaded resource payloads)
	db, err := store.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing blob database: %v", err)
	}
	blobs := store.NewGormBlobStore(db)

	// Seed the two demo accounts on a fresh store
	if err := repo.NewUsers(records).EnsureSeed(); err != nil {
		log.Fatalf("Error seeding users: %v", err)
	}
	if firstRun {
		logger.Println("Seeded demo accounts: student@test.com / teacher@test.com (password 1234)")
	}

	// Speech capabilities: a headless deployment has none
	var synth speech.Synthesizer = speech.NoSynthesizer{}
	if cfg.SpeechSynth == "console" {
		synth = speech.ConsoleSynthesizer{Logger: logger}
	}
	var recog speech.Recognizer = speech.NoRecognizer{}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, records, blobs, synth, recog, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
