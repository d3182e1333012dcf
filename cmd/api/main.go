package main

import (
	"context"
	"log"
	"os"

	"drivethru/internal/auth"
	"drivethru/internal/catalog"
	"drivethru/internal/chat"
	"drivethru/internal/db"
	"drivethru/internal/order"
	"drivethru/internal/router"
	"drivethru/internal/session"
	"drivethru/internal/speech"
	"drivethru/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"HF_API_TOKEN",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── REPOS ─────────────────────────
	// DATABASE_URL switches the menu and staff stores to Postgres.
	// Orders are session-scoped and never persisted either way.
	var (
		staffRepo   auth.StaffRepository
		catalogRepo catalog.Repository
	)

	if os.Getenv("DATABASE_URL") != "" {
		pgDB := db.ConnectPostgres()
		defer pgDB.Close()

		staffRepo = auth.NewPostgresStaffRepository(pgDB)
		catalogRepo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("⚠️  DATABASE_URL not set, using in-memory stores")
		staffRepo = auth.NewInMemoryStaffRepository()
		catalogRepo = catalog.NewInMemoryRepository(nil)
	}

	// ───────────────────────── SERVICES ─────────────────────────
	catalogService := catalog.NewService(catalogRepo)
	if err := catalogService.EnsureSeeded(ctx); err != nil {
		log.Fatal("❌ Menu seed failed:", err)
	}

	authService := auth.NewService(staffRepo)
	orderService := order.NewService(catalogService)
	sessions := session.NewManager()

	transcriber := speech.NewWhisperClient()

	// ───────────────────────── STORAGE ─────────────────────────
	// Audio clip archiving is optional: without R2 credentials the
	// voice endpoint still works, clips are just not kept.
	var archive order.AudioArchiver
	if storage.Configured() {
		r2Client, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		archive = r2Client
	} else {
		log.Println("⚠️  R2 not configured, audio clips will not be archived")
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	handlers := router.Handlers{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(catalogService),
		Order:    order.NewHandler(orderService, transcriber, archive),
		Sessions: sessions,
	}

	if os.Getenv("OPENROUTER_API_KEY") != "" {
		chatService := chat.NewService(chat.NewOpenRouterClient(), catalogService)
		handlers.Chat = chat.NewHandler(chatService)
	} else {
		log.Println("⚠️  OPENROUTER_API_KEY not set, assistant endpoint disabled")
	}

	r := router.New(handlers)

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
