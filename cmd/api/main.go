// PulsePath API
//
// REST API for personal health tracking: stress logging with analytics and
// wellness suggestions, medicine reminders, and emergency support.
//
//	@title			PulsePath API
//	@version		1.0
//	@description	Track stress entries, get rule-based wellness suggestions and rolling analytics, manage medicine reminders and emergency contacts.
//
//	@BasePath	/api
//
//	@tag.name			stress
//	@tag.description	Stress logging, analytics and insights endpoints
//
//	@tag.name			medicines
//	@tag.description	Medicine reminder endpoints
//
//	@tag.name			emergency
//	@tag.description	Emergency resources and contact endpoints
//
//	@tag.name			admin
//	@tag.description	Destructive maintenance endpoints
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/pulsepath/pulsepath/internal/api"
	"github.com/pulsepath/pulsepath/internal/api/handler"
	"github.com/pulsepath/pulsepath/internal/cache"
	"github.com/pulsepath/pulsepath/internal/config"
	"github.com/pulsepath/pulsepath/internal/domain"
	"github.com/pulsepath/pulsepath/internal/llm"
	"github.com/pulsepath/pulsepath/internal/repository"
	"github.com/pulsepath/pulsepath/internal/seed"
	"github.com/pulsepath/pulsepath/internal/service"
	"github.com/pulsepath/pulsepath/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize tracing (no-op when Langfuse is not configured)
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg, "pulsepath-api")
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Failed to shut down tracer: %v", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.StressLog{}, &domain.Medicine{}, &domain.EmergencyContact{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if err := seed.Run(db); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// Initialize repositories
	stressLogRepo := repository.NewStressLogRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	contactRepo := repository.NewEmergencyContactRepository(db)

	// Response cache, owned here and handed to the services
	responseCache := cache.New(cache.DefaultTTL)

	// Initialize services
	stressLogService := service.NewStressLogService(stressLogRepo, responseCache)
	medicineService := service.NewMedicineService(medicineRepo)
	emergencyService := service.NewEmergencyService(contactRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}
	insightsService := service.NewInsightsService(stressLogRepo, openaiClient)

	// Initialize handlers
	stressLogHandler := handler.NewStressLogHandler(stressLogService)
	analyticsHandler := handler.NewAnalyticsHandler(stressLogService, insightsService)
	medicineHandler := handler.NewMedicineHandler(medicineService)
	emergencyHandler := handler.NewEmergencyHandler(emergencyService)

	// Setup router
	router := api.NewRouter(stressLogHandler, analyticsHandler, medicineHandler, emergencyHandler)
	if cfg.Production() {
		router = router.WithStaticFallback(cfg.StaticDir)
	}
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
