package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wellnest-health/wellnest-backend/internal/config"
	"github.com/wellnest-health/wellnest-backend/internal/database"
	"github.com/wellnest-health/wellnest-backend/internal/handlers"
	"github.com/wellnest-health/wellnest-backend/internal/llm"
	"github.com/wellnest-health/wellnest-backend/internal/middleware"
	"github.com/wellnest-health/wellnest-backend/internal/routes"
	"github.com/wellnest-health/wellnest-backend/internal/services"
	"github.com/wellnest-health/wellnest-backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if cfg.OpenAIAPIKey == "" {
		log.Println("WARNING: OPENAI_API_KEY not set. Journal, diagnosis and vitals analysis will fail.")
	}

	log.Println("Connecting to PostgreSQL...")
	pg, err := database.ConnectPostgres(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer pg.Close()

	log.Println("Connecting to Redis...")
	rdb, err := database.ConnectRedis(cfg.RedisURI)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer rdb.Close()

	log.Println("Connecting to MongoDB...")
	mongoClient, mongoDB, err := database.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.DisconnectMongo(mongoClient)

	records := store.NewMongo(mongoDB)
	if err := records.EnsureIndexes(context.Background()); err != nil {
		log.Printf("WARNING: failed to ensure MongoDB indexes: %v", err)
	}

	oracle := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	sessions := services.NewSessionService(rdb)

	journalSvc := services.NewJournalService(
		services.NewMoodClassifier(oracle),
		services.NewSupportResponder(oracle),
		records,
	)
	diagnosisSvc := services.NewDiagnosisService(oracle, records)
	vitalsSvc := services.NewVitalsService(oracle, records)

	authMW := middleware.NewAuth(sessions)
	userHandler := handlers.NewAuthHandler(pg, sessions, logger)
	journalHandler := handlers.NewJournalHandler(journalSvc, logger)
	diagnosisHandler := handlers.NewDiagnosisHandler(diagnosisSvc, logger)
	vitalsHandler := handlers.NewVitalsHandler(vitalsSvc, logger)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.IsProduction() {
		r.Use(middleware.SecurityHeaders)
		log.Println("Production security headers enabled")
	}
	r.Use(middleware.RateLimit(rdb))

	// Health check (no auth)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.Setup(r, authMW, middleware.PerIPLimit(1, 10), userHandler, journalHandler, diagnosisHandler, vitalsHandler)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Printf("Wellnest backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Println("Server stopped")
}
