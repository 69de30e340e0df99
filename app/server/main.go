package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/davrk/leadbot/config"
	"github.com/davrk/leadbot/internal/api/handlers"
	"github.com/davrk/leadbot/internal/api/middleware"
	"github.com/davrk/leadbot/internal/api/routes"
	"github.com/davrk/leadbot/internal/cache"
	"github.com/davrk/leadbot/internal/embeddings"
	"github.com/davrk/leadbot/internal/ingest"
	"github.com/davrk/leadbot/internal/logger"
	"github.com/davrk/leadbot/internal/mailer"
	"github.com/davrk/leadbot/internal/models"
	"github.com/davrk/leadbot/internal/providers/llm"
	mongorepo "github.com/davrk/leadbot/internal/repositories/mongo"
	pgrepo "github.com/davrk/leadbot/internal/repositories/postgres"
	"github.com/davrk/leadbot/internal/resolver"
	"github.com/davrk/leadbot/internal/services"
	"github.com/davrk/leadbot/internal/vectorindex"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()
	ctx := context.Background()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	db := config.PostgresDB
	if err := config.MigratePostgres(db); err != nil {
		log.Fatalf("PostgreSQL migration error: %v", err)
	}
	log.Info("PostgreSQL connected")

	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	log.Info("Redis connected")

	// The page archive is optional: without MONGO_URI ingestion simply
	// skips snapshots.
	var archive ingest.Archive
	if os.Getenv("MONGO_URI") != "" {
		if err := config.InitMongo(); err != nil {
			log.WithError(err).Warn("MongoDB unavailable, page archive disabled")
		} else {
			if err := config.EnsureMongoIndexes(); err != nil {
				log.WithError(err).Warn("MongoDB index setup failed")
			}
			archive = mongorepo.NewPageRepo(config.MongoDatabase())
			log.Info("MongoDB connected")
		}
	}

	users := pgrepo.NewUserRepo(db)
	messages := pgrepo.NewMessageRepo(db)
	tickets := pgrepo.NewTicketRepo(db)
	settings := pgrepo.NewSettingsRepo(db)
	predefined := pgrepo.NewPredefinedRepo(db)

	if err := predefined.Seed(ctx, models.SeedQuestions()); err != nil {
		log.Fatalf("FAQ seed error: %v", err)
	}
	faq, err := predefined.All(ctx)
	if err != nil {
		log.Fatalf("FAQ load error: %v", err)
	}

	embedder := embeddings.NewHashingProvider(models.EmbeddingDim)
	index := vectorindex.NewPgIndex(db)

	var composer resolver.Composer = resolver.ExtractiveComposer{}
	if project := os.Getenv("GCP_PROJECT_ID"); project != "" {
		location := os.Getenv("GCP_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		gemini, err := llm.NewVertexGemini(ctx, project, location, os.Getenv("LLM_MODEL"))
		if err != nil {
			log.WithError(err).Warn("LLM unavailable, using extractive answers")
		} else {
			defer gemini.Close()
			composer = resolver.NewGenerativeComposer(gemini)
			log.Info("generative answer composition enabled")
		}
	}

	rsv := resolver.New(resolver.NewMatcher(faq), embedder, index, composer, log, resolver.Config{})

	ingestor := ingest.NewIngestor(ingest.NewScraper(), embedder, index, archive, log)
	go func() {
		if err := ingestor.Bootstrap(context.Background(), ingest.SourceURLs()); err != nil {
			log.WithError(err).Warn("initial content ingest failed")
		}
	}()

	rcache := cache.NewRedisCache(config.RedisClient)
	mail := mailer.New(log)

	userSvc := services.NewUserService(users, messages)
	chatSvc := services.NewChatService(rsv, users, messages, predefined, rcache, log)
	ticketSvc := services.NewTicketService(tickets, users, settings, mail, log)
	settingsSvc := services.NewSettingsService(settings, mail)
	adminSvc := services.NewAdminService(users, messages, rcache, log)
	authSvc := services.NewAuthService()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		User:   handlers.NewUserHandler(userSvc),
		Chat:   handlers.NewChatHandler(chatSvc),
		Ticket: handlers.NewTicketHandler(ticketSvc),
		Admin:  handlers.NewAdminHandler(authSvc, adminSvc, ticketSvc, settingsSvc, ingestor, ingest.SourceURLs),
		WS:     handlers.NewWSHandler(chatSvc, log),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("starting chatbot API")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
