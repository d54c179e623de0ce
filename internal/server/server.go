// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"clearprd/internal/config"
	"clearprd/internal/database"
	"clearprd/internal/llm"
	"clearprd/internal/middleware"
	"clearprd/internal/models"
	"clearprd/internal/prompts"
	"clearprd/internal/repository"
	"clearprd/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	prdRepo        repository.PRDRepository
	analyzer       *service.IdeaAnalyzer
	synthesizer    *service.PRDSynthesizer
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize the LLM client once; a missing key leaves it nil and the
	// service layer reports a configuration error per request.
	var llmClient llm.Client
	if cfg.GeminiAPIKey != "" {
		gemini, err := llm.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			return nil, fmt.Errorf("LLM client initialization failed: %w", err)
		}
		llmClient = gemini
	} else {
		log.Println("GEMINI_API_KEY not set; /analyze and /generate-prd will return configuration errors")
	}

	srv, err := NewServerWithDeps(cfg, db, llmClient)
	if err != nil {
		return nil, err
	}

	// Prometheus collectors register globally, so metrics are only wired here
	// and not in NewServerWithDeps, which may be called repeatedly in tests.
	srv.promMiddleware = fiberprometheus.New("clearprd-api")

	return srv, nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the DB and LLM
// client itself. Metrics are not enabled.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, llmClient llm.Client) (*Server, error) {
	set, err := prompts.Get(prompts.Variant(cfg.PromptVariant))
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	prdRepo := repository.NewPRDRepository(db)

	return &Server{
		config:      cfg,
		db:          db,
		userRepo:    userRepo,
		prdRepo:     prdRepo,
		analyzer:    service.NewIdeaAnalyzer(llmClient, set),
		synthesizer: service.NewPRDSynthesizer(llmClient, set),
	}, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", s.Signup)
	auth.Post("/login", s.Login)
	auth.Get("/me", s.AuthRequired(), s.Me)

	// PRD generation routes (unauthenticated, like the public landing flow)
	api.Post("/analyze", s.Analyze)
	api.Post("/generate-prd", s.GeneratePRD)

	// Saved PRD routes, all owner-scoped
	prds := api.Group("/prds", s.AuthRequired())
	prds.Post("/", s.CreatePRD)
	prds.Get("/", s.ListPRDs)
	// Define specific /:id/:resource routes BEFORE generic /:id routes
	prds.Patch("/:id/idea", s.UpdatePRDIdea)
	prds.Put("/:id/content", s.UpdatePRDContent)
	prds.Delete("/:id/content", s.ClearPRDContent)
	prds.Get("/:id", s.GetPRD)
	prds.Delete("/:id", s.DeletePRD)
}

// LivenessCheck reports that the process is up.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "alive"})
}

// ReadinessCheck reports whether the service can reach its database.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"checks": fiber.Map{"database": "unhealthy"},
		})
	}

	return c.JSON(fiber.Map{
		"status": "healthy",
		"checks": fiber.Map{"database": "healthy"},
	})
}

// AuthRequired returns middleware that enforces a valid bearer token and
// resolves its subject to a live user.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		// Parse and validate token
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			// Validate signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})

		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// Extract claims
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		// Validate issuer and audience
		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		// Subject carries the user's email
		email, ok := claims["sub"].(string)
		if !ok || email == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		// Resolve the email to a live user
		user, err := s.userRepo.GetByEmail(c.Context(), email)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, err)
		}
		if user == nil {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		// Store identity in context
		c.Locals("userID", user.ID)
		c.Locals("userEmail", user.Email)

		return c.Next()
	}
}

// Shutdown gracefully releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
