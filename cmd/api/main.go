package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/joho/godotenv"

	"github.com/vcampos/healthtrack-api/internal/config"
	"github.com/vcampos/healthtrack-api/internal/database"
	"github.com/vcampos/healthtrack-api/internal/handlers"
	"github.com/vcampos/healthtrack-api/internal/logging"
	"github.com/vcampos/healthtrack-api/internal/middleware"
	"github.com/vcampos/healthtrack-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	// --- Database Connection ---
	ctx := context.Background()
	client, db, err := database.Connect(ctx, cfg)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)
	logger.WithField("database", cfg.MongoDatabase).Info("Connected to MongoDB")

	// --- Stores and Handlers ---
	h := handlers.NewHandler(
		store.NewMongoAppointmentStore(db),
		store.NewMongoMedicationStore(db),
		logger,
	)

	// Typed request schemas: unknown body fields are rejected, schedule
	// entries must be HH:MM.
	binding.EnableDecoderDisallowUnknownFields = true
	if err := handlers.RegisterValidators(); err != nil {
		logger.WithError(err).Fatal("Failed to register validators")
	}

	// --- Gin Router ---
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	if len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	// --- Routes ---
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/appointments", h.ListAppointments)
	r.POST("/appointments", h.CreateAppointment)
	r.GET("/appointments/:id", h.GetAppointment)
	r.PUT("/appointments/:id", h.UpdateAppointment)
	r.DELETE("/appointments/:id", h.DeleteAppointment)

	r.GET("/medications", h.ListMedications)
	r.POST("/medications", h.CreateMedication)
	r.GET("/medications/:id", h.GetMedication)
	r.PUT("/medications/:id", h.UpdateMedication)
	r.DELETE("/medications/:id", h.DeleteMedication)

	logger.WithField("port", cfg.Port).Info("Starting server")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("Server stopped")
	}
}
