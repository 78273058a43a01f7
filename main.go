package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"axis-server/config"
	"axis-server/database"
	"axis-server/handlers"
	"axis-server/services"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Select the collection store
	var store database.Store
	if config.AppConfig.Storage == "memory" {
		log.Println("Using in-memory store")
		store = database.NewMemoryStore()
	} else {
		db, err := database.Connect(config.AppConfig.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		defer db.Close()

		if err := db.InitializeTables(); err != nil {
			log.Fatal("Failed to initialize tables:", err)
		}
		store = db
	}

	// Initialize the AI insight service. Missing credentials degrade the
	// insight endpoints to their fallback payloads instead of failing boot.
	if err := services.InitializeInsights(config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel); err != nil {
		log.Printf("Insight service disabled: %v", err)
	}

	// Initialize attachment storage, also best-effort.
	if err := services.InitializeAttachments(config.AppConfig.CloudinaryURL); err != nil {
		log.Printf("Attachment storage disabled: %v", err)
	}

	// Set Gin mode
	if config.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "AXIS Server is running",
		})
	})

	handlers.InitializeHandlers(store)

	// Admin bootstrap (no auth required for initial setup)
	router.POST("/setup-admin", handlers.SetupAdmin)

	api := router.Group("/api/v1")
	{
		// Authentication routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.RegisterUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/validate", handlers.ValidateToken)
			auth.GET("/me", handlers.AuthMiddleware(), handlers.GetCurrentUser)
		}

		// Everything below requires a valid token
		protected := api.Group("")
		protected.Use(handlers.AuthMiddleware())
		{
			protected.GET("/catalogs", handlers.GetCatalogs)
			protected.GET("/users", handlers.GetUsers)

			// Contact routes
			contacts := protected.Group("/contacts")
			{
				contacts.GET("", handlers.GetContacts)
				contacts.POST("", handlers.CreateContact)
				contacts.GET("/:id", handlers.GetContact)
				contacts.PUT("/:id", handlers.UpdateContact)
				contacts.GET("/:id/timeline", handlers.GetContactTimeline)
				contacts.GET("/:id/interactions", handlers.GetContactInteractions)
				contacts.POST("/:id/interactions", handlers.CreateContactInteraction)
				contacts.GET("/:id/tasks", handlers.GetContactTasks)
				contacts.POST("/:id/tasks", handlers.CreateContactTask)
				contacts.POST("/:id/score", handlers.ScoreContact)
			}

			// Task routes
			tasks := protected.Group("/tasks")
			{
				tasks.GET("", handlers.GetTasks)
				tasks.POST("/:id/complete", handlers.CompleteTask)
			}

			// Goal routes: reads are open, writes are admin-only
			goals := protected.Group("/goals")
			{
				goals.GET("/:userId/:service", handlers.GetGoal)

				adminGoals := goals.Group("")
				adminGoals.Use(handlers.AdminMiddleware())
				{
					adminGoals.PUT("/:userId/:service", handlers.PutGoal)
					adminGoals.PUT("/:userId/:service/yearly", handlers.SetYearlyGoal)
					adminGoals.POST("/:userId/:service/distribute", handlers.DistributeGoal)
				}
			}

			// Dashboard routes
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/performance", handlers.GetPerformance)
				dashboard.GET("/stats", handlers.GetDashboardStats)
				dashboard.GET("/funnel", handlers.GetFunnel)
			}

			protected.POST("/insights/analyze", handlers.AnalyzeData)
			protected.POST("/uploads", handlers.UploadAttachment)
		}
	}

	// Start server
	log.Printf("Starting AXIS Server on 0.0.0.0:%s", config.AppConfig.ServerPort)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+config.AppConfig.ServerPort, corsHandler.Handler(router)))
}
