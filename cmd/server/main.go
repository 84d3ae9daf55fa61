package main

import (
	"log"

	"github.com/adityasetu/health-assessment-api/internal/config"
	"github.com/adityasetu/health-assessment-api/internal/covid"
	"github.com/adityasetu/health-assessment-api/internal/database"
	"github.com/adityasetu/health-assessment-api/internal/handlers"
	"github.com/adityasetu/health-assessment-api/internal/middleware"
	"github.com/adityasetu/health-assessment-api/internal/repository"
	"github.com/adityasetu/health-assessment-api/internal/services"
	"github.com/adityasetu/health-assessment-api/internal/session"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations and seed the admin account
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedAdmin(database.GetDB(), cfg); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// Session store: in-memory by default, Redis when configured so sessions
	// survive restarts
	var sessionStore session.Store
	if cfg.RedisHost != "" {
		sessionStore = session.NewRedisStore(cfg.RedisHost+":"+cfg.RedisPort, cfg.SessionTTL)
		log.Println("Using Redis session store")
	} else {
		sessionStore = session.NewMemoryStore(cfg.SessionTTL)
	}

	// Covid case data feeds the dashboard only
	covidData := covid.Load(cfg.CovidDataPath)
	if len(covidData) == 0 {
		log.Printf("No covid case data loaded from %s", cfg.CovidDataPath)
	}

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	assessmentRepo := repository.NewAssessmentRepository(db)
	alertRepo := repository.NewAlertRepository(db)

	authService := services.NewAuthService(userRepo)
	assessmentService := services.NewAssessmentService(assessmentRepo)
	alertService := services.NewAlertService(alertRepo, userRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, sessionStore)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentService)
	alertHandler := handlers.NewAlertHandler(alertService)
	dashboardHandler := handlers.NewDashboardHandler(authService, assessmentService, alertService, covidData)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Health Assessment API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(sessionStore), authHandler.GetCurrentUser)
		}

		// Questionnaire and assessments (protected)
		api.GET("/questions", middleware.RequireAuth(sessionStore), assessmentHandler.GetQuestions)

		assessments := api.Group("/assessments")
		assessments.Use(middleware.RequireAuth(sessionStore))
		{
			assessments.POST("", assessmentHandler.SubmitAssessment)
			assessments.GET("", assessmentHandler.ListAssessments)
		}

		// Alerts (protected; create/deactivate are admin only)
		alerts := api.Group("/alerts")
		alerts.Use(middleware.RequireAuth(sessionStore))
		{
			alerts.GET("", alertHandler.ListAlerts)
			alerts.POST("", middleware.RequireAdmin(userRepo), alertHandler.CreateAlert)
			alerts.DELETE("/:id", middleware.RequireAdmin(userRepo), alertHandler.DeactivateAlert)
		}

		// Dashboard (protected)
		api.GET("/dashboard", middleware.RequireAuth(sessionStore), dashboardHandler.GetDashboard)
	}

	// Start server
	log.Println("Server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
