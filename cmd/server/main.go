package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"floorplan-compliance-backend/internal/config"
	"floorplan-compliance-backend/internal/handler"
	"floorplan-compliance-backend/internal/middleware"
	"floorplan-compliance-backend/internal/rules"
	"floorplan-compliance-backend/internal/service"
	"floorplan-compliance-backend/internal/storage"
	"floorplan-compliance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Load rule tables (defaults, optionally overridden by RULES_FILE)
	ruleSet, err := rules.Load(cfg.Rules.File)
	if err != nil {
		log.Fatalf("Failed to load rule tables: %v", err)
	}
	if cfg.Rules.File != "" {
		log.Printf("Rule overrides loaded from %s", cfg.Rules.File)
	}

	// 3. Initialize services
	buildingCodeService := service.NewBuildingCodeService(ruleSet)
	vastuService := service.NewVastuService(ruleSet)
	sunlightService := service.NewSunlightService(ruleSet)
	analysisService := service.NewAnalysisService(buildingCodeService, vastuService, sunlightService)
	extractionService := service.NewExtractionService()

	// 4. Initialize upload store
	uploadStore := storage.NewUploadStore()

	// 5. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 6. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 7. Register handlers
	analysisHandler := handler.NewAnalysisHandler(buildingCodeService, vastuService, sunlightService, analysisService)
	uploadHandler := handler.NewUploadHandler(extractionService, uploadStore, cfg)

	// 8. Define routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Floor Plan Compliance Checker API",
			"version": "1.0.0",
			"status":  "active",
			"endpoints": gin.H{
				"analysis": "/api/analyze",
				"upload":   "/api/upload",
			},
		})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "floorplan-compliance-backend",
			"services": gin.H{
				"building_code": "active",
				"vastu":         "active",
				"sunlight":      "active",
			},
		})
	})

	// Analysis routes
	analyze := r.Group("/api/analyze")
	{
		analyze.POST("/building-codes", analysisHandler.AnalyzeBuildingCodes)
		analyze.POST("/vastu", analysisHandler.AnalyzeVastu)
		analyze.POST("/sunlight", analysisHandler.AnalyzeSunlight)
		analyze.POST("/complete", analysisHandler.AnalyzeComplete)
		analyze.GET("/analysis-types", analysisHandler.GetAnalysisTypes)
	}

	// Upload routes
	upload := r.Group("/api/upload")
	{
		upload.POST("/floor-plan", uploadHandler.UploadFloorPlan)
		upload.POST("/sample-data", uploadHandler.GenerateSampleData)
		upload.GET("/sample-templates", uploadHandler.GetSampleTemplates)
		upload.GET("/upload-status/:file_id", uploadHandler.GetUploadStatus)
	}

	// 9. Start server with graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
