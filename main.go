package main

import (
	"log"
	"os"

	"github.com/PraharshPatni13/brokerage-filler/config"
	"github.com/PraharshPatni13/brokerage-filler/handler"
	"github.com/PraharshPatni13/brokerage-filler/service"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Ensure upload and output directories exist
	for _, dir := range []string{cfg.UploadFolder, cfg.OutputFolder} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	extractService := service.NewExtractService(pdfProcessor, cfg)
	fillService := service.NewFillService(cfg)

	// Initialize handler layer
	brokerageHandler := handler.NewBrokerageHandler(extractService, fillService, cfg.OutputFolder)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = cfg.MaxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Brokerage Trail Filler",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		brokerage := api.Group("/brokerage")
		{
			brokerage.POST("/fill", brokerageHandler.FillBrokerage)
		}
	}

	// Start server
	log.Printf("Starting Brokerage Trail Filler Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
