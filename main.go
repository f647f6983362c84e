package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/PrinceS45/SIH-CampusOne-sub000/config"
	"github.com/PrinceS45/SIH-CampusOne-sub000/dto"
	"github.com/PrinceS45/SIH-CampusOne-sub000/jobs"
	"github.com/PrinceS45/SIH-CampusOne-sub000/models"
	"github.com/PrinceS45/SIH-CampusOne-sub000/routes"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/audit"
	"github.com/PrinceS45/SIH-CampusOne-sub000/services/logger"
)

func migrateTables() {
	err := config.DB.AutoMigrate(
		&models.User{},
		&models.Student{},
		&models.Hostel{},
		&models.Room{},
		&models.Fee{},
		&models.Exam{},
		&models.Result{},
		&models.AuditLog{},
		&models.Counter{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env not loaded, falling back to environment variables: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	dto.RegisterValidations()
	migrateTables()

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)
	auditService := audit.NewAsyncService(config.DB, appLogger)

	authService := services.NewAuthService(services.AuthServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	if err := authService.SeedAdmin(context.Background()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	hostelService, feeService := routes.SetupRoutes(router, config.DB, config.RedisClient, m, auditService)

	jobs.SetHostelReconciler(hostelService)
	jobs.SetFeeOverdueMarker(feeService)
	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Println("Server starting on port " + port + "...")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	c.Stop()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	// Drain queued audit entries before the process exits.
	auditService.Close()
	log.Println("Server stopped")
}
