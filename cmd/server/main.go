package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/locdecor/locdecor/internal/api"
	"github.com/locdecor/locdecor/internal/config"
	"github.com/locdecor/locdecor/internal/repository"
	"github.com/locdecor/locdecor/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize repositories
	clientRepo, err := repository.NewClientRepository(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer clientRepo.Close()

	// Shared database connection for the other repositories
	db := clientRepo.GetDB()

	inventoryRepo := repository.NewInventoryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	sessionService, err := service.NewSessionService(cfg.RedisURL, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer sessionService.Close()

	authService := service.NewAuthService(userRepo, sessionService, cfg.JWTSecret, cfg.SessionTTL)
	clientService := service.NewClientService(clientRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	orderService := service.NewOrderService(orderRepo, clientRepo)
	transactionService := service.NewTransactionService(transactionRepo)
	taskService := service.NewTaskService(taskRepo)
	dashboardService := service.NewDashboardService(orderRepo, transactionRepo, availabilityRepo)

	// Set up router
	router := api.NewRouter(
		authService,
		clientService,
		inventoryService,
		orderService,
		transactionService,
		taskService,
		dashboardService,
	)

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting LocDecor server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
