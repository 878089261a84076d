package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/locdecor/locdecor/internal/api/handlers"
	"github.com/locdecor/locdecor/internal/api/middleware"
	"github.com/locdecor/locdecor/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	authService *service.AuthService,
	clientService *service.ClientService,
	inventoryService *service.InventoryService,
	orderService *service.OrderService,
	transactionService *service.TransactionService,
	taskService *service.TaskService,
	dashboardService *service.DashboardService,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logging)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	// Health checks (no auth required)
	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready)

	// Create handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	taskHandler := handlers.NewTaskHandler(taskService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints (no auth required)
		r.Post("/auth/signup", authHandler.SignUp)
		r.Post("/auth/signin", authHandler.SignIn)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/signout", authHandler.SignOut)
			r.Get("/auth/session", authHandler.Session)

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", clientHandler.List)
				r.Post("/", clientHandler.Create)
				r.Get("/{id}", clientHandler.Get)
				r.Put("/{id}", clientHandler.Update)
				r.Delete("/{id}", clientHandler.Delete)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.List)
				r.Post("/", inventoryHandler.Create)
				r.Get("/categories", inventoryHandler.Categories)
				r.Get("/{id}", inventoryHandler.Get)
				r.Put("/{id}", inventoryHandler.Update)
				r.Delete("/{id}", inventoryHandler.Delete)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.List)
				r.Post("/", orderHandler.Create)
				r.Get("/{id}", orderHandler.Get)
				r.Put("/{id}", orderHandler.Update)
				r.Post("/{id}/confirm-pickup", orderHandler.ConfirmPickup)
				r.Post("/{id}/confirm-return", orderHandler.ConfirmReturn)
				r.Post("/{id}/cancel", orderHandler.Cancel)
				r.Get("/{id}/contract", orderHandler.Contract)
				r.Get("/{id}/contract.pdf", orderHandler.ContractPDF)
				r.Get("/{id}/receipt.pdf", orderHandler.ReceiptPDF)
			})

			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", transactionHandler.List)
				r.Post("/", transactionHandler.Create)
				r.Put("/{id}", transactionHandler.Update)
				r.Delete("/{id}", transactionHandler.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.List)
				r.Post("/", taskHandler.Create)
				r.Get("/alerts", taskHandler.Alerts)
				r.Put("/{id}", taskHandler.Update)
				r.Post("/{id}/complete", taskHandler.Complete)
				r.Delete("/{id}", taskHandler.Delete)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/metrics", dashboardHandler.Metrics)
				r.Get("/revenue-chart", dashboardHandler.RevenueChart)
				r.Get("/occupation-chart", dashboardHandler.OccupationChart)
				r.Get("/today-returns", dashboardHandler.TodayReturns)
				r.Get("/upcoming-pickups", dashboardHandler.UpcomingPickups)
				r.Get("/export", dashboardHandler.Export)
			})
		})
	})

	return r
}
