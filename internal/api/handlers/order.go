package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/report"
	"github.com/locdecor/locdecor/internal/service"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.OrderFilter{
		Search: query.Get("search"),
		Status: domain.OrderStatus(query.Get("status")),
	}

	orders, err := h.orderService.List(r.Context(), filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// Get handles GET /api/v1/orders/{id}
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), &input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// Update handles PUT /api/v1/orders/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	var input domain.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(r.Context(), id, &input)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// ConfirmPickup handles POST /api/v1/orders/{id}/confirm-pickup
func (h *OrderHandler) ConfirmPickup(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.ConfirmPickup)
}

// ConfirmReturn handles POST /api/v1/orders/{id}/confirm-return
func (h *OrderHandler) ConfirmReturn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.ConfirmReturn)
}

// Cancel handles POST /api/v1/orders/{id}/cancel
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.orderService.Cancel)
}

func (h *OrderHandler) transition(w http.ResponseWriter, r *http.Request, apply func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	if err := apply(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Contract handles GET /api/v1/orders/{id}/contract
func (h *OrderHandler) Contract(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"contract": report.ContractText(order, time.Now()),
	})
}

// ContractPDF handles GET /api/v1/orders/{id}/contract.pdf
func (h *OrderHandler) ContractPDF(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("contrato-%s.pdf", slugify(order.Client.Name))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := report.ContractPDF(w, order, time.Now()); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render contract")
	}
}

// ReceiptPDF handles GET /api/v1/orders/{id}/receipt.pdf
func (h *OrderHandler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	order, ok := h.fetchOrder(w, r)
	if !ok {
		return
	}

	filename := fmt.Sprintf("ordem-retirada-%s.pdf", order.OrderNumber)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	if err := report.ReceiptPDF(w, order); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render receipt")
	}
}

func (h *OrderHandler) fetchOrder(w http.ResponseWriter, r *http.Request) (*domain.Order, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid order id")
		return nil, false
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return nil, false
	}
	if order.Client == nil {
		respondError(w, http.StatusInternalServerError, "Order has no client attached")
		return nil, false
	}

	return order, true
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
