package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/locdecor/locdecor/internal/report"
	"github.com/locdecor/locdecor/internal/service"
)

// DashboardHandler handles dashboard and report export HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Metrics handles GET /api/v1/dashboard/metrics
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	start, end, err := parsePeriod(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	metrics, err := h.dashboardService.Metrics(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}

// RevenueChart handles GET /api/v1/dashboard/revenue-chart
func (h *DashboardHandler) RevenueChart(w http.ResponseWriter, r *http.Request) {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))

	points, err := h.dashboardService.RevenueChart(r.Context(), months)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, points)
}

// OccupationChart handles GET /api/v1/dashboard/occupation-chart
func (h *DashboardHandler) OccupationChart(w http.ResponseWriter, r *http.Request) {
	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	points, err := h.dashboardService.OccupationChart(r.Context(), days)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, points)
}

// TodayReturns handles GET /api/v1/dashboard/today-returns
func (h *DashboardHandler) TodayReturns(w http.ResponseWriter, r *http.Request) {
	orders, err := h.dashboardService.TodayReturns(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// UpcomingPickups handles GET /api/v1/dashboard/upcoming-pickups
func (h *DashboardHandler) UpcomingPickups(w http.ResponseWriter, r *http.Request) {
	orders, err := h.dashboardService.UpcomingPickups(r.Context())
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

// Export handles GET /api/v1/dashboard/export
func (h *DashboardHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "pdf"
	}

	start, end, err := parsePeriod(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.dashboardService.Report(r.Context(), start, end)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	stamp := time.Now().Format("2006-01-02")
	switch format {
	case "pdf":
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=relatorio-"+stamp+".pdf")
		err = report.WritePDF(w, data)
	case "excel", "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename=relatorio-"+stamp+".xlsx")
		err = report.WriteExcel(w, data)
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=relatorio-"+stamp+".csv")
		err = report.WriteCSV(w, data)
	default:
		respondError(w, http.StatusBadRequest, "format must be 'pdf', 'excel' or 'csv'")
		return
	}

	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to export report")
	}
}

// parsePeriod reads the start/end query parameters, defaulting to the
// trailing six months ending today
func parsePeriod(r *http.Request) (time.Time, time.Time, error) {
	now := time.Now()
	start := now.AddDate(0, -6, 0)
	end := now

	query := r.URL.Query()
	if raw := query.Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date %q", raw)
		}
		start = parsed
	}
	if raw := query.Get("end"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date %q", raw)
		}
		end = parsed
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date precedes start date")
	}

	return start, end, nil
}
