package service

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/locdecor/locdecor/internal/domain"
	"github.com/locdecor/locdecor/internal/repository"
)

// DashboardService reduces independent read queries into the summary metrics
// and chart series shown on the dashboard
type DashboardService struct {
	orderRepo        *repository.OrderRepository
	transactionRepo  *repository.TransactionRepository
	availabilityRepo *repository.AvailabilityRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo *repository.OrderRepository,
	transactionRepo *repository.TransactionRepository,
	availabilityRepo *repository.AvailabilityRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:        orderRepo,
		transactionRepo:  transactionRepo,
		availabilityRepo: availabilityRepo,
	}
}

// Metrics aggregates the dashboard summary for [start, end]. The five
// independent reads are fanned out concurrently and joined; the first error
// cancels the remaining queries.
func (s *DashboardService) Metrics(ctx context.Context, start, end time.Time) (*domain.DashboardMetrics, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		orders         []domain.Order
		transactions   []domain.Transaction
		clientIDs      []uuid.UUID
		availability   []domain.ItemAvailability
		previousOrders []domain.Order
	)

	prevStart := startOfMonth(start.AddDate(0, -1, 0))
	prevEnd := endOfMonth(end.AddDate(0, -1, 0))
	returningSince := startOfMonth(time.Now().AddDate(0, -3, 0))

	fetches := []func() error{
		func() (err error) {
			orders, err = s.orderRepo.ListCreatedBetween(ctx, start, end)
			return err
		},
		func() (err error) {
			transactions, err = s.transactionRepo.ListBetween(ctx, start, end)
			return err
		},
		func() (err error) {
			clientIDs, err = s.orderRepo.ListClientIDsSince(ctx, returningSince)
			return err
		},
		func() (err error) {
			availability, err = s.availabilityRepo.ListRange(ctx, start, end)
			return err
		},
		func() (err error) {
			previousOrders, err = s.orderRepo.ListCreatedBetween(ctx, prevStart, prevEnd)
			return err
		},
	}

	var wg sync.WaitGroup
	errCh := make(chan error, len(fetches))

	for _, fetch := range fetches {
		wg.Add(1)
		go func(fetch func() error) {
			defer wg.Done()
			if err := fetch(); err != nil {
				errCh <- err
				cancel()
			}
		}(fetch)
	}

	wg.Wait()
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, err
	}

	metrics := ComputeMetrics(orders, transactions, clientIDs, availability, len(previousOrders))
	return &metrics, nil
}

// ComputeMetrics reduces the fetched result sets into the dashboard summary
func ComputeMetrics(
	orders []domain.Order,
	transactions []domain.Transaction,
	clientIDs []uuid.UUID,
	availability []domain.ItemAvailability,
	previousOrderCount int,
) domain.DashboardMetrics {
	var completed, canceled int
	for _, o := range orders {
		switch o.OrderStatus {
		case domain.OrderStatusCompleted:
			completed++
		case domain.OrderStatusCanceled:
			canceled++
		}
	}

	revenue := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		switch t.Type {
		case domain.TransactionIncome:
			revenue = revenue.Add(t.Amount)
		case domain.TransactionExpense:
			expenses = expenses.Add(t.Amount)
		}
	}

	ordersPerClient := make(map[uuid.UUID]int)
	for _, id := range clientIDs {
		ordersPerClient[id]++
	}
	returning := 0
	for _, count := range ordersPerClient {
		if count > 1 {
			returning++
		}
	}

	return domain.DashboardMetrics{
		TotalOrders:        len(orders),
		CompletedOrders:    completed,
		CanceledOrders:     canceled,
		Revenue:            revenue,
		Expenses:           expenses,
		Balance:            revenue.Sub(expenses),
		OccupationRate:     OccupancyRate(availability),
		ReturningCustomers: returning,
		MonthlyGrowth:      MonthlyGrowth(len(orders), previousOrderCount),
	}
}

// OccupancyRate averages reserved/(reserved+available) across availability
// rows, as a percentage. Rows with no trackable quantity contribute zero,
// and an empty window yields zero.
func OccupancyRate(availability []domain.ItemAvailability) float64 {
	if len(availability) == 0 {
		return 0
	}

	var sum float64
	for _, rec := range availability {
		sum += utilization(rec)
	}
	return sum / float64(len(availability))
}

func utilization(rec domain.ItemAvailability) float64 {
	total := rec.ReservedQuantity + rec.AvailableQuantity
	if total == 0 {
		return 0
	}
	return float64(rec.ReservedQuantity) / float64(total) * 100
}

// MonthlyGrowth is the percentage change of order counts against the
// preceding month. An empty previous period reads as 0% growth rather than
// dividing by zero.
func MonthlyGrowth(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}

// RevenueChart sums income by month over the trailing months window
func (s *DashboardService) RevenueChart(ctx context.Context, months int) ([]domain.ChartPoint, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	start := startOfMonth(now.AddDate(0, -(months - 1), 0))
	end := endOfMonth(now)

	transactions, err := s.transactionRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return MonthlyRevenue(transactions, start, months), nil
}

// MonthlyRevenue buckets income entries into one point per month starting at
// start, including months with no income
func MonthlyRevenue(transactions []domain.Transaction, start time.Time, months int) []domain.ChartPoint {
	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != domain.TransactionIncome {
			continue
		}
		key := t.Date.Format("2006-01")
		sums[key] = sums[key].Add(t.Amount)
	}

	points := make([]domain.ChartPoint, 0, months)
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0)
		points = append(points, domain.ChartPoint{
			Date:  month.Format("Jan/2006"),
			Value: sums[month.Format("2006-01")],
		})
	}
	return points
}

// OccupationChart sums daily utilization over the trailing days window
func (s *DashboardService) OccupationChart(ctx context.Context, days int) ([]domain.OccupancyPoint, error) {
	if days <= 0 {
		days = 30
	}

	now := time.Now()
	start := startOfDay(now).AddDate(0, 0, -days)

	availability, err := s.availabilityRepo.ListRange(ctx, start, now)
	if err != nil {
		return nil, err
	}

	return DailyOccupancy(availability), nil
}

// DailyOccupancy reduces availability rows into one point per day, in date
// order, with values rounded to two decimals
func DailyOccupancy(availability []domain.ItemAvailability) []domain.OccupancyPoint {
	sums := make(map[string]float64)
	var keys []string
	for _, rec := range availability {
		key := rec.Date.Format("2006-01-02")
		if _, seen := sums[key]; !seen {
			keys = append(keys, key)
		}
		sums[key] += utilization(rec)
	}

	points := make([]domain.OccupancyPoint, 0, len(keys))
	for _, key := range keys {
		day, _ := time.Parse("2006-01-02", key)
		points = append(points, domain.OccupancyPoint{
			Date:  day.Format("02/01"),
			Value: math.Round(sums[key]*100) / 100,
		})
	}
	return points
}

// TodayReturns lists active orders due back today, earliest return time first
func (s *DashboardService) TodayReturns(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.ListReturningOn(ctx, startOfDay(time.Now()))
}

// UpcomingPickups lists pending orders picking up within the next week
func (s *DashboardService) UpcomingPickups(ctx context.Context) ([]domain.Order, error) {
	today := startOfDay(time.Now())
	return s.orderRepo.ListPickupsBetween(ctx, today, today.AddDate(0, 0, 7))
}

// Report assembles the export payload for [start, end]
func (s *DashboardService) Report(ctx context.Context, start, end time.Time) (*domain.ReportData, error) {
	metrics, err := s.Metrics(ctx, start, end)
	if err != nil {
		return nil, err
	}

	revenueChart, err := s.RevenueChart(ctx, 6)
	if err != nil {
		return nil, err
	}

	return &domain.ReportData{
		Metrics:      *metrics,
		RevenueChart: revenueChart,
		GeneratedAt:  time.Now(),
		PeriodStart:  start,
		PeriodEnd:    end,
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func endOfMonth(t time.Time) time.Time {
	return startOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
