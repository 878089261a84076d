package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/locdecor/locdecor/internal/domain"
)

func sampleReport() *domain.ReportData {
	return &domain.ReportData{
		Metrics: domain.DashboardMetrics{
			TotalOrders:        10,
			CompletedOrders:    7,
			CanceledOrders:     1,
			Revenue:            decimal.RequireFromString("3500.00"),
			Expenses:           decimal.RequireFromString("1200.00"),
			Balance:            decimal.RequireFromString("2300.00"),
			OccupationRate:     42.5,
			MonthlyGrowth:      12.5,
			ReturningCustomers: 3,
		},
		RevenueChart: []domain.ChartPoint{
			{Date: "Jul/2026", Value: decimal.RequireFromString("1500.00")},
			{Date: "Aug/2026", Value: decimal.RequireFromString("2000.00")},
		},
		GeneratedAt: time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC),
		PeriodStart: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:   time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC),
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	reader := csv.NewReader(strings.NewReader(buf.String()))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Relatório de Desempenho"}, records[0])
	assert.Contains(t, records[1][0], "01/03/2026")
	assert.Contains(t, records[1][0], "28/08/2026")

	flat := buf.String()
	assert.Contains(t, flat, "Total de Pedidos,10")
	assert.Contains(t, flat, "Receita Total,R$ 3500.00")
	assert.Contains(t, flat, "Jul/2026,1500.00")
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePDF(&buf, sampleReport()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteExcel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExcel(&buf, sampleReport()))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "Métricas")
	assert.Contains(t, f.GetSheetList(), "Receitas")

	header, err := f.GetCellValue("Métricas", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Métrica", header)

	month, err := f.GetCellValue("Receitas", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jul/2026", month)
}
