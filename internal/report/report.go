package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/locdecor/locdecor/internal/domain"
)

// metricsRows lays out the summary table shared by every export format
func metricsRows(m domain.DashboardMetrics) [][]string {
	return [][]string{
		{"Métrica", "Valor"},
		{"Total de Pedidos", fmt.Sprintf("%d", m.TotalOrders)},
		{"Pedidos Concluídos", fmt.Sprintf("%d", m.CompletedOrders)},
		{"Receita Total", "R$ " + m.Revenue.StringFixed(2)},
		{"Despesas", "R$ " + m.Expenses.StringFixed(2)},
		{"Saldo", "R$ " + m.Balance.StringFixed(2)},
		{"Taxa de Ocupação", fmt.Sprintf("%.1f%%", m.OccupationRate)},
		{"Clientes Recorrentes", fmt.Sprintf("%d", m.ReturningCustomers)},
		{"Crescimento Mensal", fmt.Sprintf("%.1f%%", m.MonthlyGrowth)},
	}
}

// WritePDF renders the performance report as a PDF table
func WritePDF(w io.Writer, data *domain.ReportData) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr("Relatório de Desempenho"), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Período: %s a %s",
		data.PeriodStart.Format("02/01/2006"), data.PeriodEnd.Format("02/01/2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	rows := metricsRows(data.Metrics)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(80, 7, tr(rows[0][0]), "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, tr(rows[0][1]), "1", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows[1:] {
		pdf.CellFormat(80, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Receitas por Mês"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, point := range data.RevenueChart {
		pdf.CellFormat(80, 6, tr(point.Date), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, "R$ "+point.Value.StringFixed(2), "1", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

// WriteExcel renders the performance report as a workbook with a metrics
// sheet and a monthly revenue sheet
func WriteExcel(w io.Writer, data *domain.ReportData) error {
	f := excelize.NewFile()
	defer f.Close()

	const metricsSheet = "Métricas"
	if err := f.SetSheetName("Sheet1", metricsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	for i, row := range metricsRows(data.Metrics) {
		if err := f.SetSheetRow(metricsSheet, fmt.Sprintf("A%d", i+1), &[]interface{}{row[0], row[1]}); err != nil {
			return fmt.Errorf("failed to write metrics row: %w", err)
		}
	}

	const revenueSheet = "Receitas"
	if _, err := f.NewSheet(revenueSheet); err != nil {
		return fmt.Errorf("failed to create revenue sheet: %w", err)
	}
	if err := f.SetSheetRow(revenueSheet, "A1", &[]interface{}{"Mês", "Receita"}); err != nil {
		return fmt.Errorf("failed to write revenue header: %w", err)
	}
	for i, point := range data.RevenueChart {
		value, _ := point.Value.Float64()
		if err := f.SetSheetRow(revenueSheet, fmt.Sprintf("A%d", i+2), &[]interface{}{point.Date, value}); err != nil {
			return fmt.Errorf("failed to write revenue row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// WriteCSV renders the performance report as a flat CSV document
func WriteCSV(w io.Writer, data *domain.ReportData) error {
	cw := csv.NewWriter(w)

	records := [][]string{
		{"Relatório de Desempenho"},
		{fmt.Sprintf("Período: %s a %s",
			data.PeriodStart.Format("02/01/2006"), data.PeriodEnd.Format("02/01/2006"))},
		{},
		{"Métricas"},
	}
	records = append(records, metricsRows(data.Metrics)...)
	records = append(records, []string{}, []string{"Receitas por Mês"}, []string{"Mês", "Receita"})
	for _, point := range data.RevenueChart {
		records = append(records, []string{point.Date, point.Value.StringFixed(2)})
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
