package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locdecor/locdecor/internal/domain"
)

func sampleOrder() *domain.Order {
	address := "Rua das Flores"
	addressNumber := "77"
	neighborhood := "Centro"
	phone := "48999991234"
	acquisition := decimal.RequireFromString("200.00")

	item := &domain.InventoryItem{
		ID:               uuid.New(),
		Name:             "Mesa de cilindros",
		Category:         "MÓVEIS",
		AcquisitionPrice: &acquisition,
	}

	return &domain.Order{
		ID:          uuid.New(),
		OrderNumber: "PED-000042",
		Client: &domain.Client{
			Name:          "Maria Silva",
			CPF:           "33089731894",
			Phone:         &phone,
			Address:       &address,
			AddressNumber: &addressNumber,
			Neighborhood:  &neighborhood,
		},
		Plan:        "BRONZE",
		PickupDate:  time.Date(2026, time.September, 4, 0, 0, 0, 0, time.UTC),
		PickupTime:  "10:00",
		ReturnDate:  time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		ReturnTime:  "18:00",
		TotalAmount: decimal.RequireFromString("120.00"),
		Items: []domain.OrderItem{
			{Item: item, Quantity: 1, UnitPrice: decimal.RequireFromString("120.00")},
		},
	}
}

func TestContractText(t *testing.T) {
	now := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
	text := ContractText(sampleOrder(), now)

	assert.Contains(t, text, "CONTRATO DE LOCAÇÃO DE MATERIAIS")
	assert.Contains(t, text, "Cláudia Amélia Gonçalves")
	assert.Contains(t, text, "CPF: 330.897.318-94")
	assert.Contains(t, text, "Maria Silva")
	assert.Contains(t, text, "Data de Retirada: 04/09/2026 às 10:00")
	assert.Contains(t, text, "Data de Devolução: 07/09/2026 às 18:00")
	assert.Contains(t, text, "Valor total da locação: R$ 120.00")
	assert.Contains(t, text, "Via Pix (50% na reserva e o Restante na retirada)")
	assert.Contains(t, text, "1º Pelo presente contrato de locação")
	assert.Contains(t, text, "10º DEPOIS DE FECHADO O CONTRATO")
	assert.Contains(t, text, "Mesa de cilindros: R$ 200.00")
	assert.Contains(t, text, "Palhoça - SC, 28/08/2026")
}

func TestContractTextMissingAcquisitionPrice(t *testing.T) {
	order := sampleOrder()
	order.Items[0].Item.AcquisitionPrice = nil

	text := ContractText(order, time.Now())

	assert.Contains(t, text, "Mesa de cilindros: N/A")
}

func TestClausesAreComplete(t *testing.T) {
	clauses := Clauses(sampleOrder())

	assert.Len(t, clauses, 10)
	for i, clause := range clauses {
		assert.NotEmpty(t, clause, "clause %d", i+1)
	}
}

func TestContractPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ContractPDF(&buf, sampleOrder(), time.Now()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestReceiptPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ReceiptPDF(&buf, sampleOrder()))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Greater(t, buf.Len(), 500)
}
