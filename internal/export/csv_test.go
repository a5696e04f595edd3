package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoptally/backend/internal/domain"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "66.00", Money(6600))
	assert.Equal(t, "0.05", Money(5))
	assert.Equal(t, "0.00", Money(0))
	assert.Equal(t, "-12.34", Money(-1234))
	assert.Equal(t, "1234.56", Money(123456))
}

func TestSalesCSV(t *testing.T) {
	csv := SalesCSV([]domain.Sale{
		{
			ID:            "s-1",
			Date:          "2025-03-15",
			Customer:      "Alice",
			Items:         []domain.SaleItem{{ProductID: "p-1", Quantity: 2}},
			TotalCents:    6600,
			PaymentMethod: domain.PaymentCash,
		},
	})

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,ID,Customer,Items,Payment Method,Total", lines[0])
	assert.Equal(t, "2025-03-15,s-1,Alice,1,Cash,66.00", lines[1])
}

func TestPurchasesCSVRowCount(t *testing.T) {
	purchases := []domain.Purchase{
		{ID: "pu-1", Date: "2025-03-10", Supplier: "Acme", TotalCents: 1000},
		{ID: "pu-2", Date: "2025-03-11", Supplier: "Globex", TotalCents: 2000},
	}

	lines := strings.Split(PurchasesCSV(purchases), "\n")
	assert.Len(t, lines, len(purchases)+1)
}

func TestProductsCSV(t *testing.T) {
	csv := ProductsCSV([]domain.Product{
		{SKU: "KB-01", Name: "Keyboard", Category: "Electronics", PriceCents: 2000, CostCents: 1200, Stock: 8, MinStock: 5},
	})

	lines := strings.Split(csv, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "KB-01,Keyboard,Electronics,20.00,12.00,8,5", lines[1])
}

func TestPaymentsReportCSVPreamble(t *testing.T) {
	csv := PaymentsReportCSV(domain.PaymentsReport{
		Range:         "month",
		TotalCents:    110000,
		Transactions:  2,
		TotalFeeCents: 2900,
		Methods: []domain.PaymentMethodStats{
			{Method: domain.PaymentCash, Count: 1, TotalCents: 10000, AvgCents: 10000, MinCents: 10000, MaxCents: 10000},
		},
	})

	lines := strings.Split(csv, "\n")
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "Payment Methods Report - month", lines[0])
	assert.Equal(t, "Total Revenue: 1100.00", lines[1])
	assert.Equal(t, "Total Transactions: 2", lines[2])
	assert.Equal(t, "Estimated Processing Fees: 29.00", lines[3])
	assert.Equal(t, "", lines[4])
	assert.Equal(t, "Payment Method,Transactions,Total Amount,Average,Min,Max,Est. Fees", lines[5])
	assert.Equal(t, "Cash,1,100.00,100.00,100.00,100.00,0.00", lines[6])
}
