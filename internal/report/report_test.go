package report

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoptally/backend/internal/domain"
)

func sale(date, customer, method string, totalCents int64) domain.Sale {
	return domain.Sale{
		Date:          date,
		Customer:      customer,
		PaymentMethod: method,
		TotalCents:    totalCents,
	}
}

func TestTrendDeltaZeroBase(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-02", "Alice", domain.PaymentCash, 5000),
	}

	// No revenue on the base day: delta is 0 by definition, not an error.
	assert.Equal(t, float64(0), TrendDelta(sales, "2025-03-02", "2025-03-01"))
}

func TestTrendDelta(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-01", "Alice", domain.PaymentCash, 10000),
		sale("2025-03-02", "Bob", domain.PaymentCash, 15000),
	}

	assert.InDelta(t, 50.0, TrendDelta(sales, "2025-03-02", "2025-03-01"), 1e-9)
	assert.InDelta(t, -100.0/3.0, TrendDelta(sales, "2025-03-01", "2025-03-02"), 1e-9)
}

func TestGroupByKeyFirstEncounterOrder(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-01", "Bob", domain.PaymentCash, 100),
		sale("2025-03-01", "Alice", domain.PaymentCash, 200),
		sale("2025-03-02", "Bob", domain.PaymentCash, 300),
	}

	groups := GroupByKey(sales,
		func(s domain.Sale) string { return s.Customer },
		func(s domain.Sale) int64 { return s.TotalCents })

	require.Len(t, groups, 2)
	assert.Equal(t, domain.Group{Key: "Bob", Count: 2, TotalCents: 400}, groups[0])
	assert.Equal(t, domain.Group{Key: "Alice", Count: 1, TotalCents: 200}, groups[1])
}

func TestGroupByKeyTotalsAreOrderIndependent(t *testing.T) {
	sales := make([]domain.Sale, 0, 40)
	customers := []string{"Alice", "Bob", "Carol", "Dave"}
	for i := 0; i < 40; i++ {
		sales = append(sales, sale("2025-03-01", customers[i%4], domain.PaymentCash, int64(i+1)*100))
	}

	totals := func(sales []domain.Sale) map[string]int64 {
		groups := GroupByKey(sales,
			func(s domain.Sale) string { return s.Customer },
			func(s domain.Sale) int64 { return s.TotalCents })
		out := make(map[string]int64, len(groups))
		for _, g := range groups {
			out[g.Key] = g.TotalCents
		}
		return out
	}

	want := totals(sales)
	shuffled := make([]domain.Sale, len(sales))
	copy(shuffled, sales)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assert.Equal(t, want, totals(shuffled))
}

func TestTopNStableTies(t *testing.T) {
	groups := []domain.Group{
		{Key: "first", TotalCents: 100},
		{Key: "second", TotalCents: 100},
		{Key: "big", TotalCents: 500},
		{Key: "third", TotalCents: 100},
	}

	ranked := TopN(groups, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, "big", ranked[0].Key)
	assert.Equal(t, "first", ranked[1].Key)
	assert.Equal(t, "second", ranked[2].Key)
}

func TestTopNDoesNotMutateInput(t *testing.T) {
	groups := []domain.Group{
		{Key: "a", TotalCents: 1},
		{Key: "b", TotalCents: 2},
	}
	TopN(groups, 2)
	assert.Equal(t, "a", groups[0].Key)
}

func TestLowStockAndOutOfStock(t *testing.T) {
	products := []domain.Product{
		{ID: "p-1", Name: "Healthy", Stock: 20, MinStock: 10},
		{ID: "p-2", Name: "Low", Stock: 3, MinStock: 10},
		{ID: "p-3", Name: "Gone", Stock: 0, MinStock: 10},
	}

	low := LowStock(products)
	require.Len(t, low, 2)
	assert.Equal(t, "p-2", low[0].ID)
	assert.Equal(t, "p-3", low[1].ID)

	out := OutOfStock(products)
	require.Len(t, out, 1)
	assert.Equal(t, "p-3", out[0].ID)

	// Every out-of-stock product with a positive minimum is also low.
	for _, p := range out {
		assert.Contains(t, low, p)
	}
}

func TestPaymentBreakdown(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-01", "Alice", domain.PaymentCash, 10000),
		sale("2025-03-01", "Bob", domain.PaymentCash, 20000),
		sale("2025-03-01", "Carol", domain.PaymentCreditCard, 30000),
	}

	stats := PaymentBreakdown(sales)
	require.Len(t, stats, 2)

	cash := stats[0]
	assert.Equal(t, domain.PaymentCash, cash.Method)
	assert.Equal(t, 2, cash.Count)
	assert.Equal(t, int64(30000), cash.TotalCents)
	assert.Equal(t, int64(15000), cash.AvgCents)
	assert.Equal(t, int64(10000), cash.MinCents)
	assert.Equal(t, int64(20000), cash.MaxCents)
	assert.Equal(t, int64(0), cash.FeeCents)

	card := stats[1]
	assert.Equal(t, domain.PaymentCreditCard, card.Method)
	assert.Equal(t, int64(870), card.FeeCents)
}

func TestFeeRate(t *testing.T) {
	assert.Equal(t, 0.0, FeeRate(domain.PaymentCash))
	assert.Equal(t, 0.0, FeeRate(domain.PaymentDue))
	assert.Equal(t, 0.005, FeeRate(domain.PaymentBankTransfer))
	assert.Equal(t, 0.029, FeeRate(domain.PaymentCreditCard))
	assert.Equal(t, 0.029, FeeRate("Some Future Method"))
}

func TestDailyTrendWindow(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-05", "A", domain.PaymentCash, 100),
		sale("2025-03-01", "B", domain.PaymentCash, 200),
		sale("2025-03-03", "C", domain.PaymentCash, 300),
		sale("2025-03-05", "D", domain.PaymentCash, 400),
	}

	buckets := DailyTrend(sales, 2)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2025-03-03", buckets[0].Date)
	assert.Equal(t, "2025-03-05", buckets[1].Date)
	assert.Equal(t, 2, buckets[1].Count)
	assert.Equal(t, int64(500), buckets[1].TotalCents)
}

func TestBestDayFirstOnTies(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-02", "A", domain.PaymentCash, 500),
		sale("2025-03-04", "B", domain.PaymentCash, 500),
	}

	assert.Equal(t, "2025-03-02", BestDay(sales).Date)
}

func TestRecentActivityMergesNewestFirst(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-01", "Alice", domain.PaymentCash, 100),
		sale("2025-03-03", "Bob", domain.PaymentCash, 200),
	}
	purchases := []domain.Purchase{
		{Date: "2025-03-02", Supplier: "Acme", TotalCents: 300},
	}

	activities := RecentActivity(sales, purchases, 2)
	require.Len(t, activities, 2)
	assert.Equal(t, domain.ActivitySale, activities[0].Kind)
	assert.Equal(t, "Sale to Bob", activities[0].Description)
	assert.Equal(t, domain.ActivityPurchase, activities[1].Kind)
	assert.Equal(t, "Purchase from Acme", activities[1].Description)
}

func TestDeriveNotifications(t *testing.T) {
	products := []domain.Product{
		{ID: "p-1", Name: "Plenty", Stock: 50, MinStock: 10},
		{ID: "p-2", Name: "USB Cable", Stock: 4, MinStock: 10},
	}

	notifications := DeriveNotifications(products)
	require.Len(t, notifications, 1)
	assert.Equal(t, "notif-p-2", notifications[0].ID)
	assert.Equal(t, "Low stock alert: USB Cable (4 units remaining)", notifications[0].Message)
	assert.Equal(t, domain.NotificationWarning, notifications[0].Type)
	assert.False(t, notifications[0].Read)
}

func TestTopProductsResolvesUnknown(t *testing.T) {
	products := []domain.Product{
		{ID: "p-1", Name: "Keyboard"},
	}
	sales := []domain.Sale{
		{
			Date: "2025-03-01",
			Items: []domain.SaleItem{
				{ProductID: "p-1", Quantity: 2, PriceCents: 5000},
				{ProductID: "p-deleted", Quantity: 1, PriceCents: 20000},
			},
		},
	}

	rankings := TopProducts(sales, products, 5)
	require.Len(t, rankings, 2)
	assert.Equal(t, UnknownProductLabel, rankings[0].Name)
	assert.Equal(t, int64(20000), rankings[0].RevenueCents)
	assert.Equal(t, "Keyboard", rankings[1].Name)
	assert.Equal(t, 2, rankings[1].Units)
	assert.Equal(t, int64(10000), rankings[1].RevenueCents)
}

func TestDashboard(t *testing.T) {
	products := []domain.Product{
		{ID: "p-1", Name: "Keyboard", PriceCents: 5000, Stock: 10, MinStock: 5},
		{ID: "p-2", Name: "Mouse", PriceCents: 2000, Stock: 0, MinStock: 5},
	}
	sales := []domain.Sale{
		sale("2025-03-01", "Alice", domain.PaymentCash, 10000),
		sale("2025-03-02", "Bob", domain.PaymentCash, 15000),
		sale("2025-03-02", "Carol", domain.PaymentCash, 5000),
	}

	summary := Dashboard(products, sales, nil, "2025-03-02")

	assert.Equal(t, int64(30000), summary.RevenueCents)
	assert.Equal(t, int64(20000), summary.TodayRevenueCents)
	assert.Equal(t, 2, summary.TodaySalesCount)
	assert.InDelta(t, 100.0, summary.RevenueTrendPercent, 1e-9)
	assert.Equal(t, int64(50000), summary.InventoryValueCents)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.LowStockCount)
	assert.Equal(t, 1, summary.OutOfStockCount)
}

func TestDailySales(t *testing.T) {
	sales := []domain.Sale{
		sale("2025-03-01", "Alice", domain.PaymentCash, 10000),
		sale("2025-03-01", "Bob", domain.PaymentCreditCard, 20000),
		sale("2025-03-02", "Carol", domain.PaymentCash, 99999),
	}

	summary := DailySales(sales, "2025-03-01")
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, int64(30000), summary.TotalCents)
	assert.Equal(t, int64(15000), summary.AvgCents)
	assert.Len(t, summary.ByPayment, 2)
	assert.Len(t, summary.Sales, 2)
}

func TestDailySalesEmptyDay(t *testing.T) {
	summary := DailySales(nil, "2025-03-01")
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, int64(0), summary.AvgCents)
	assert.Empty(t, summary.Sales)
}

func TestProductsMarginPercent(t *testing.T) {
	overview := Products([]domain.Product{
		{ID: "p-1", Name: "Keyboard", PriceCents: 10000, CostCents: 6000, Stock: 3},
		{ID: "p-2", Name: "Freebie", PriceCents: 0, CostCents: 500, Stock: 1},
	})

	require.Len(t, overview.Margins, 2)
	assert.InDelta(t, 40.0, overview.Margins[0].MarginPercent, 1e-9)
	assert.Equal(t, 0.0, overview.Margins[1].MarginPercent)
	assert.Equal(t, 4, overview.TotalUnits)
	assert.Equal(t, int64(30000), overview.InventoryValueCents)
}

func TestFilterSalesByRange(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		sale("2025-03-14", "A", domain.PaymentCash, 100),
		sale("2025-03-01", "B", domain.PaymentCash, 200),
		sale("2025-02-20", "C", domain.PaymentCash, 300),
		sale("2024-12-31", "D", domain.PaymentCash, 400),
	}

	assert.Len(t, FilterSalesByRange(sales, "week", now), 1)
	assert.Len(t, FilterSalesByRange(sales, "month", now), 2)
	assert.Len(t, FilterSalesByRange(sales, "year", now), 3)
	assert.Len(t, FilterSalesByRange(sales, "all", now), 4)
}

func TestPayments(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	sales := []domain.Sale{
		sale("2025-03-14", "A", domain.PaymentCash, 10000),
		sale("2025-03-10", "B", domain.PaymentCreditCard, 100000),
	}

	rep := Payments(sales, "month", now)
	assert.Equal(t, "month", rep.Range)
	assert.Equal(t, 2, rep.Transactions)
	assert.Equal(t, int64(110000), rep.TotalCents)
	assert.Equal(t, int64(2900), rep.TotalFeeCents)
}
