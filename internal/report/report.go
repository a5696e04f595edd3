// Package report is the aggregation engine: pure functions over snapshots of
// the sales, purchase and product collections. Nothing here mutates its
// input or reads the wall clock; "today" is always passed in by the caller,
// which keeps every function deterministic for a given snapshot.
package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"shoptally/backend/internal/domain"
)

// UnknownProductLabel stands in for a line item whose product ID no longer
// resolves. Lookup misses are rendered, never raised.
const UnknownProductLabel = "Unknown Product"

const DateLayout = "2006-01-02"

// RevenueTotal sums sale totals.
func RevenueTotal(sales []domain.Sale) int64 {
	var total int64
	for _, sale := range sales {
		total += sale.TotalCents
	}
	return total
}

// RevenueOn sums sale totals for a single calendar day.
func RevenueOn(sales []domain.Sale, date string) int64 {
	var total int64
	for _, sale := range sales {
		if sale.Date == date {
			total += sale.TotalCents
		}
	}
	return total
}

// TrendDelta returns the percent change of dayA revenue against dayB
// revenue. When dayB revenue is zero the delta is defined as 0, not an
// error.
func TrendDelta(sales []domain.Sale, dayA, dayB string) float64 {
	base := RevenueOn(sales, dayB)
	if base == 0 {
		return 0
	}
	current := RevenueOn(sales, dayA)
	return float64(current-base) / float64(base) * 100
}

// GroupByKey accumulates count and total per key in a single pass. Groups
// are returned in first-encounter order, which is what makes TopN
// tie-breaking deterministic.
func GroupByKey[T any](records []T, keyFn func(T) string, amountFn func(T) int64) []domain.Group {
	index := make(map[string]int, len(records))
	groups := make([]domain.Group, 0, len(records))
	for _, record := range records {
		key := keyFn(record)
		i, seen := index[key]
		if !seen {
			index[key] = len(groups)
			groups = append(groups, domain.Group{Key: key})
			i = len(groups) - 1
		}
		groups[i].Count++
		groups[i].TotalCents += amountFn(record)
	}
	return groups
}

// TopN returns up to n groups sorted descending by total. The sort is
// stable, so ties keep the first-encountered order of the input.
func TopN(groups []domain.Group, n int) []domain.Group {
	ranked := make([]domain.Group, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalCents > ranked[j].TotalCents
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// LowStock returns products whose stock is below their configured minimum.
func LowStock(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Stock < p.MinStock {
			result = append(result, p)
		}
	}
	return result
}

// OutOfStock returns products with zero stock. Whenever minStock > 0 this
// is a subset of LowStock.
func OutOfStock(products []domain.Product) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if p.Stock == 0 {
			result = append(result, p)
		}
	}
	return result
}

// InventoryValue sums price times stock over the catalog.
func InventoryValue(products []domain.Product) int64 {
	var total int64
	for _, p := range products {
		total += p.PriceCents * int64(p.Stock)
	}
	return total
}

// feeRates is the fixed lookup table behind the simulated processing-fee
// estimate. Unlisted methods fall back to the card rate.
var feeRates = map[string]float64{
	domain.PaymentCash:         0,
	domain.PaymentDue:          0,
	domain.PaymentBankTransfer: 0.005,
}

const defaultFeeRate = 0.029

func FeeRate(method string) float64 {
	if rate, ok := feeRates[method]; ok {
		return rate
	}
	return defaultFeeRate
}

// PaymentBreakdown groups sales by payment method and decorates each group
// with transaction-size statistics and the estimated processing fee. The
// fee figures are simulated from FeeRate and must be presented as estimates.
func PaymentBreakdown(sales []domain.Sale) []domain.PaymentMethodStats {
	index := make(map[string]int, 8)
	stats := make([]domain.PaymentMethodStats, 0, 8)
	for _, sale := range sales {
		i, seen := index[sale.PaymentMethod]
		if !seen {
			index[sale.PaymentMethod] = len(stats)
			stats = append(stats, domain.PaymentMethodStats{
				Method:   sale.PaymentMethod,
				MinCents: sale.TotalCents,
				MaxCents: sale.TotalCents,
			})
			i = len(stats) - 1
		}
		stats[i].Count++
		stats[i].TotalCents += sale.TotalCents
		if sale.TotalCents < stats[i].MinCents {
			stats[i].MinCents = sale.TotalCents
		}
		if sale.TotalCents > stats[i].MaxCents {
			stats[i].MaxCents = sale.TotalCents
		}
	}
	for i := range stats {
		stats[i].AvgCents = stats[i].TotalCents / int64(stats[i].Count)
		stats[i].FeeCents = int64(math.Round(float64(stats[i].TotalCents) * FeeRate(stats[i].Method)))
	}
	return stats
}

// DailyTrend buckets sales per calendar day and keeps the most recent
// windowDays buckets present in the data, ascending by date. Days without
// sales produce no bucket.
func DailyTrend(sales []domain.Sale, windowDays int) []domain.DailyBucket {
	groups := GroupByKey(sales,
		func(s domain.Sale) string { return s.Date },
		func(s domain.Sale) int64 { return s.TotalCents })

	buckets := make([]domain.DailyBucket, 0, len(groups))
	for _, g := range groups {
		buckets = append(buckets, domain.DailyBucket{Date: g.Key, Count: g.Count, TotalCents: g.TotalCents})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	if windowDays > 0 && len(buckets) > windowDays {
		buckets = buckets[len(buckets)-windowDays:]
	}
	return buckets
}

// BestDay returns the bucket with the highest total, first such day on ties.
func BestDay(sales []domain.Sale) domain.DailyBucket {
	var best domain.DailyBucket
	for _, bucket := range DailyTrend(sales, 0) {
		if bucket.TotalCents > best.TotalCents {
			best = bucket
		}
	}
	return best
}

// RecentActivity merges sales and purchases into one kind-tagged stream,
// newest first, capped at limit. Within a day, sales sort before purchases
// and input order is preserved (stable sort on date only).
func RecentActivity(sales []domain.Sale, purchases []domain.Purchase, limit int) []domain.Activity {
	activities := make([]domain.Activity, 0, len(sales)+len(purchases))
	for _, sale := range sales {
		activities = append(activities, domain.Activity{
			Kind:        domain.ActivitySale,
			Date:        sale.Date,
			Description: "Sale to " + sale.Customer,
			AmountCents: sale.TotalCents,
		})
	}
	for _, purchase := range purchases {
		activities = append(activities, domain.Activity{
			Kind:        domain.ActivityPurchase,
			Date:        purchase.Date,
			Description: "Purchase from " + purchase.Supplier,
			AmountCents: purchase.TotalCents,
		})
	}
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Date > activities[j].Date
	})
	if limit >= 0 && len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// DeriveNotifications recomputes low-stock warnings from the product
// collection. Read flags are not carried here; preserving them across
// recomputations is the caller's concern.
func DeriveNotifications(products []domain.Product) []domain.Notification {
	low := LowStock(products)
	notifications := make([]domain.Notification, 0, len(low))
	for _, p := range low {
		notifications = append(notifications, domain.Notification{
			ID:      "notif-" + p.ID,
			Message: fmt.Sprintf("Low stock alert: %s (%d units remaining)", p.Name, p.Stock),
			Type:    domain.NotificationWarning,
		})
	}
	return notifications
}

// TopProducts ranks products by revenue over sale line items, resolving
// names through the catalog. A line whose product is gone still counts,
// labelled with the placeholder.
func TopProducts(sales []domain.Sale, products []domain.Product, n int) []domain.ProductRanking {
	type acc struct {
		units   int
		revenue int64
	}
	index := make(map[string]int, len(products))
	order := make([]string, 0, len(products))
	totals := make(map[string]*acc, len(products))

	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, seen := totals[item.ProductID]; !seen {
				totals[item.ProductID] = &acc{}
				index[item.ProductID] = len(order)
				order = append(order, item.ProductID)
			}
			totals[item.ProductID].units += item.Quantity
			totals[item.ProductID].revenue += int64(item.Quantity) * item.PriceCents
		}
	}

	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	rankings := make([]domain.ProductRanking, 0, len(order))
	for _, productID := range order {
		name, ok := names[productID]
		if !ok {
			name = UnknownProductLabel
		}
		rankings = append(rankings, domain.ProductRanking{
			ProductID:    productID,
			Name:         name,
			Units:        totals[productID].units,
			RevenueCents: totals[productID].revenue,
		})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].RevenueCents > rankings[j].RevenueCents
	})
	if n >= 0 && len(rankings) > n {
		rankings = rankings[:n]
	}
	return rankings
}

// TopCustomers ranks customers by spent total.
func TopCustomers(sales []domain.Sale, n int) []domain.Group {
	groups := GroupByKey(sales,
		func(s domain.Sale) string { return s.Customer },
		func(s domain.Sale) int64 { return s.TotalCents })
	return TopN(groups, n)
}

// TopSuppliers ranks suppliers by purchase spend.
func TopSuppliers(purchases []domain.Purchase, n int) domain.TopSuppliersReport {
	groups := GroupByKey(purchases,
		func(p domain.Purchase) string { return p.Supplier },
		func(p domain.Purchase) int64 { return p.TotalCents })

	var total int64
	for _, p := range purchases {
		total += p.TotalCents
	}
	return domain.TopSuppliersReport{
		TotalSpentCents: total,
		Purchases:       len(purchases),
		Suppliers:       TopN(groups, n),
	}
}

// Dashboard assembles the landing-page summary for the given day.
// yesterday is derived from today to keep the trend window explicit.
func Dashboard(products []domain.Product, sales []domain.Sale, purchases []domain.Purchase, today string) domain.DashboardSummary {
	yesterday := previousDay(today)

	var todayCount int
	for _, sale := range sales {
		if sale.Date == today {
			todayCount++
		}
	}

	return domain.DashboardSummary{
		Date:                today,
		RevenueCents:        RevenueTotal(sales),
		RevenueTrendPercent: TrendDelta(sales, today, yesterday),
		InventoryValueCents: InventoryValue(products),
		TotalProducts:       len(products),
		LowStockCount:       len(LowStock(products)),
		OutOfStockCount:     len(OutOfStock(products)),
		TodaySalesCount:     todayCount,
		TodayRevenueCents:   RevenueOn(sales, today),
		TopProducts:         TopProducts(sales, products, 5),
		RecentActivity:      RecentActivity(sales, purchases, 5),
	}
}

// DailySales summarizes one calendar day: counts, totals, average ticket
// and the per-payment-method breakdown.
func DailySales(sales []domain.Sale, date string) domain.DailySalesSummary {
	daySales := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if sale.Date == date {
			daySales = append(daySales, sale)
		}
	}

	summary := domain.DailySalesSummary{
		Date:       date,
		Count:      len(daySales),
		TotalCents: RevenueTotal(daySales),
		ByPayment:  PaymentBreakdown(daySales),
		Sales:      daySales,
	}
	if summary.Count > 0 {
		summary.AvgCents = summary.TotalCents / int64(summary.Count)
	}
	return summary
}

// Overview builds the all-time sales report: totals, best day, top
// customers and the 10-day trend.
func Overview(sales []domain.Sale) domain.SalesOverview {
	overview := domain.SalesOverview{
		TotalRevenueCents: RevenueTotal(sales),
		Transactions:      len(sales),
		BestDay:           BestDay(sales),
		TopCustomers:      TopCustomers(sales, 5),
		DailyTrend:        DailyTrend(sales, 10),
	}
	if overview.Transactions > 0 {
		overview.AvgSaleCents = overview.TotalRevenueCents / int64(overview.Transactions)
	}
	return overview
}

// Products builds the inventory report. Margin percent is
// (price − cost) / price · 100, defined as 0 when price is 0.
func Products(products []domain.Product) domain.ProductsOverview {
	var units int
	margins := make([]domain.ProductMargin, 0, len(products))
	for _, p := range products {
		units += p.Stock
		margins = append(margins, domain.ProductMargin{
			ProductID:     p.ID,
			Name:          p.Name,
			SKU:           p.SKU,
			PriceCents:    p.PriceCents,
			CostCents:     p.CostCents,
			Stock:         p.Stock,
			MarginPercent: marginPercent(p.PriceCents, p.CostCents),
		})
	}
	return domain.ProductsOverview{
		TotalProducts:       len(products),
		InventoryValueCents: InventoryValue(products),
		TotalUnits:          units,
		LowStock:            LowStock(products),
		OutOfStock:          OutOfStock(products),
		Margins:             margins,
	}
}

func marginPercent(priceCents, costCents int64) float64 {
	if priceCents == 0 {
		return 0
	}
	return float64(priceCents-costCents) / float64(priceCents) * 100
}

// Payments builds the payment-method report over sales filtered to the
// requested range.
func Payments(sales []domain.Sale, rangeName string, now time.Time) domain.PaymentsReport {
	filtered := FilterSalesByRange(sales, rangeName, now)
	methods := PaymentBreakdown(filtered)

	var fees int64
	for _, m := range methods {
		fees += m.FeeCents
	}
	return domain.PaymentsReport{
		Range:         rangeName,
		TotalCents:    RevenueTotal(filtered),
		Transactions:  len(filtered),
		TotalFeeCents: fees,
		Methods:       methods,
	}
}

// FilterSalesByRange restricts sales to a named window relative to now:
// "week" keeps the trailing 7 days, "month" the calendar month of now,
// "year" the calendar year of now; anything else keeps everything.
func FilterSalesByRange(sales []domain.Sale, rangeName string, now time.Time) []domain.Sale {
	switch rangeName {
	case "week":
		cutoff := now.AddDate(0, 0, -7).Format(DateLayout)
		return filterSales(sales, func(date string) bool { return date >= cutoff })
	case "month":
		prefix := now.Format("2006-01")
		return filterSales(sales, func(date string) bool {
			return len(date) >= 7 && date[:7] == prefix
		})
	case "year":
		prefix := now.Format("2006")
		return filterSales(sales, func(date string) bool {
			return len(date) >= 4 && date[:4] == prefix
		})
	default:
		result := make([]domain.Sale, len(sales))
		copy(result, sales)
		return result
	}
}

func filterSales(sales []domain.Sale, keep func(date string) bool) []domain.Sale {
	result := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if keep(sale.Date) {
			result = append(result, sale)
		}
	}
	return result
}

func previousDay(date string) string {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return day.AddDate(0, 0, -1).Format(DateLayout)
}
