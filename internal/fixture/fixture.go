// Package fixture provides the seed collections loaded at startup. Sale and
// purchase dates are computed relative to an anchor time so the dashboard
// trend and the week/month report windows are populated no matter when the
// server starts.
package fixture

import (
	"time"

	"shoptally/backend/internal/domain"
)

func day(anchor time.Time, daysAgo int) string {
	return anchor.UTC().AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func Products() []domain.Product {
	return []domain.Product{
		{ID: "p-1001", Name: "Wireless Mouse", SKU: "ELE-0001", PriceCents: 2499, Stock: 42, MinStock: 10, Category: "Electronics", CostCents: 1400},
		{ID: "p-1002", Name: "Mechanical Keyboard", SKU: "ELE-0002", PriceCents: 8999, Stock: 18, MinStock: 8, Category: "Electronics", CostCents: 5200},
		{ID: "p-1003", Name: "USB-C Cable 1m", SKU: "ELE-0003", PriceCents: 899, Stock: 7, MinStock: 20, Category: "Electronics", CostCents: 300},
		{ID: "p-1004", Name: "Laptop Stand", SKU: "OFF-0001", PriceCents: 3499, Stock: 25, MinStock: 10, Category: "Office", CostCents: 1800},
		{ID: "p-1005", Name: "Notebook A5", SKU: "STA-0001", PriceCents: 450, Stock: 120, MinStock: 30, Category: "Stationery", CostCents: 180},
		{ID: "p-1006", Name: "Gel Pen Pack", SKU: "STA-0002", PriceCents: 650, Stock: 4, MinStock: 15, Category: "Stationery", CostCents: 250},
		{ID: "p-1007", Name: "Desk Lamp", SKU: "OFF-0002", PriceCents: 2999, Stock: 14, MinStock: 6, Category: "Office", CostCents: 1500},
		{ID: "p-1008", Name: "Monitor 24in", SKU: "ELE-0004", PriceCents: 15999, Stock: 9, MinStock: 5, Category: "Electronics", CostCents: 11000},
		{ID: "p-1009", Name: "Sticky Notes", SKU: "STA-0003", PriceCents: 350, Stock: 0, MinStock: 25, Category: "Stationery", CostCents: 120},
		{ID: "p-1010", Name: "Webcam HD", SKU: "ELE-0005", PriceCents: 5499, Stock: 11, MinStock: 5, Category: "Electronics", CostCents: 3200},
		{ID: "p-1011", Name: "Office Chair", SKU: "OFF-0003", PriceCents: 18999, Stock: 6, MinStock: 3, Category: "Office", CostCents: 12500},
		{ID: "p-1012", Name: "Stapler", SKU: "STA-0004", PriceCents: 799, Stock: 33, MinStock: 10, Category: "Stationery", CostCents: 350},
	}
}

func Sales(anchor time.Time) []domain.Sale {
	return []domain.Sale{
		{
			ID: "s-2001", Date: day(anchor, 0), Customer: "Jane Cooper",
			Items:         []domain.SaleItem{{ProductID: "p-1001", Quantity: 2, PriceCents: 2499}, {ProductID: "p-1005", Quantity: 3, PriceCents: 450}},
			SubtotalCents: 6348, TaxCents: 635, TotalCents: 6983, PaymentMethod: domain.PaymentCash,
		},
		{
			ID: "s-2002", Date: day(anchor, 0), Customer: "Devon Lane",
			Items:         []domain.SaleItem{{ProductID: "p-1008", Quantity: 1, PriceCents: 15999}},
			SubtotalCents: 15999, TaxCents: 1600, TotalCents: 17599, PaymentMethod: domain.PaymentCreditCard,
		},
		{
			ID: "s-2003", Date: day(anchor, 1), Customer: "Esther Howard",
			Items:         []domain.SaleItem{{ProductID: "p-1002", Quantity: 1, PriceCents: 8999}, {ProductID: "p-1003", Quantity: 2, PriceCents: 899}},
			SubtotalCents: 10797, TaxCents: 1080, TotalCents: 11877, PaymentMethod: domain.PaymentBankTransfer,
		},
		{
			ID: "s-2004", Date: day(anchor, 1), Customer: "Jane Cooper",
			Items:         []domain.SaleItem{{ProductID: "p-1007", Quantity: 1, PriceCents: 2999}},
			SubtotalCents: 2999, TaxCents: 300, TotalCents: 3299, PaymentMethod: domain.PaymentCash,
		},
		{
			ID: "s-2005", Date: day(anchor, 2), Customer: "Cameron Wilson",
			Items:         []domain.SaleItem{{ProductID: "p-1011", Quantity: 1, PriceCents: 18999}, {ProductID: "p-1004", Quantity: 1, PriceCents: 3499}},
			SubtotalCents: 22498, TaxCents: 2250, TotalCents: 24748, PaymentMethod: domain.PaymentDebitCard,
		},
		{
			ID: "s-2006", Date: day(anchor, 3), Customer: "Leslie Alexander",
			Items:         []domain.SaleItem{{ProductID: "p-1010", Quantity: 2, PriceCents: 5499}},
			SubtotalCents: 10998, TaxCents: 1100, TotalCents: 12098, PaymentMethod: domain.PaymentMobilePayment,
		},
		{
			ID: "s-2007", Date: day(anchor, 4), Customer: "Devon Lane",
			Items:         []domain.SaleItem{{ProductID: "p-1005", Quantity: 10, PriceCents: 450}, {ProductID: "p-1012", Quantity: 2, PriceCents: 799}},
			SubtotalCents: 6098, TaxCents: 610, TotalCents: 6708, PaymentMethod: domain.PaymentDue,
		},
		{
			ID: "s-2008", Date: day(anchor, 6), Customer: "Guy Hawkins",
			Items:         []domain.SaleItem{{ProductID: "p-1001", Quantity: 1, PriceCents: 2499}},
			SubtotalCents: 2499, TaxCents: 250, TotalCents: 2749, PaymentMethod: domain.PaymentCash,
		},
		{
			ID: "s-2009", Date: day(anchor, 12), Customer: "Esther Howard",
			Items:         []domain.SaleItem{{ProductID: "p-1002", Quantity: 2, PriceCents: 8999}},
			SubtotalCents: 17998, TaxCents: 1800, TotalCents: 19798, PaymentMethod: domain.PaymentCreditCard,
		},
		{
			ID: "s-2010", Date: day(anchor, 20), Customer: "Cameron Wilson",
			Items:         []domain.SaleItem{{ProductID: "p-1008", Quantity: 1, PriceCents: 15999}, {ProductID: "p-1010", Quantity: 1, PriceCents: 5499}},
			SubtotalCents: 21498, TaxCents: 2150, TotalCents: 23648, PaymentMethod: domain.PaymentBankTransfer,
		},
	}
}

func Purchases(anchor time.Time) []domain.Purchase {
	return []domain.Purchase{
		{
			ID: "pu-3001", Date: day(anchor, 2), Supplier: "Acme Distribution",
			Items:      []domain.PurchaseItem{{ProductID: "p-1001", Quantity: 20, CostCents: 1400}, {ProductID: "p-1003", Quantity: 50, CostCents: 300}},
			TotalCents: 43000,
		},
		{
			ID: "pu-3002", Date: day(anchor, 5), Supplier: "Global Office Supply",
			Items:      []domain.PurchaseItem{{ProductID: "p-1005", Quantity: 100, CostCents: 180}, {ProductID: "p-1006", Quantity: 40, CostCents: 250}},
			TotalCents: 28000,
		},
		{
			ID: "pu-3003", Date: day(anchor, 9), Supplier: "TechSource Ltd",
			Items:      []domain.PurchaseItem{{ProductID: "p-1008", Quantity: 5, CostCents: 11000}, {ProductID: "p-1010", Quantity: 10, CostCents: 3200}},
			TotalCents: 87000,
		},
		{
			ID: "pu-3004", Date: day(anchor, 15), Supplier: "Acme Distribution",
			Items:      []domain.PurchaseItem{{ProductID: "p-1011", Quantity: 4, CostCents: 12500}},
			TotalCents: 50000,
		},
		{
			ID: "pu-3005", Date: day(anchor, 25), Supplier: "Paper Trail Co",
			Items:      []domain.PurchaseItem{{ProductID: "p-1009", Quantity: 60, CostCents: 120}, {ProductID: "p-1012", Quantity: 25, CostCents: 350}},
			TotalCents: 15950,
		},
	}
}
