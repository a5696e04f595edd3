// Package export renders reports as CSV: a header row plus one row per
// record, money formatted to two decimal places. Values are comma-joined
// without quoting, so embedded commas in free-text fields will break the
// row. Known limitation, kept for compatibility with the report consumers.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"shoptally/backend/internal/domain"
)

func rows(header []string, records [][]string) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(header, ","))
	for _, record := range records {
		lines = append(lines, strings.Join(record, ","))
	}
	return strings.Join(lines, "\n")
}

// Money formats cents with two decimal places, e.g. 6600 -> "66.00".
func Money(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func SalesCSV(sales []domain.Sale) string {
	header := []string{"Date", "ID", "Customer", "Items", "Payment Method", "Total"}
	records := make([][]string, 0, len(sales))
	for _, sale := range sales {
		records = append(records, []string{
			sale.Date,
			sale.ID,
			sale.Customer,
			strconv.Itoa(len(sale.Items)),
			sale.PaymentMethod,
			Money(sale.TotalCents),
		})
	}
	return rows(header, records)
}

func PurchasesCSV(purchases []domain.Purchase) string {
	header := []string{"Date", "ID", "Supplier", "Items", "Total Cost"}
	records := make([][]string, 0, len(purchases))
	for _, purchase := range purchases {
		records = append(records, []string{
			purchase.Date,
			purchase.ID,
			purchase.Supplier,
			strconv.Itoa(len(purchase.Items)),
			Money(purchase.TotalCents),
		})
	}
	return rows(header, records)
}

func ProductsCSV(products []domain.Product) string {
	header := []string{"SKU", "Name", "Category", "Price", "Cost", "Stock", "Min Stock"}
	records := make([][]string, 0, len(products))
	for _, p := range products {
		records = append(records, []string{
			p.SKU,
			p.Name,
			p.Category,
			Money(p.PriceCents),
			Money(p.CostCents),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
		})
	}
	return rows(header, records)
}

// PaymentsReportCSV includes the summary preamble the payments report
// consumers expect above the table.
func PaymentsReportCSV(rep domain.PaymentsReport) string {
	header := []string{"Payment Method", "Transactions", "Total Amount", "Average", "Min", "Max", "Est. Fees"}
	records := make([][]string, 0, len(rep.Methods))
	for _, m := range rep.Methods {
		records = append(records, []string{
			m.Method,
			strconv.Itoa(m.Count),
			Money(m.TotalCents),
			Money(m.AvgCents),
			Money(m.MinCents),
			Money(m.MaxCents),
			Money(m.FeeCents),
		})
	}

	preamble := strings.Join([]string{
		"Payment Methods Report - " + rep.Range,
		"Total Revenue: " + Money(rep.TotalCents),
		"Total Transactions: " + strconv.Itoa(rep.Transactions),
		"Estimated Processing Fees: " + Money(rep.TotalFeeCents),
		"",
	}, "\n")
	return preamble + "\n" + rows(header, records)
}
