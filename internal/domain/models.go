package domain

// Monetary amounts are int64 cents throughout. Dates are ISO calendar days
// ("2006-01-02") so grouping and ordering reduce to string comparison.

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	PriceCents  int64  `json:"price_cents"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"min_stock"`
	Category    string `json:"category"`
	CostCents   int64  `json:"cost_cents,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// SaleItem references a product by ID. PriceCents is a snapshot of the
// product price at sale time, not a live reference; the product may later
// change or disappear without affecting historical sales.
type SaleItem struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	PriceCents int64  `json:"price_cents"`
}

type Sale struct {
	ID            string     `json:"id"`
	Date          string     `json:"date"`
	Customer      string     `json:"customer"`
	Items         []SaleItem `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TaxCents      int64      `json:"tax_cents"`
	TotalCents    int64      `json:"total_cents"`
	PaymentMethod string     `json:"payment_method"`
}

type PurchaseItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	CostCents int64  `json:"cost_cents"`
}

type Purchase struct {
	ID         string         `json:"id"`
	Date       string         `json:"date"`
	Supplier   string         `json:"supplier"`
	Items      []PurchaseItem `json:"items"`
	TotalCents int64          `json:"total_cents"`
	Notes      string         `json:"notes,omitempty"`
}

type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Read    bool   `json:"read"`
}

const (
	NotificationWarning = "warning"
	NotificationInfo    = "info"
)

// Payment methods form an open string enum; these are the seeded values.
const (
	PaymentCash          = "Cash"
	PaymentDue           = "Due"
	PaymentCreditCard    = "Credit Card"
	PaymentDebitCard     = "Debit Card"
	PaymentBankTransfer  = "Bank Transfer"
	PaymentMobilePayment = "Mobile Payment"
)

type ProductCreateRequest struct {
	Name        string `json:"name"`
	Code        string `json:"code"`
	Category    string `json:"category"`
	CostCents   int64  `json:"cost_cents"`
	PriceCents  int64  `json:"price_cents"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SaleItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SaleCreateRequest struct {
	Customer      string            `json:"customer"`
	Items         []SaleItemRequest `json:"items"`
	PaymentMethod string            `json:"payment_method"`
	// ExcludeTax makes the persisted total the bare subtotal. The default is
	// tax-inclusive: total = subtotal + tax.
	ExcludeTax bool `json:"exclude_tax"`
}

type SaleQuote struct {
	Items         []SaleItem `json:"items"`
	SubtotalCents int64      `json:"subtotal_cents"`
	TaxCents      int64      `json:"tax_cents"`
	TotalCents    int64      `json:"total_cents"`
}

type PurchaseItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	CostCents int64  `json:"cost_cents"`
}

type PurchaseCreateRequest struct {
	Supplier string                `json:"supplier"`
	Items    []PurchaseItemRequest `json:"items"`
	Notes    string                `json:"notes"`
}

type UIFlags struct {
	ShowNotifications bool `json:"show_notifications"`
	ShowUserMenu      bool `json:"show_user_menu"`
}

type Group struct {
	Key        string `json:"key"`
	Count      int    `json:"count"`
	TotalCents int64  `json:"total_cents"`
}

type PaymentMethodStats struct {
	Method     string `json:"method"`
	Count      int    `json:"count"`
	TotalCents int64  `json:"total_cents"`
	AvgCents   int64  `json:"avg_cents"`
	MinCents   int64  `json:"min_cents"`
	MaxCents   int64  `json:"max_cents"`
	// FeeCents is a simulated processing-fee estimate from a fixed rate
	// table, for reporting only. It is not real financial data.
	FeeCents int64 `json:"fee_cents"`
}

type DailyBucket struct {
	Date       string `json:"date"`
	Count      int    `json:"count"`
	TotalCents int64  `json:"total_cents"`
}

const (
	ActivitySale     = "sale"
	ActivityPurchase = "purchase"
)

type Activity struct {
	Kind        string `json:"kind"`
	Date        string `json:"date"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
}

type ProductRanking struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Units        int    `json:"units"`
	RevenueCents int64  `json:"revenue_cents"`
}

type DashboardSummary struct {
	Date                string           `json:"date"`
	RevenueCents        int64            `json:"revenue_cents"`
	RevenueTrendPercent float64          `json:"revenue_trend_percent"`
	InventoryValueCents int64            `json:"inventory_value_cents"`
	TotalProducts       int              `json:"total_products"`
	LowStockCount       int              `json:"low_stock_count"`
	OutOfStockCount     int              `json:"out_of_stock_count"`
	TodaySalesCount     int              `json:"today_sales_count"`
	TodayRevenueCents   int64            `json:"today_revenue_cents"`
	TopProducts         []ProductRanking `json:"top_products"`
	RecentActivity      []Activity       `json:"recent_activity"`
}

type DailySalesSummary struct {
	Date       string               `json:"date"`
	Count      int                  `json:"count"`
	TotalCents int64                `json:"total_cents"`
	AvgCents   int64                `json:"avg_cents"`
	ByPayment  []PaymentMethodStats `json:"by_payment"`
	Sales      []Sale               `json:"sales"`
}

type SalesOverview struct {
	TotalRevenueCents int64         `json:"total_revenue_cents"`
	Transactions      int           `json:"transactions"`
	AvgSaleCents      int64         `json:"avg_sale_cents"`
	BestDay           DailyBucket   `json:"best_day"`
	TopCustomers      []Group       `json:"top_customers"`
	DailyTrend        []DailyBucket `json:"daily_trend"`
}

type ProductMargin struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	SKU           string  `json:"sku"`
	PriceCents    int64   `json:"price_cents"`
	CostCents     int64   `json:"cost_cents"`
	Stock         int     `json:"stock"`
	MarginPercent float64 `json:"margin_percent"`
}

type ProductsOverview struct {
	TotalProducts       int             `json:"total_products"`
	InventoryValueCents int64           `json:"inventory_value_cents"`
	TotalUnits          int             `json:"total_units"`
	LowStock            []Product       `json:"low_stock"`
	OutOfStock          []Product       `json:"out_of_stock"`
	Margins             []ProductMargin `json:"margins"`
}

type PaymentsReport struct {
	Range         string               `json:"range"`
	TotalCents    int64                `json:"total_cents"`
	Transactions  int                  `json:"transactions"`
	TotalFeeCents int64                `json:"total_fee_cents"`
	Methods       []PaymentMethodStats `json:"methods"`
}

type TopSuppliersReport struct {
	TotalSpentCents int64   `json:"total_spent_cents"`
	Purchases       int     `json:"purchases"`
	Suppliers       []Group `json:"suppliers"`
}
