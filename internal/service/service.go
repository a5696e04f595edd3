package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"shoptally/backend/internal/cache"
	"shoptally/backend/internal/domain"
	"shoptally/backend/internal/report"
	"shoptally/backend/internal/store"
	"shoptally/backend/internal/xid"
)

// Service owns every mutation of the store. Mutations are all-or-nothing:
// validation runs first against a snapshot, and only a fully valid request
// replaces any collection. Aggregation stays in the report package; the
// service just feeds it snapshots and the current day.
type Service struct {
	store           *store.Store
	reportCache     cache.ReportCache
	logger          *zap.Logger
	taxRatePercent  float64
	defaultMinStock int
	cacheTTL        time.Duration
	now             func() time.Time
}

type Options struct {
	TaxRatePercent  float64
	DefaultMinStock int
	CacheTTL        time.Duration
	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

func New(st *store.Store, reportCache cache.ReportCache, logger *zap.Logger, opts Options) *Service {
	if reportCache == nil {
		reportCache = cache.NoopReportCache{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.TaxRatePercent <= 0 {
		opts.TaxRatePercent = 10
	}
	if opts.DefaultMinStock <= 0 {
		opts.DefaultMinStock = 10
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 15 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Service{
		store:           st,
		reportCache:     reportCache,
		logger:          logger,
		taxRatePercent:  opts.TaxRatePercent,
		defaultMinStock: opts.DefaultMinStock,
		cacheTTL:        opts.CacheTTL,
		now:             opts.Now,
	}
	// Derive notifications for whatever state the store was seeded with.
	s.refreshNotifications()
	return s
}

func (s *Service) today() string {
	return s.now().UTC().Format(report.DateLayout)
}

func (s *Service) ListProducts() []domain.Product {
	return s.store.Products()
}

func (s *Service) ListSales() []domain.Sale {
	return s.store.Sales()
}

func (s *Service) ListPurchases() []domain.Purchase {
	return s.store.Purchases()
}

func (s *Service) ListNotifications() []domain.Notification {
	return s.store.Notifications()
}

// CreateProduct validates and appends a new product. The SKU is upper-cased
// before the uniqueness check; new products start at zero stock (stock only
// moves through purchases and sales) with the configured minimum threshold.
func (s *Service) CreateProduct(req domain.ProductCreateRequest) (*domain.Product, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	req.Category = strings.TrimSpace(req.Category)

	products := s.store.Products()

	verr := domain.NewValidationError()
	if req.Name == "" {
		verr.Add("name", "Product name is required")
	}
	if req.Code == "" {
		verr.Add("code", "Product code is required")
	} else {
		for _, p := range products {
			if p.SKU == req.Code {
				verr.Add("code", "Product code already exists")
				break
			}
		}
	}
	if req.Category == "" {
		verr.Add("category", "Category is required")
	}
	if req.CostCents <= 0 {
		verr.Add("cost", "Cost must be greater than 0")
	}
	if req.PriceCents <= 0 {
		verr.Add("price", "Price must be greater than 0")
	} else if req.PriceCents < req.CostCents {
		verr.Add("price", "Selling price should be greater than cost")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	product := domain.Product{
		ID:          xid.New("prod"),
		Name:        req.Name,
		SKU:         req.Code,
		PriceCents:  req.PriceCents,
		Stock:       0,
		MinStock:    s.defaultMinStock,
		Category:    req.Category,
		CostCents:   req.CostCents,
		Description: strings.TrimSpace(req.Description),
		Image:       req.Image,
	}

	s.store.ReplaceProducts(append(products, product))
	s.refreshNotifications()

	s.logger.Info("product created",
		zap.String("product_id", product.ID),
		zap.String("sku", product.SKU),
		zap.Int64("price_cents", product.PriceCents))

	return &product, nil
}

// RecordPurchase validates the purchase, appends it and increments the
// stock of every referenced product. Products not named by any item are
// untouched.
func (s *Service) RecordPurchase(req domain.PurchaseCreateRequest) (*domain.Purchase, error) {
	req.Supplier = strings.TrimSpace(req.Supplier)

	products := s.store.Products()
	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}

	verr := domain.NewValidationError()
	if req.Supplier == "" {
		verr.Add("supplier", "Supplier name is required")
	}
	if len(req.Items) == 0 {
		verr.Add("items", "Please add at least one product")
	}
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.ProductID == "" {
			verr.Add(field, "Please select a product")
			continue
		}
		if _, exists := byID[item.ProductID]; !exists {
			verr.Add(field, "Selected product does not exist")
			continue
		}
		if item.Quantity <= 0 {
			verr.Add(field, "Quantity must be greater than 0")
		}
		if item.CostCents <= 0 {
			verr.Add(field, "Cost must be greater than 0")
		}
	}
	if verr.HasErrors() {
		return nil, verr
	}

	items := make([]domain.PurchaseItem, 0, len(req.Items))
	var total int64
	for _, item := range req.Items {
		items = append(items, domain.PurchaseItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			CostCents: item.CostCents,
		})
		total += item.CostCents * int64(item.Quantity)
	}

	purchase := domain.Purchase{
		ID:         xid.New("pur"),
		Date:       s.today(),
		Supplier:   req.Supplier,
		Items:      items,
		TotalCents: total,
		Notes:      strings.TrimSpace(req.Notes),
	}

	for _, item := range items {
		products[byID[item.ProductID]].Stock += item.Quantity
	}

	s.store.ReplacePurchases(append(s.store.Purchases(), purchase))
	s.store.ReplaceProducts(products)
	s.refreshNotifications()

	s.logger.Info("purchase recorded",
		zap.String("purchase_id", purchase.ID),
		zap.String("supplier", purchase.Supplier),
		zap.Int64("total_cents", purchase.TotalCents))

	return &purchase, nil
}

// QuoteSale prices a prospective item list without mutating anything. It
// applies the same cumulative stock rule as RecordSale, so interactive
// entry can check each added item before submitting the whole sale.
func (s *Service) QuoteSale(req domain.SaleCreateRequest) (*domain.SaleQuote, error) {
	products := s.store.Products()
	items, subtotal, err := s.priceSaleItems(req.Items, products)
	if err != nil {
		return nil, err
	}

	tax := s.taxFor(subtotal)
	quote := &domain.SaleQuote{
		Items:         items,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    subtotal + tax,
	}
	if req.ExcludeTax {
		quote.TaxCents = 0
		quote.TotalCents = subtotal
	}
	return quote, nil
}

// RecordSale validates and appends a new sale, decrementing stock for every
// referenced product. Line-item prices snapshot the current product price.
// Tax is a fixed percentage of the subtotal; the persisted total includes
// it unless the request opts out.
func (s *Service) RecordSale(req domain.SaleCreateRequest) (*domain.Sale, error) {
	req.Customer = strings.TrimSpace(req.Customer)
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentCash
	}

	products := s.store.Products()

	verr := domain.NewValidationError()
	if req.Customer == "" {
		verr.Add("customer", "Customer name is required")
	}
	if len(req.Items) == 0 {
		verr.Add("items", "Please add at least one product")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	items, subtotal, err := s.priceSaleItems(req.Items, products)
	if err != nil {
		return nil, err
	}

	tax := s.taxFor(subtotal)
	total := subtotal + tax
	if req.ExcludeTax {
		tax = 0
		total = subtotal
	}

	sale := domain.Sale{
		ID:            xid.New("sale"),
		Date:          s.today(),
		Customer:      req.Customer,
		Items:         items,
		SubtotalCents: subtotal,
		TaxCents:      tax,
		TotalCents:    total,
		PaymentMethod: req.PaymentMethod,
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	for _, item := range items {
		products[byID[item.ProductID]].Stock -= item.Quantity
	}

	s.store.ReplaceSales(append(s.store.Sales(), sale))
	s.store.ReplaceProducts(products)
	s.refreshNotifications()

	s.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("customer", sale.Customer),
		zap.String("payment_method", sale.PaymentMethod),
		zap.Int64("total_cents", sale.TotalCents))

	return &sale, nil
}

// priceSaleItems resolves and validates sale items against a product
// snapshot, folding duplicate product lines together so the stock check is
// cumulative per product.
func (s *Service) priceSaleItems(reqItems []domain.SaleItemRequest, products []domain.Product) ([]domain.SaleItem, int64, error) {
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	verr := domain.NewValidationError()
	requested := make(map[string]int, len(reqItems))
	order := make([]string, 0, len(reqItems))

	for i, item := range reqItems {
		field := fmt.Sprintf("items[%d]", i)
		if item.ProductID == "" {
			verr.Add(field, "Please select a product")
			continue
		}
		product, exists := byID[item.ProductID]
		if !exists {
			verr.Add(field, "Selected product does not exist")
			continue
		}
		if item.Quantity <= 0 {
			verr.Add(field, "Quantity must be greater than 0")
			continue
		}
		if _, seen := requested[item.ProductID]; !seen {
			order = append(order, item.ProductID)
		}
		requested[item.ProductID] += item.Quantity
		if requested[item.ProductID] > product.Stock {
			verr.Add(field, fmt.Sprintf("Only %d units available", product.Stock))
		}
	}
	if verr.HasErrors() {
		return nil, 0, verr
	}

	items := make([]domain.SaleItem, 0, len(order))
	var subtotal int64
	for _, productID := range order {
		product := byID[productID]
		quantity := requested[productID]
		items = append(items, domain.SaleItem{
			ProductID:  productID,
			Quantity:   quantity,
			PriceCents: product.PriceCents,
		})
		subtotal += product.PriceCents * int64(quantity)
	}
	return items, subtotal, nil
}

func (s *Service) taxFor(subtotalCents int64) int64 {
	return int64(math.Round(float64(subtotalCents) * s.taxRatePercent / 100))
}

// refreshNotifications rederives the low-stock notifications after a
// product mutation, carrying read flags over by notification ID so a
// dismissed alert stays dismissed while the product remains low.
func (s *Service) refreshNotifications() {
	previous := s.store.Notifications()
	read := make(map[string]bool, len(previous))
	for _, n := range previous {
		if n.Read {
			read[n.ID] = true
		}
	}

	next := report.DeriveNotifications(s.store.Products())
	for i := range next {
		next[i].Read = read[next[i].ID]
	}
	s.store.ReplaceNotifications(next)
}

func (s *Service) MarkNotificationRead(id string) error {
	notifications := s.store.Notifications()
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			s.store.ReplaceNotifications(notifications)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Service) MarkAllNotificationsRead() {
	notifications := s.store.Notifications()
	for i := range notifications {
		notifications[i].Read = true
	}
	s.store.ReplaceNotifications(notifications)
}

func (s *Service) UIFlags() domain.UIFlags {
	return s.store.UIFlags()
}

func (s *Service) SetUIFlags(flags domain.UIFlags) {
	s.store.SetUIFlags(flags)
}

// SupplierSuggestions returns distinct supplier names from purchase
// history, first-seen order, capped at five.
func (s *Service) SupplierSuggestions() []string {
	seen := make(map[string]bool, 8)
	suggestions := make([]string, 0, 5)
	for _, purchase := range s.store.Purchases() {
		if seen[purchase.Supplier] {
			continue
		}
		seen[purchase.Supplier] = true
		suggestions = append(suggestions, purchase.Supplier)
		if len(suggestions) == 5 {
			break
		}
	}
	return suggestions
}

// Dashboard computes the landing-page summary, served through the report
// cache keyed on (day, store revision) so a hit can never be stale.
func (s *Service) Dashboard(ctx context.Context) domain.DashboardSummary {
	today := s.today()
	key := fmt.Sprintf("dashboard:%s:%d", today, s.store.Revision())

	if cached, ok, err := s.reportCache.Get(ctx, key); err == nil && ok {
		return *cached
	} else if err != nil {
		s.logger.Warn("report cache get failed", zap.String("key", key), zap.Error(err))
	}

	products, sales, purchases := s.store.Snapshot()
	summary := report.Dashboard(products, sales, purchases, today)

	if err := s.reportCache.Set(ctx, key, &summary, s.cacheTTL); err != nil {
		s.logger.Warn("report cache set failed", zap.String("key", key), zap.Error(err))
	}
	return summary
}

func (s *Service) DailySalesReport(date string) (domain.DailySalesSummary, error) {
	if date == "" {
		date = s.today()
	} else if _, err := time.Parse(report.DateLayout, date); err != nil {
		verr := domain.NewValidationError()
		verr.Add("date", "Date must be formatted as YYYY-MM-DD")
		return domain.DailySalesSummary{}, verr
	}
	return report.DailySales(s.store.Sales(), date), nil
}

func (s *Service) SalesReport() domain.SalesOverview {
	return report.Overview(s.store.Sales())
}

func (s *Service) ProductsReport() domain.ProductsOverview {
	return report.Products(s.store.Products())
}

func (s *Service) PaymentsReport(rangeName string) domain.PaymentsReport {
	switch rangeName {
	case "week", "month", "year":
	default:
		rangeName = "all"
	}
	return report.Payments(s.store.Sales(), rangeName, s.now().UTC())
}

func (s *Service) SuppliersReport() domain.TopSuppliersReport {
	return report.TopSuppliers(s.store.Purchases(), 5)
}
