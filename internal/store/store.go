package store

import (
	"errors"
	"sync"

	"shoptally/backend/internal/domain"
)

var ErrNotFound = errors.New("not found")

// Store holds the application state: the four collections plus the two UI
// visibility flags. Reads return defensive copies; writes replace a whole
// collection atomically under the mutex, so readers never observe a partial
// update. The store performs no derivation itself; recomputing
// notifications after a product change is the service's job.
type Store struct {
	mu            sync.RWMutex
	revision      uint64
	products      []domain.Product
	sales         []domain.Sale
	purchases     []domain.Purchase
	notifications []domain.Notification
	uiFlags       domain.UIFlags
}

func New() *Store {
	return &Store{
		products:      []domain.Product{},
		sales:         []domain.Sale{},
		purchases:     []domain.Purchase{},
		notifications: []domain.Notification{},
	}
}

// Revision increases on every replacement. Derived-report caches key on it
// so a stale entry can never outlive the state it was computed from.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products)
}

func (s *Store) ReplaceProducts(next []domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = cloneProducts(next)
	s.revision++
}

func (s *Store) Sales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSales(s.sales)
}

func (s *Store) ReplaceSales(next []domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = cloneSales(next)
	s.revision++
}

func (s *Store) Purchases() []domain.Purchase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePurchases(s.purchases)
}

func (s *Store) ReplacePurchases(next []domain.Purchase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = clonePurchases(next)
	s.revision++
}

func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Notification, len(s.notifications))
	copy(result, s.notifications)
	return result
}

func (s *Store) ReplaceNotifications(next []domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]domain.Notification, len(next))
	copy(s.notifications, next)
	s.revision++
}

func (s *Store) UIFlags() domain.UIFlags {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.uiFlags
}

func (s *Store) SetUIFlags(flags domain.UIFlags) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uiFlags = flags
	s.revision++
}

// Snapshot returns a consistent view of all three transactional collections,
// taken under a single read lock.
func (s *Store) Snapshot() ([]domain.Product, []domain.Sale, []domain.Purchase) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProducts(s.products), cloneSales(s.sales), clonePurchases(s.purchases)
}

func cloneProducts(products []domain.Product) []domain.Product {
	result := make([]domain.Product, len(products))
	copy(result, products)
	return result
}

func cloneSales(sales []domain.Sale) []domain.Sale {
	result := make([]domain.Sale, len(sales))
	for i, sale := range sales {
		copied := sale
		copied.Items = make([]domain.SaleItem, len(sale.Items))
		copy(copied.Items, sale.Items)
		result[i] = copied
	}
	return result
}

func clonePurchases(purchases []domain.Purchase) []domain.Purchase {
	result := make([]domain.Purchase, len(purchases))
	for i, purchase := range purchases {
		copied := purchase
		copied.Items = make([]domain.PurchaseItem, len(purchase.Items))
		copy(copied.Items, purchase.Items)
		result[i] = copied
	}
	return result
}
