package store

import (
	"time"

	"shoptally/backend/internal/fixture"
)

// NewSeeded returns a store populated with the fixture collections,
// with transaction dates anchored to the given time.
func NewSeeded(anchor time.Time) *Store {
	s := New()
	s.ReplaceProducts(fixture.Products())
	s.ReplaceSales(fixture.Sales(anchor))
	s.ReplacePurchases(fixture.Purchases(anchor))
	return s
}
