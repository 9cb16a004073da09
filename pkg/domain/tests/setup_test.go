package tests

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
	"github.com/wwegiel111/Elektro-shop/pkg/infrastructure/seed"
)

var checkoutTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (service.Store, *mockEventDispatcher) {
	return setupWithOptions(t, service.Options{})
}

func setupWithOptions(t *testing.T, opts service.Options) (service.Store, *mockEventDispatcher) {
	t.Helper()
	dispatcher := &mockEventDispatcher{}
	opts.Clock = func() time.Time { return checkoutTime }
	opts.UserIDs = func() int { return 42 }
	store := service.NewStore(seed.Default(), dispatcher, opts)
	return store, dispatcher
}

func product(t *testing.T, store service.Store, id int) model.Product {
	t.Helper()
	p, ok := store.Product(id)
	if !ok {
		t.Fatalf("product %d not in catalog", id)
	}
	return p
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// expectedTotal recomputes the cart total independently of the store.
func expectedTotal(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}

func (m *mockEventDispatcher) types() []string {
	types := make([]string, 0, len(m.events))
	for _, e := range m.events {
		types = append(types, e.Type())
	}
	return types
}
