package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// Options tune the cart ceilings and catalog collation. Zero ceilings mean unlimited.
type Options struct {
	MaxLineQuantity  int
	MaxCartLines     int
	RejectOutOfStock bool
	Collation        language.Tag
	Clock            func() time.Time
	UserIDs          func() int
}

func DefaultOptions() Options {
	return Options{
		Collation: language.Polish,
		Clock:     time.Now,
		UserIDs:   func() int { return rand.Intn(1000) },
	}
}

// Store is the shared state container of the storefront: catalog, cart, session and order ledger.
// It is not safe for concurrent use; callers serialize access.
type Store interface {
	Products() []model.Product
	Product(id int) (model.Product, bool)
	QueryCatalog(filter model.CatalogFilter) []model.Product
	Featured() []model.Product
	ReplaceCatalog(products []model.Product)
	DeleteProduct(id int)

	Cart() []model.CartLine
	AddItem(product model.Product)
	RemoveItem(productID int)
	SetQuantity(productID, quantity int)
	ClearCart()
	Total() decimal.Decimal
	ItemCount() int

	Login(username string, role model.Role) model.Identity
	Logout()
	Identity() *model.Identity
	View() model.View
	SetView(view model.View)

	PlaceOrder(guestEmail string) *model.Order
	Orders() []model.Order
	OrdersFor(ownerID int) []model.Order
	SetOrderStatus(orderID string, status model.OrderStatus) error
}

func NewStore(products []model.Product, dispatcher EventDispatcher, opts Options) Store {
	defaults := DefaultOptions()
	if opts.Clock == nil {
		opts.Clock = defaults.Clock
	}
	if opts.UserIDs == nil {
		opts.UserIDs = defaults.UserIDs
	}
	if opts.Collation == language.Und {
		opts.Collation = defaults.Collation
	}
	return &store{
		opts:       opts,
		dispatcher: dispatcher,
		products:   append([]model.Product(nil), products...),
		view:       model.ViewStore,
	}
}

type store struct {
	opts       Options
	dispatcher EventDispatcher

	products []model.Product
	cart     []model.CartLine
	identity *model.Identity
	view     model.View
	orders   []model.Order

	lastOrderMillis int64
}

type storeKey struct{}

func WithStore(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the store attached by WithStore and panics when there is none.
func FromContext(ctx context.Context) Store {
	s, ok := ctx.Value(storeKey{}).(Store)
	if !ok || s == nil {
		panic("service: store accessed outside of its provider")
	}
	return s
}

func (s *store) dispatch(event Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Dispatch(event); err != nil {
		log.WithError(err).WithField("event", event.Type()).Error("failed to dispatch event")
	}
}
