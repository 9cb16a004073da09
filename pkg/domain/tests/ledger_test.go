package tests

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

func TestPlaceOrder(t *testing.T) {
	t.Run("Guest checkout", func(t *testing.T) {
		store, dispatcher := setup(t)
		store.AddItem(product(t, store, 1))
		store.AddItem(product(t, store, 7))
		store.AddItem(product(t, store, 7))
		cartBefore := store.Cart()
		totalBefore := store.Total()
		dispatcher.Reset()

		order := store.PlaceOrder("klient@przyklad.pl")

		require.NotNil(t, order)
		assert.Equal(t, fmt.Sprintf("ORD-%d", checkoutTime.UnixMilli()), order.ID)
		assert.Nil(t, order.OwnerID)
		assert.True(t, order.PlacedByGuest())
		assert.Equal(t, "klient@przyklad.pl", order.ContactEmail)
		assert.Equal(t, model.OrderPending, order.Status)
		assert.Equal(t, checkoutTime, order.CreatedAt)
		assert.Equal(t, cartBefore, order.Lines)
		assert.True(t, totalBefore.Equal(order.Total))
		assert.True(t, price("4857").Equal(order.Total), order.Total.String())

		assert.Empty(t, store.Cart())
		assert.Equal(t, model.ViewCheckoutSuccess, store.View())
		assert.Equal(t, []string{"OrderPlaced", "CartCleared", "ViewChanged"}, dispatcher.types())

		orders := store.Orders()
		require.Len(t, orders, 1)
		assert.Equal(t, *order, orders[0])
	})

	t.Run("Logged in checkout uses the identity", func(t *testing.T) {
		store, _ := setup(t)
		store.Login("demo", model.RoleClient)
		store.AddItem(product(t, store, 3))

		order := store.PlaceOrder("ignored@example.com")

		require.NotNil(t, order)
		require.NotNil(t, order.OwnerID)
		assert.Equal(t, 42, *order.OwnerID)
		assert.Equal(t, "demo@example.com", order.ContactEmail)
	})

	t.Run("Empty cart is a no-op", func(t *testing.T) {
		store, dispatcher := setup(t)
		store.SetView(model.ViewCart)
		dispatcher.Reset()

		order := store.PlaceOrder("klient@przyklad.pl")

		assert.Nil(t, order)
		assert.Empty(t, store.Orders())
		assert.Equal(t, model.ViewCart, store.View())
		assert.Empty(t, dispatcher.events)
	})
}

func TestOrderIsFrozen(t *testing.T) {
	store, _ := setup(t)
	laptop := product(t, store, 1)
	store.AddItem(laptop)
	placed := store.PlaceOrder("a@b.pl")
	require.NotNil(t, placed)

	store.AddItem(laptop)
	store.AddItem(laptop)
	store.SetQuantity(laptop.ID, 9)
	placed.Lines[0].Quantity = 500

	stored := store.Orders()[0]
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, 1, stored.Lines[0].Quantity)
	assert.True(t, price("4599").Equal(stored.Total))
	assert.True(t, model.SumLines(stored.Lines).Equal(stored.Total))
}

func TestLedgerIsNewestFirstWithUniqueIDs(t *testing.T) {
	store, _ := setup(t)

	var ids []string
	for i := 0; i < 3; i++ {
		store.AddItem(product(t, store, 4))
		order := store.PlaceOrder("a@b.pl")
		require.NotNil(t, order)
		ids = append(ids, order.ID)
	}

	orders := store.Orders()
	require.Len(t, orders, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{orders[0].ID, orders[1].ID, orders[2].ID})
	assert.Equal(t, fmt.Sprintf("ORD-%d", checkoutTime.UnixMilli()+2), ids[2])
}

func TestDoubleSubmitCreatesTwoOrders(t *testing.T) {
	store, _ := setup(t)
	store.AddItem(product(t, store, 4))
	require.NotNil(t, store.PlaceOrder("a@b.pl"))
	store.AddItem(product(t, store, 4))
	require.NotNil(t, store.PlaceOrder("a@b.pl"))

	assert.Len(t, store.Orders(), 2)
}

func TestCheckoutDoesNotTouchStock(t *testing.T) {
	store, _ := setup(t)
	before := product(t, store, 5).Stock
	store.AddItem(product(t, store, 5))
	store.SetQuantity(5, 3)
	store.PlaceOrder("a@b.pl")

	assert.Equal(t, before, product(t, store, 5).Stock)
}

func TestOrdersFor(t *testing.T) {
	store, _ := setup(t)
	store.AddItem(product(t, store, 1))
	store.PlaceOrder("guest@b.pl")

	store.Login("demo", model.RoleClient)
	store.AddItem(product(t, store, 2))
	mine := store.PlaceOrder("")

	orders := store.OrdersFor(42)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
	assert.Empty(t, store.OrdersFor(7))
}

func TestSetOrderStatus(t *testing.T) {
	store, dispatcher := setup(t)
	store.AddItem(product(t, store, 1))
	order := store.PlaceOrder("a@b.pl")
	require.NotNil(t, order)

	t.Run("Pending to completed", func(t *testing.T) {
		dispatcher.Reset()
		require.NoError(t, store.SetOrderStatus(order.ID, model.OrderCompleted))

		stored := store.Orders()[0]
		assert.Equal(t, model.OrderCompleted, stored.Status)
		assert.True(t, order.Total.Equal(stored.Total))
		assert.Equal(t, order.Lines, stored.Lines)
		require.Len(t, dispatcher.events, 1)
		event := dispatcher.events[0].(model.OrderStatusChanged)
		assert.Equal(t, model.OrderPending, event.OldStatus)
	})

	t.Run("Completed orders cannot change again", func(t *testing.T) {
		err := store.SetOrderStatus(order.ID, model.OrderCancelled)
		assert.ErrorIs(t, err, model.ErrInvalidStatusTransition)
	})

	t.Run("Unknown order", func(t *testing.T) {
		err := store.SetOrderStatus("ORD-0", model.OrderCancelled)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}
