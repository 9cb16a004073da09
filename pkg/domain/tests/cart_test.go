package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
	"github.com/wwegiel111/Elektro-shop/pkg/domain/service"
)

func TestAddItem(t *testing.T) {
	store, dispatcher := setup(t)
	laptop := product(t, store, 1)
	mouse := product(t, store, 7)

	t.Run("Merges repeated adds into one line", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			store.AddItem(laptop)
		}

		cart := store.Cart()
		require.Len(t, cart, 1)
		assert.Equal(t, 1, cart[0].ID)
		assert.Equal(t, 5, cart[0].Quantity)
		require.Len(t, dispatcher.events, 5)
		event := dispatcher.events[4].(model.CartItemAdded)
		assert.Equal(t, 5, event.NewQuantity)
	})

	t.Run("Appends new products in insertion order", func(t *testing.T) {
		store.AddItem(mouse)

		cart := store.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, []int{1, 7}, []int{cart[0].ID, cart[1].ID})
		assert.Equal(t, 1, cart[1].Quantity)
	})

	t.Run("Does not check stock by default", func(t *testing.T) {
		soldOut := mouse
		soldOut.ID = 99
		soldOut.Stock = 0
		store.AddItem(soldOut)
		assert.Len(t, store.Cart(), 3)
	})
}

func TestAddItemRejectsOutOfStockWhenConfigured(t *testing.T) {
	store, dispatcher := setupWithOptions(t, service.Options{RejectOutOfStock: true})
	soldOut := product(t, store, 2)
	soldOut.Stock = 0

	store.AddItem(soldOut)

	assert.Empty(t, store.Cart())
	assert.Empty(t, dispatcher.events)
}

func TestCartCeilings(t *testing.T) {
	store, _ := setupWithOptions(t, service.Options{MaxLineQuantity: 3, MaxCartLines: 2})

	t.Run("Quantity ceiling stops AddItem", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			store.AddItem(product(t, store, 1))
		}
		assert.Equal(t, 3, store.Cart()[0].Quantity)
	})

	t.Run("SetQuantity clamps to the ceiling", func(t *testing.T) {
		store.SetQuantity(1, 10)
		assert.Equal(t, 3, store.Cart()[0].Quantity)
	})

	t.Run("Line ceiling stops new lines", func(t *testing.T) {
		store.AddItem(product(t, store, 2))
		store.AddItem(product(t, store, 3))
		assert.Len(t, store.Cart(), 2)
	})
}

func TestRemoveItem(t *testing.T) {
	store, dispatcher := setup(t)
	store.AddItem(product(t, store, 1))
	store.AddItem(product(t, store, 4))
	store.AddItem(product(t, store, 6))

	t.Run("Removes the matching line", func(t *testing.T) {
		dispatcher.Reset()
		store.RemoveItem(4)

		cart := store.Cart()
		require.Len(t, cart, 2)
		assert.Equal(t, []int{1, 6}, []int{cart[0].ID, cart[1].ID})
		require.Len(t, dispatcher.events, 1)
		assert.Equal(t, model.CartItemRemoved{ProductID: 4}, dispatcher.events[0])
	})

	t.Run("Absent product is a no-op", func(t *testing.T) {
		dispatcher.Reset()
		before := store.Cart()
		store.RemoveItem(12345)
		assert.Equal(t, before, store.Cart())
		assert.Empty(t, dispatcher.events)
	})
}

func TestSetQuantity(t *testing.T) {
	t.Run("Sets an absolute quantity", func(t *testing.T) {
		store, _ := setup(t)
		store.AddItem(product(t, store, 5))
		store.AddItem(product(t, store, 5))

		store.SetQuantity(5, 7)
		assert.Equal(t, 7, store.Cart()[0].Quantity)
	})

	t.Run("Absent line is a no-op", func(t *testing.T) {
		store, dispatcher := setup(t)
		store.SetQuantity(5, 3)
		assert.Empty(t, store.Cart())
		assert.Empty(t, dispatcher.events)
	})

	for _, q := range []int{0, -1, -100} {
		q := q
		t.Run("Non-positive quantity equals RemoveItem", func(t *testing.T) {
			viaSet, _ := setup(t)
			viaRemove, _ := setup(t)
			for _, s := range []service.Store{viaSet, viaRemove} {
				s.AddItem(product(t, s, 1))
				s.AddItem(product(t, s, 3))
				s.AddItem(product(t, s, 3))
			}

			viaSet.SetQuantity(3, q)
			viaRemove.RemoveItem(3)

			assert.Equal(t, viaRemove.Cart(), viaSet.Cart())
			assert.Len(t, viaSet.Cart(), 1)
		})
	}
}

func TestClearCart(t *testing.T) {
	store, dispatcher := setup(t)
	store.AddItem(product(t, store, 1))
	store.AddItem(product(t, store, 2))
	dispatcher.Reset()

	store.ClearCart()

	assert.Empty(t, store.Cart())
	assert.True(t, store.Total().IsZero())
	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, model.CartCleared{LineCount: 2}, dispatcher.events[0])
}

func TestTotalTracksEveryMutation(t *testing.T) {
	store, _ := setup(t)
	check := func() {
		t.Helper()
		assert.True(t, expectedTotal(store.Cart()).Equal(store.Total()),
			"total %s, recomputed %s", store.Total(), expectedTotal(store.Cart()))
	}

	check()
	store.AddItem(product(t, store, 1))
	check()
	store.AddItem(product(t, store, 2))
	check()
	store.AddItem(product(t, store, 2))
	check()
	store.SetQuantity(1, 4)
	check()
	store.RemoveItem(2)
	check()
	store.SetQuantity(1, 0)
	check()

	store.AddItem(product(t, store, 2))
	store.AddItem(product(t, store, 7))
	store.SetQuantity(7, 3)
	assert.True(t, price("8686.99").Equal(store.Total()), store.Total().String())
	assert.Equal(t, 4, store.ItemCount())
}

func TestAddThenRemoveRestoresCart(t *testing.T) {
	store, _ := setup(t)
	store.AddItem(product(t, store, 3))
	store.AddItem(product(t, store, 8))
	store.AddItem(product(t, store, 8))
	store.SetQuantity(3, 4)
	before := store.Cart()

	store.AddItem(product(t, store, 6))
	store.RemoveItem(6)

	assert.Equal(t, before, store.Cart())
}

func TestCartReturnsACopy(t *testing.T) {
	store, _ := setup(t)
	store.AddItem(product(t, store, 1))

	cart := store.Cart()
	cart[0].Quantity = 99

	assert.Equal(t, 1, store.Cart()[0].Quantity)
}
