package domain_test

import (
	"testing"

	"tomato-ordering/order-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestaurant_AddMenuItemKeepsOrder(t *testing.T) {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	codes := []string{"BIR001", "BIR002", "BIR003", "BIR001"}
	for i, code := range codes {
		r.AddMenuItem(domain.MenuItem{Code: code, Name: "item", Price: (i + 1) * 100})
	}

	menu := r.Menu()
	require.Len(t, menu, len(codes))
	for i, code := range codes {
		assert.Equal(t, code, menu[i].Code)
	}
}

func TestRestaurant_MenuReturnsCopy(t *testing.T) {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	r.AddMenuItem(domain.MenuItem{Code: "BIR001", Name: "Chicken Biryani", Price: 250})

	menu := r.Menu()
	menu[0].Price = 1

	assert.Equal(t, 250, r.Menu()[0].Price)
}

func TestRestaurant_FindItem(t *testing.T) {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	r.AddMenuItem(domain.MenuItem{Code: "BIR001", Name: "Chicken Biryani", Price: 250})

	item, ok := r.FindItem("BIR001")
	assert.True(t, ok)
	assert.Equal(t, "Chicken Biryani", item.Name)

	_, ok = r.FindItem("NOPE")
	assert.False(t, ok)
}

func TestNewMenuItem(t *testing.T) {
	tests := []struct {
		name    string
		price   int
		wantErr error
	}{
		{name: "positive price", price: 250},
		{name: "free item", price: 0},
		{name: "negative price", price: -1, wantErr: domain.ErrInvalidAmount},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			item, err := domain.NewMenuItem("X1", "Item", testCase.price)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, testCase.price, item.Price)
		})
	}
}

func TestCart_TotalCostIgnoresOrder(t *testing.T) {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	items := []domain.MenuItem{
		{Code: "A", Price: 250},
		{Code: "B", Price: 350},
		{Code: "C", Price: 40},
		{Code: "A", Price: 250},
	}

	forward := domain.NewCart(r)
	for _, item := range items {
		forward.Add(item)
	}
	backward := domain.NewCart(r)
	for i := len(items) - 1; i >= 0; i-- {
		backward.Add(items[i])
	}

	assert.Equal(t, 890, forward.TotalCost())
	assert.Equal(t, forward.TotalCost(), backward.TotalCost())
	assert.Len(t, forward.Items(), 4)
}

func TestCart_EmptyTotalIsZero(t *testing.T) {
	cart := domain.NewCart(domain.NewRestaurant(1, "Biryani Palace", "Mumbai"))
	assert.Zero(t, cart.TotalCost())
	assert.Empty(t, cart.Items())
}

func TestNewUser_OwnsCartForRestaurant(t *testing.T) {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	user := domain.NewUser(101, "Aniket", "Jabalpur", r)

	require.NotNil(t, user.Cart)
	assert.Same(t, r, user.Cart.Restaurant)
}
