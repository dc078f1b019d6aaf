package service_test

import (
	"context"
	"testing"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/metrics"
	"tomato-ordering/order-svc/internal/mocks"
	"tomato-ordering/order-svc/internal/service"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func biryaniPalace() *domain.Restaurant {
	r := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	r.AddMenuItem(domain.MenuItem{Code: "BIR001", Name: "Chicken Biryani", Price: 250})
	r.AddMenuItem(domain.MenuItem{Code: "BIR002", Name: "Mutton Biryani", Price: 350})
	return r
}

func userWithCart(codes ...string) *domain.User {
	r := biryaniPalace()
	user := domain.NewUser(101, "Aniket", "Jabalpur", r)
	for _, code := range codes {
		item, _ := r.FindItem(code)
		user.Cart.Add(item)
	}
	return user
}

func TestNormalOrderFactory_CreateOrder(t *testing.T) {
	user := userWithCart("BIR001")
	factory := service.NewNormalOrderFactory(user, 1)

	order, err := factory.CreateOrder(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Same(t, user, order.User)
	assert.Same(t, user.Cart.Restaurant, order.Restaurant)
	assert.Equal(t, domain.OrderNormal, order.Type())
	assert.Equal(t, user.Cart.Items(), order.Items())
}

func TestNormalOrderFactory_CartNotCleared(t *testing.T) {
	user := userWithCart("BIR001", "BIR002")
	factory := service.NewNormalOrderFactory(user, 1)

	first, err := factory.CreateOrder(context.Background())
	require.NoError(t, err)
	second, err := factory.CreateOrder(context.Background())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Items(), second.Items())
	assert.Equal(t, 600, user.Cart.TotalCost())
}

func TestNormalOrderFactory_SnapshotIsolatedFromCart(t *testing.T) {
	user := userWithCart("BIR001")
	order, err := service.NewNormalOrderFactory(user, 1).CreateOrder(context.Background())
	require.NoError(t, err)

	item, _ := user.Cart.Restaurant.FindItem("BIR002")
	user.Cart.Add(item)

	assert.Len(t, order.Items(), 1)
	assert.Equal(t, 250, order.Total())
}

func TestNormalOrderFactory_Fulfillment(t *testing.T) {
	tests := []struct {
		name        string
		fulfillment domain.Fulfillment
		wantType    domain.OrderType
		wantAddress string
		wantCounter string
		wantErr     error
	}{
		{name: "zero value is normal", wantType: domain.OrderNormal},
		{
			name:        "delivery with address",
			fulfillment: domain.Fulfillment{Type: domain.OrderDelivery, Address: "12 MG Road"},
			wantType:    domain.OrderDelivery,
			wantAddress: "12 MG Road",
		},
		{
			name:        "delivery defaults to user address",
			fulfillment: domain.Fulfillment{Type: domain.OrderDelivery},
			wantType:    domain.OrderDelivery,
			wantAddress: "Jabalpur",
		},
		{
			name:        "pickup",
			fulfillment: domain.Fulfillment{Type: domain.OrderPickup, Counter: "C-4"},
			wantType:    domain.OrderPickup,
			wantCounter: "C-4",
		},
		{
			name:        "unknown type",
			fulfillment: domain.Fulfillment{Type: "DRONE"},
			wantErr:     domain.ErrUnknownOrderType,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			factory := &service.NormalOrderFactory{
				User:        userWithCart("BIR001"),
				ID:          9,
				Fulfillment: testCase.fulfillment,
			}

			order, err := factory.CreateOrder(context.Background())
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantType, order.Type())

			addr, _ := order.DeliveryAddress()
			counter, _ := order.PickupCounter()
			assert.Equal(t, testCase.wantAddress, addr)
			assert.Equal(t, testCase.wantCounter, counter)
		})
	}
}

func TestNormalOrderFactory_EmptyCart(t *testing.T) {
	_, err := service.NewNormalOrderFactory(userWithCart(), 1).CreateOrder(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestScheduledOrderFactory_AnnouncesOncePerCall(t *testing.T) {
	ctx := context.Background()
	announcer := mocks.NewScheduleAnnouncer(t)
	user := userWithCart("BIR001")
	factory := service.NewScheduledOrderFactory(user, 5, "18:30", announcer)

	announcer.On("AnnounceSchedule", mock.Anything, 5, "18:30").Return(domain.Event{}).Twice()

	for i := 0; i < 2; i++ {
		order, err := factory.CreateOrder(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderNormal, order.Type())
		assert.Equal(t, 250, order.Total())
	}

	announcer.AssertNumberOfCalls(t, "AnnounceSchedule", 2)
}

func TestScheduledOrderFactory_AnnouncesBeforeBuilding(t *testing.T) {
	announcer := mocks.NewScheduleAnnouncer(t)
	factory := service.NewScheduledOrderFactory(userWithCart("BIR001"), 5, "18:30", announcer)
	created := metrics.OrdersCreated.WithLabelValues(string(domain.OrderNormal))

	before := testutil.ToFloat64(created)
	duringAnnouncement := -1.0
	announcer.On("AnnounceSchedule", mock.Anything, 5, "18:30").
		Run(func(mock.Arguments) { duringAnnouncement = testutil.ToFloat64(created) }).
		Return(domain.Event{}).Once()

	order, err := factory.CreateOrder(context.Background())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, before, duringAnnouncement, "order was built before the announcement")
	assert.Equal(t, before+1, testutil.ToFloat64(created))
}

func TestScheduledOrderFactory_EmptyCartSkipsAnnouncement(t *testing.T) {
	announcer := mocks.NewScheduleAnnouncer(t)
	factory := service.NewScheduledOrderFactory(userWithCart(), 5, "18:30", announcer)

	_, err := factory.CreateOrder(context.Background())

	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	announcer.AssertNotCalled(t, "AnnounceSchedule", mock.Anything, mock.Anything, mock.Anything)
}
