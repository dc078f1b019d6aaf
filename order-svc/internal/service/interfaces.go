package service

import (
	"context"

	"tomato-ordering/order-svc/internal/domain"
	"tomato-ordering/order-svc/internal/storage"
)

type Notifier interface {
	Name() string
	Notify(ctx context.Context, event domain.Event) error
}

type QRGenerator interface {
	Generate(receipt domain.Receipt) ([]byte, error)
}

type OrderFactory interface {
	CreateOrder(ctx context.Context) (*domain.Order, error)
}

type ScheduleAnnouncer interface {
	AnnounceSchedule(ctx context.Context, orderID int, at string) domain.Event
}

type CatalogSource interface {
	LoadRestaurants(ctx context.Context) ([]*domain.Restaurant, error)
}

type RestaurantRegistry interface {
	Add(rest *domain.Restaurant)
	Get(id int) (*domain.Restaurant, bool)
	List() []*domain.Restaurant
}

type OrderRegistry interface {
	Add(order *domain.Order)
	Get(id int) (*domain.Order, bool)
	List() []*domain.Order
}

type UserRegistry interface {
	Put(user *domain.User)
	Get(id int) (*domain.User, bool)
}

type CatalogServiceInterface interface {
	CreateRestaurant(id int, name, location string) *domain.Restaurant
	ListRestaurants() []*domain.Restaurant
	Restaurant(id int) (*domain.Restaurant, error)
	Menu(restaurantID int) ([]domain.MenuItem, error)
	AddMenuItem(restaurantID int, code, name string, price int) (domain.MenuItem, error)
	CreateUser(id int, name, address string, restaurantID int) (*domain.User, error)
	User(id int) (*domain.User, error)
	AddToCart(userID int, code string) (domain.MenuItem, error)
}

type OrderServiceInterface interface {
	Checkout(ctx context.Context, factory OrderFactory, method domain.PaymentMethod) (*domain.Order, domain.Receipt, error)
	Get(id int) (*domain.Order, error)
	List() []*domain.Order
	SetPayment(id int, method domain.PaymentMethod) error
	Pay(ctx context.Context, id int) (domain.Receipt, error)
	QRCode(id int) ([]byte, error)
	Announcer() ScheduleAnnouncer
}

var (
	_ RestaurantRegistry = (*storage.RestaurantRegistry)(nil)
	_ OrderRegistry      = (*storage.OrderRegistry)(nil)
	_ UserRegistry       = (*storage.UserRegistry)(nil)
	_ CatalogSource      = (*storage.PostgresCatalog)(nil)
	_ Notifier           = (*storage.KafkaNotifier)(nil)
	_ Notifier           = (*storage.RedisNotifier)(nil)
	_ Notifier           = (*storage.RabbitNotifier)(nil)

	_ CatalogServiceInterface = (*CatalogService)(nil)
	_ OrderServiceInterface   = (*OrderService)(nil)
	_ ScheduleAnnouncer       = (*NotificationService)(nil)
)
