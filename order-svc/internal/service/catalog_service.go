package service

import (
	"context"
	"errors"
	"fmt"

	"tomato-ordering/order-svc/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrItemNotOnMenu      = errors.New("item is not on the restaurant's menu")
)

type CatalogService struct {
	restaurants RestaurantRegistry
	users       UserRegistry
}

func NewCatalogService(restaurants RestaurantRegistry, users UserRegistry) *CatalogService {
	return &CatalogService{restaurants: restaurants, users: users}
}

// Load registers every restaurant the source returns.
func (s *CatalogService) Load(ctx context.Context, source CatalogSource) (int, error) {
	restaurants, err := source.LoadRestaurants(ctx)
	if err != nil {
		return 0, fmt.Errorf("load catalog: %w", err)
	}
	for _, rest := range restaurants {
		s.restaurants.Add(rest)
	}
	return len(restaurants), nil
}

// SeedDefault registers the Biryani Palace catalog.
func (s *CatalogService) SeedDefault() *domain.Restaurant {
	rest := domain.NewRestaurant(1, "Biryani Palace", "Mumbai")
	rest.AddMenuItem(domain.MenuItem{Code: "BIR001", Name: "Chicken Biryani", Price: 250})
	rest.AddMenuItem(domain.MenuItem{Code: "BIR002", Name: "Mutton Biryani", Price: 350})
	s.restaurants.Add(rest)
	return rest
}

func (s *CatalogService) CreateRestaurant(id int, name, location string) *domain.Restaurant {
	rest := domain.NewRestaurant(id, name, location)
	s.restaurants.Add(rest)
	return rest
}

func (s *CatalogService) ListRestaurants() []*domain.Restaurant {
	return s.restaurants.List()
}

func (s *CatalogService) Restaurant(id int) (*domain.Restaurant, error) {
	rest, ok := s.restaurants.Get(id)
	if !ok {
		return nil, ErrRestaurantNotFound
	}
	return rest, nil
}

func (s *CatalogService) Menu(restaurantID int) ([]domain.MenuItem, error) {
	rest, err := s.Restaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	return rest.Menu(), nil
}

func (s *CatalogService) AddMenuItem(restaurantID int, code, name string, price int) (domain.MenuItem, error) {
	rest, err := s.Restaurant(restaurantID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	item, err := domain.NewMenuItem(code, name, price)
	if err != nil {
		return domain.MenuItem{}, err
	}
	rest.AddMenuItem(item)
	return item, nil
}

func (s *CatalogService) CreateUser(id int, name, address string, restaurantID int) (*domain.User, error) {
	rest, err := s.Restaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	user := domain.NewUser(id, name, address, rest)
	s.users.Put(user)
	return user, nil
}

func (s *CatalogService) User(id int) (*domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// AddToCart looks code up on the menu of the user's cart restaurant.
func (s *CatalogService) AddToCart(userID int, code string) (domain.MenuItem, error) {
	user, err := s.User(userID)
	if err != nil {
		return domain.MenuItem{}, err
	}
	item, ok := user.Cart.Restaurant.FindItem(code)
	if !ok {
		return domain.MenuItem{}, fmt.Errorf("%w: %s", ErrItemNotOnMenu, code)
	}
	user.Cart.Add(item)
	return item, nil
}
