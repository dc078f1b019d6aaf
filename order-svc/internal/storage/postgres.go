package storage

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"

	"tomato-ordering/order-svc/internal/domain"
)

// PostgresCatalog reads restaurants and their menus. It never writes.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

func (c *PostgresCatalog) ListRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT id, name, COALESCE(address, '')
		FROM restaurants
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*domain.Restaurant
	for rows.Next() {
		var (
			id             int
			name, location string
		)
		if err := rows.Scan(&id, &name, &location); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, domain.NewRestaurant(id, name, location))
	}
	return restaurants, rows.Err()
}

// ListMenu reads the dishes of one restaurant. Dishes have no code column, so
// the dish id becomes the menu code; NUMERIC prices round to whole rupees.
func (c *PostgresCatalog) ListMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT id, name, price
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var (
			id    int
			name  string
			price float64
		)
		if err := rows.Scan(&id, &name, &price); err != nil {
			return nil, err
		}
		item, err := domain.NewMenuItem(strconv.Itoa(id), name, int(math.Round(price)))
		if err != nil {
			return nil, fmt.Errorf("dish %d of restaurant %d: %w", id, restaurantID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// LoadRestaurants returns every restaurant with its menu filled in.
func (c *PostgresCatalog) LoadRestaurants(ctx context.Context) ([]*domain.Restaurant, error) {
	restaurants, err := c.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	for _, rest := range restaurants {
		items, err := c.ListMenu(ctx, rest.ID)
		if err != nil {
			return nil, fmt.Errorf("list menu of restaurant %d: %w", rest.ID, err)
		}
		for _, item := range items {
			rest.AddMenuItem(item)
		}
	}
	return restaurants, nil
}
