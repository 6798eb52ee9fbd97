package service

import (
	"context"

	"foodordering/catalog-svc/internal/domain"
)

type RestaurantServiceInterface interface {
	Create(ctx context.Context, req domain.RestaurantRequest) (*domain.Restaurant, error)
	List(ctx context.Context, page, size int, sortBy, sortDir string) (*domain.RestaurantPage, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	Update(ctx context.Context, id string, req domain.RestaurantRequest) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string) ([]domain.Restaurant, error)
	ByCuisine(ctx context.Context, cuisine string) ([]domain.Restaurant, error)
	ByCity(ctx context.Context, city string) ([]domain.Restaurant, error)
	ByMinRating(ctx context.Context, minRating float64) ([]domain.Restaurant, error)
	ByCuisines(ctx context.Context, cuisines []string) ([]domain.Restaurant, error)
}

type MenuServiceInterface interface {
	Create(ctx context.Context, restaurantID string, req domain.MenuItemRequest) (*domain.MenuItem, error)
	List(ctx context.Context, restaurantID string, query domain.MenuQuery) ([]domain.MenuItem, error)
	Get(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error)
	Update(ctx context.Context, restaurantID, itemID string, req domain.MenuItemRequest) (*domain.MenuItem, error)
	Delete(ctx context.Context, restaurantID, itemID string) error
	Categories(ctx context.Context, restaurantID string) ([]string, error)
	Count(ctx context.Context, restaurantID string) (int64, error)
	TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.MenuItem, error)
}

type RestaurantRepository interface {
	Insert(ctx context.Context, restaurant *domain.Restaurant) error
	Find(ctx context.Context, page, size int, sortBy, sortDir string) (*domain.RestaurantPage, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	Deactivate(ctx context.Context, id string) error
	SearchByName(ctx context.Context, query string) ([]domain.Restaurant, error)
	FindByCuisine(ctx context.Context, cuisine string) ([]domain.Restaurant, error)
	FindByCity(ctx context.Context, city string) ([]domain.Restaurant, error)
	FindByMinRating(ctx context.Context, minRating float64) ([]domain.Restaurant, error)
	FindByCuisines(ctx context.Context, cuisines []string) ([]domain.Restaurant, error)
}

type MenuItemRepository interface {
	Insert(ctx context.Context, item *domain.MenuItem) error
	FindByRestaurant(ctx context.Context, restaurantID string, query domain.MenuQuery) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	Delete(ctx context.Context, restaurantID, itemID string) error
	Categories(ctx context.Context, restaurantID string) ([]string, error)
	Count(ctx context.Context, restaurantID string) (int64, error)
	TopByPopularity(ctx context.Context, restaurantID string, limit int) ([]domain.MenuItem, error)
	IncrementPopularity(ctx context.Context, itemID string, delta int) error
}

// PopularityStore is the redis mirror of per-restaurant popularity
// rankings, kept hot by the order_events consumer.
type PopularityStore interface {
	Increment(ctx context.Context, restaurantID, itemID string, delta int) error
	TopItemIDs(ctx context.Context, restaurantID string, limit int) ([]string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.CatalogEvent) error
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
var _ MenuServiceInterface = (*MenuService)(nil)
