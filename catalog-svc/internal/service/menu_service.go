package service

import (
	"context"
	"log"
	"time"

	"foodordering/catalog-svc/internal/domain"
)

type MenuService struct {
	restaurants RestaurantRepository
	items       MenuItemRepository
	popularity  PopularityStore
	publisher   EventPublisher
}

func NewMenuService(restaurants RestaurantRepository, items MenuItemRepository, popularity PopularityStore, publisher EventPublisher) *MenuService {
	return &MenuService{
		restaurants: restaurants,
		items:       items,
		popularity:  popularity,
		publisher:   publisher,
	}
}

func (s *MenuService) Create(ctx context.Context, restaurantID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	if _, err := s.restaurants.FindByID(ctx, restaurantID); err != nil {
		return nil, err
	}

	now := time.Now()
	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsAvailable:  available,
		Ingredients:  req.Ingredients,
		Allergens:    req.Allergens,
		Nutrition:    req.Nutrition,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.items.Insert(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, EventMenuItemCreated, restaurantID, item.ID.Hex())
	return item, nil
}

func (s *MenuService) List(ctx context.Context, restaurantID string, query domain.MenuQuery) ([]domain.MenuItem, error) {
	return s.items.FindByRestaurant(ctx, restaurantID, query)
}

func (s *MenuService) Get(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	return s.items.FindByID(ctx, restaurantID, itemID)
}

func (s *MenuService) Update(ctx context.Context, restaurantID, itemID string, req domain.MenuItemRequest) (*domain.MenuItem, error) {
	item, err := s.items.FindByID(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = req.Category
	item.ImageURL = req.ImageURL
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	item.Ingredients = req.Ingredients
	item.Allergens = req.Allergens
	item.Nutrition = req.Nutrition
	item.UpdatedAt = time.Now()

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}

	s.publish(ctx, EventMenuItemUpdated, restaurantID, itemID)
	return item, nil
}

func (s *MenuService) Delete(ctx context.Context, restaurantID, itemID string) error {
	if err := s.items.Delete(ctx, restaurantID, itemID); err != nil {
		return err
	}
	s.publish(ctx, EventMenuItemDeleted, restaurantID, itemID)
	return nil
}

func (s *MenuService) Categories(ctx context.Context, restaurantID string) ([]string, error) {
	return s.items.Categories(ctx, restaurantID)
}

func (s *MenuService) Count(ctx context.Context, restaurantID string) (int64, error) {
	return s.items.Count(ctx, restaurantID)
}

// TopItems prefers the redis ranking and falls back to the popularity
// counters persisted in Mongo when the mirror is cold or unavailable.
func (s *MenuService) TopItems(ctx context.Context, restaurantID string, limit int) ([]domain.MenuItem, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	if s.popularity != nil {
		ids, err := s.popularity.TopItemIDs(ctx, restaurantID, limit)
		if err != nil {
			log.Printf("[catalog-svc] redis top items unavailable, falling back to mongo: %v", err)
		} else if len(ids) > 0 {
			items := make([]domain.MenuItem, 0, len(ids))
			for _, id := range ids {
				item, err := s.items.FindByID(ctx, restaurantID, id)
				if err != nil {
					continue
				}
				items = append(items, *item)
			}
			if len(items) > 0 {
				return items, nil
			}
		}
	}

	return s.items.TopByPopularity(ctx, restaurantID, limit)
}

func (s *MenuService) publish(ctx context.Context, eventType, restaurantID, itemID string) {
	if s.publisher == nil {
		return
	}
	event := domain.CatalogEvent{
		Type:         eventType,
		RestaurantID: restaurantID,
		MenuItemID:   itemID,
		Timestamp:    time.Now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[catalog-svc] failed to publish %s: %v", eventType, err)
	}
}
