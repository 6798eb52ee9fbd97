package service

import (
	"context"
	"errors"
	"log"
	"time"

	"foodordering/catalog-svc/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)

const (
	EventRestaurantCreated = "catalog.restaurant_created"
	EventRestaurantUpdated = "catalog.restaurant_updated"
	EventRestaurantDeleted = "catalog.restaurant_deleted"
	EventMenuItemCreated   = "catalog.menu_item_created"
	EventMenuItemUpdated   = "catalog.menu_item_updated"
	EventMenuItemDeleted   = "catalog.menu_item_deleted"
)

type RestaurantService struct {
	repo      RestaurantRepository
	publisher EventPublisher
}

func NewRestaurantService(repo RestaurantRepository, publisher EventPublisher) *RestaurantService {
	return &RestaurantService{repo: repo, publisher: publisher}
}

func (s *RestaurantService) Create(ctx context.Context, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	now := time.Now()
	restaurant := &domain.Restaurant{
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Website:      req.Website,
		CuisineTypes: req.CuisineTypes,
		OpeningHours: req.OpeningHours,
		DeliveryInfo: req.DeliveryInfo,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, restaurant); err != nil {
		return nil, err
	}

	s.publish(ctx, EventRestaurantCreated, restaurant.ID.Hex(), "")
	return restaurant, nil
}

func (s *RestaurantService) List(ctx context.Context, page, size int, sortBy, sortDir string) (*domain.RestaurantPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return s.repo.Find(ctx, page, size, sortBy, sortDir)
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *RestaurantService) Update(ctx context.Context, id string, req domain.RestaurantRequest) (*domain.Restaurant, error) {
	restaurant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	restaurant.Name = req.Name
	restaurant.Description = req.Description
	restaurant.ImageURL = req.ImageURL
	restaurant.Address = req.Address
	restaurant.Phone = req.Phone
	restaurant.Email = req.Email
	restaurant.Website = req.Website
	restaurant.CuisineTypes = req.CuisineTypes
	restaurant.OpeningHours = req.OpeningHours
	restaurant.DeliveryInfo = req.DeliveryInfo
	restaurant.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	s.publish(ctx, EventRestaurantUpdated, restaurant.ID.Hex(), "")
	return restaurant, nil
}

// Delete deactivates the restaurant instead of removing the document, so
// historical orders keep resolving.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, EventRestaurantDeleted, id, "")
	return nil
}

func (s *RestaurantService) Search(ctx context.Context, query string) ([]domain.Restaurant, error) {
	return s.repo.SearchByName(ctx, query)
}

func (s *RestaurantService) ByCuisine(ctx context.Context, cuisine string) ([]domain.Restaurant, error) {
	return s.repo.FindByCuisine(ctx, cuisine)
}

func (s *RestaurantService) ByCity(ctx context.Context, city string) ([]domain.Restaurant, error) {
	return s.repo.FindByCity(ctx, city)
}

func (s *RestaurantService) ByMinRating(ctx context.Context, minRating float64) ([]domain.Restaurant, error) {
	return s.repo.FindByMinRating(ctx, minRating)
}

func (s *RestaurantService) ByCuisines(ctx context.Context, cuisines []string) ([]domain.Restaurant, error) {
	return s.repo.FindByCuisines(ctx, cuisines)
}

// publish is best-effort: the catalog write already committed, a broker
// hiccup must not fail the request.
func (s *RestaurantService) publish(ctx context.Context, eventType, restaurantID, itemID string) {
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
