package storage

import (
	"context"
	"errors"
	"log"

	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuItemMongoRepository struct {
	items *mongo.Collection
}

func NewMenuItemMongoRepository(db *mongo.Database) *MenuItemMongoRepository {
	return &MenuItemMongoRepository{items: db.Collection("menu_items")}
}

var _ service.MenuItemRepository = (*MenuItemMongoRepository)(nil)

func (r *MenuItemMongoRepository) EnsureIndexes(ctx context.Context) {
	_, err := r.items.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "restaurant_id", Value: 1}, {Key: "popularity", Value: -1}}},
	})
	if err != nil {
		log.Println("[catalog-svc] failed to create menu item indexes:", err)
	}
}

func (r *MenuItemMongoRepository) Insert(ctx context.Context, item *domain.MenuItem) error {
	item.ID = primitive.NewObjectID()
	_, err := r.items.InsertOne(ctx, item)
	return err
}

func (r *MenuItemMongoRepository) FindByRestaurant(ctx context.Context, restaurantID string, query domain.MenuQuery) ([]domain.MenuItem, error) {
	filter := bson.M{"restaurant_id": restaurantID}

	if query.Category != "" {
		filter["category"] = query.Category
	} else if len(query.Categories) > 0 {
		filter["category"] = bson.M{"$in": query.Categories}
	}
	if query.Search != "" {
		filter["name"] = containsIgnoreCase(query.Search)
	}

	price := bson.M{}
	if query.MinPrice > 0 {
		price["$gte"] = query.MinPrice
	}
	if query.MaxPrice > 0 {
		price["$lte"] = query.MaxPrice
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if len(query.ExcludeAllergens) > 0 {
		filter["allergens"] = bson.M{"$nin": query.ExcludeAllergens}
	}

	cursor, err := r.items.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "category", Value: 1}, {Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemMongoRepository) FindByID(ctx context.Context, restaurantID, itemID string) (*domain.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, service.ErrMenuItemNotFound
	}

	var item domain.MenuItem
	err = r.items.FindOne(ctx, bson.M{"_id": objectID, "restaurant_id": restaurantID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, service.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemMongoRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	result, err := r.items.ReplaceOne(ctx, bson.M{"_id": item.ID}, item)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuItemMongoRepository) Delete(ctx context.Context, restaurantID, itemID string) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return service.ErrMenuItemNotFound
	}

	result, err := r.items.DeleteOne(ctx, bson.M{"_id": objectID, "restaurant_id": restaurantID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}

func (r *MenuItemMongoRepository) Categories(ctx context.Context, restaurantID string) ([]string, error) {
	values, err := r.items.Distinct(ctx, "category", bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MenuItemMongoRepository) Count(ctx context.Context, restaurantID string) (int64, error) {
	return r.items.CountDocuments(ctx, bson.M{"restaurant_id": restaurantID})
}

func (r *MenuItemMongoRepository) TopByPopularity(ctx context.Context, restaurantID string, limit int) ([]domain.MenuItem, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "popularity", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.items.Find(ctx, bson.M{"restaurant_id": restaurantID, "popularity": bson.M{"$gt": 0}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []domain.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuItemMongoRepository) IncrementPopularity(ctx context.Context, itemID string, delta int) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return service.ErrMenuItemNotFound
	}

	result, err := r.items.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$inc": bson.M{"popularity": delta},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return service.ErrMenuItemNotFound
	}
	return nil
}
