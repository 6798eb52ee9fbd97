package storage

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"foodordering/catalog-svc/internal/domain"
	"foodordering/catalog-svc/internal/service"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RestaurantMongoRepository struct {
	restaurants *mongo.Collection
}

func NewRestaurantMongoRepository(db *mongo.Database) *RestaurantMongoRepository {
	return &RestaurantMongoRepository{restaurants: db.Collection("restaurants")}
}

var _ service.RestaurantRepository = (*RestaurantMongoRepository)(nil)

func (r *RestaurantMongoRepository) EnsureIndexes(ctx context.Context) {
	_, err := r.restaurants.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "cuisine_types", Value: 1}}},
		{Keys: bson.D{{Key: "address.city", Value: 1}}},
		{Keys: bson.D{{Key: "rating", Value: -1}}},
	})
	if err != nil {
		log.Println("[catalog-svc] failed to create restaurant indexes:", err)
	}
}

func (r *RestaurantMongoRepository) Insert(ctx context.Context, restaurant *domain.Restaurant) error {
	restaurant.ID = primitive.NewObjectID()
	_, err := r.restaurants.InsertOne(ctx, restaurant)
	return err
}

func (r *RestaurantMongoRepository) Find(ctx context.Context, page, size int, sortBy, sortDir string) (*domain.RestaurantPage, error) {
	filter := bson.M{"is_active": true}

	total, err := r.restaurants.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	direction := 1
	if sortDir == "desc" {
		direction = -1
	}
	sortField := map[string]string{
		"name":       "name",
		"rating":     "rating",
		"created_at": "created_at",
	}[sortBy]
	if sortField == "" {
		sortField = "name"
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: direction}}).
		SetSkip(int64(page * size)).
		SetLimit(int64(size))

	cursor, err := r.restaurants.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	content := []domain.Restaurant{}
	if err := cursor.All(ctx, &content); err != nil {
		return nil, err
	}

	return &domain.RestaurantPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
	}, nil
}

func (r *RestaurantMongoRepository) FindByID(ctx context.Context, id string) (*domain.Restaurant, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, service.ErrRestaurantNotFound
	}

	var restaurant domain.Restaurant
	err = r.restaurants.FindOne(ctx, bson.M{"_id": objectID}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, service.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantMongoRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	result, err := r.restaurants.ReplaceOne(ctx, bson.M{"_id": restaurant.ID}, restaurant)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return service.ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantMongoRepository) Deactivate(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return service.ErrRestaurantNotFound
	}

	result, err := r.restaurants.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{
		"$set": bson.M{"is_active": false, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return service.ErrRestaurantNotFound
	}
	return nil
}

func (r *RestaurantMongoRepository) SearchByName(ctx context.Context, query string) ([]domain.Restaurant, error) {
	return r.findAll(ctx, bson.M{
		"is_active": true,
		"name":      containsIgnoreCase(query),
	})
}

func (r *RestaurantMongoRepository) FindByCuisine(ctx context.Context, cuisine string) ([]domain.Restaurant, error) {
	return r.findAll(ctx, bson.M{"is_active": true, "cuisine_types": cuisine})
}

func (r *RestaurantMongoRepository) FindByCity(ctx context.Context, city string) ([]domain.Restaurant, error) {
	return r.findAll(ctx, bson.M{
		"is_active":    true,
		"address.city": equalsIgnoreCase(city),
	})
}

func (r *RestaurantMongoRepository) FindByMinRating(ctx context.Context, minRating float64) ([]domain.Restaurant, error) {
	return r.findAll(ctx, bson.M{"is_active": true, "rating": bson.M{"$gte": minRating}})
}

func (r *RestaurantMongoRepository) FindByCuisines(ctx context.Context, cuisines []string) ([]domain.Restaurant, error) {
	return r.findAll(ctx, bson.M{"is_active": true, "cuisine_types": bson.M{"$in": cuisines}})
}

// containsIgnoreCase builds a case-insensitive substring filter. The
// input is quoted so regex metacharacters from user queries are matched
// literally instead of breaking the pattern.
func containsIgnoreCase(value string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(value), "$options": "i"}
}

func equalsIgnoreCase(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}

func (r *RestaurantMongoRepository) findAll(ctx context.Context, filter bson.M) ([]domain.Restaurant, error) {
	cursor, err := r.restaurants.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	restaurants := []domain.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}
