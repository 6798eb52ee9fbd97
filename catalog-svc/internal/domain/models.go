package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Restaurant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description,omitempty"`
	ImageURL     string             `bson:"image_url" json:"image_url,omitempty"`
	Address      Address            `bson:"address" json:"address"`
	Phone        string             `bson:"phone" json:"phone,omitempty"`
	Email        string             `bson:"email" json:"email,omitempty"`
	Website      string             `bson:"website" json:"website,omitempty"`
	CuisineTypes []string           `bson:"cuisine_types" json:"cuisine_types"`
	OpeningHours OpeningHours       `bson:"opening_hours" json:"opening_hours"`
	DeliveryInfo DeliveryInfo       `bson:"delivery_info" json:"delivery_info"`
	Rating       float64            `bson:"rating" json:"rating"`
	ReviewCount  int                `bson:"review_count" json:"review_count"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type Address struct {
	Street    string  `bson:"street" json:"street" validate:"required"`
	City      string  `bson:"city" json:"city" validate:"required"`
	State     string  `bson:"state" json:"state"`
	ZipCode   string  `bson:"zip_code" json:"zip_code" validate:"omitempty,zipcode"`
	Country   string  `bson:"country" json:"country"`
	Latitude  float64 `bson:"latitude" json:"latitude,omitempty"`
	Longitude float64 `bson:"longitude" json:"longitude,omitempty"`
}

// OpeningHours holds "HH:MM-HH:MM" ranges per weekday; an empty string
// means closed that day.
type OpeningHours struct {
	Monday    string `bson:"monday" json:"monday,omitempty"`
	Tuesday   string `bson:"tuesday" json:"tuesday,omitempty"`
	Wednesday string `bson:"wednesday" json:"wednesday,omitempty"`
	Thursday  string `bson:"thursday" json:"thursday,omitempty"`
	Friday    string `bson:"friday" json:"friday,omitempty"`
	Saturday  string `bson:"saturday" json:"saturday,omitempty"`
	Sunday    string `bson:"sunday" json:"sunday,omitempty"`
}

type DeliveryInfo struct {
	Zones            []string `bson:"zones" json:"zones"`
	DeliveryFee      float64  `bson:"delivery_fee" json:"delivery_fee"`
	MinimumOrder     float64  `bson:"minimum_order" json:"minimum_order"`
	EstimatedMinutes int      `bson:"estimated_minutes" json:"estimated_minutes"`
	SelfDelivery     bool     `bson:"self_delivery" json:"self_delivery"`
}

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RestaurantID string             `bson:"restaurant_id" json:"restaurant_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Category     string             `bson:"category" json:"category"`
	ImageURL     string             `bson:"image_url" json:"image_url,omitempty"`
	IsAvailable  bool               `bson:"is_available" json:"is_available"`
	Ingredients  []string           `bson:"ingredients" json:"ingredients"`
	Allergens    []string           `bson:"allergens" json:"allergens"`
	Nutrition    Nutrition          `bson:"nutrition" json:"nutrition"`
	Popularity   int64              `bson:"popularity" json:"popularity"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type Nutrition struct {
	Calories int     `bson:"calories" json:"calories,omitempty"`
	Protein  float64 `bson:"protein" json:"protein,omitempty"`
	Carbs    float64 `bson:"carbs" json:"carbs,omitempty"`
	Fat      float64 `bson:"fat" json:"fat,omitempty"`
}

type RestaurantRequest struct {
	Name         string       `json:"name" validate:"required"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"image_url"`
	Address      Address      `json:"address" validate:"required"`
	Phone        string       `json:"phone" validate:"omitempty,phone"`
	Email        string       `json:"email" validate:"omitempty,email"`
	Website      string       `json:"website"`
	CuisineTypes []string     `json:"cuisine_types"`
	OpeningHours OpeningHours `json:"opening_hours"`
	DeliveryInfo DeliveryInfo `json:"delivery_info"`
}

type MenuItemRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"required,gt=0"`
	Category    string    `json:"category" validate:"required"`
	ImageURL    string    `json:"image_url"`
	IsAvailable *bool     `json:"is_available"`
	Ingredients []string  `json:"ingredients"`
	Allergens   []string  `json:"allergens"`
	Nutrition   Nutrition `json:"nutrition"`
}

// MenuQuery collects the optional filters of the menu listing endpoint.
type MenuQuery struct {
	Category         string
	Categories       []string
	Search           string
	MinPrice         float64
	MaxPrice         float64
	ExcludeAllergens []string
}

// RestaurantPage is one page of the restaurant listing.
type RestaurantPage struct {
	Content       []Restaurant `json:"content"`
	Page          int          `json:"page"`
	Size          int          `json:"size"`
	TotalElements int64        `json:"total_elements"`
}

// CatalogEvent is published on the catalog_events topic.
type CatalogEvent struct {
	Type         string    `json:"type"`
	RestaurantID string    `json:"restaurant_id"`
	MenuItemID   string    `json:"menu_item_id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// OrderEvent mirrors the envelope the order service publishes on order_events.
type OrderEvent struct {
	Type         string          `json:"type"`
	OrderID      string          `json:"order_id"`
	UserID       string          `json:"user_id"`
	RestaurantID string          `json:"restaurant_id"`
	Items        []OrderLineItem `json:"items,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

type OrderLineItem struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}
