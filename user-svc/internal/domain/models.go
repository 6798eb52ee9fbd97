package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Phone       string             `bson:"phone" json:"phone,omitempty"`
	Role        string             `bson:"role" json:"role"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	Addresses   []Address          `bson:"addresses" json:"addresses"`
	Preferences Preferences        `bson:"preferences" json:"preferences"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type Address struct {
	Label     string `bson:"label" json:"label"`
	Street    string `bson:"street" json:"street" validate:"required"`
	City      string `bson:"city" json:"city" validate:"required"`
	State     string `bson:"state" json:"state" validate:"required"`
	ZipCode   string `bson:"zip_code" json:"zip_code" validate:"required,zipcode"`
	Country   string `bson:"country" json:"country"`
	IsDefault bool   `bson:"is_default" json:"is_default"`
}

type Preferences struct {
	CuisinePreferences    []string `bson:"cuisine_preferences" json:"cuisine_preferences"`
	DietaryRestrictions   []string `bson:"dietary_restrictions" json:"dietary_restrictions"`
	PreferredDeliveryTime string   `bson:"preferred_delivery_time" json:"preferred_delivery_time,omitempty"`
	EmailNotifications    bool     `bson:"email_notifications" json:"email_notifications"`
	SMSNotifications      bool     `bson:"sms_notifications" json:"sms_notifications"`
	PushNotifications     bool     `bson:"push_notifications" json:"push_notifications"`
	Language              string   `bson:"language" json:"language"`
	Currency              string   `bson:"currency" json:"currency"`
}

// DefaultPreferences matches what a fresh registration starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		EmailNotifications: true,
		PushNotifications:  true,
		Language:           "en",
		Currency:           "USD",
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,phone"`
	Role     string `json:"role" validate:"omitempty,oneof=CUSTOMER RESTAURANT_OWNER ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ProfileUpdate carries a partial profile update. Nil fields stay untouched.
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Phone       *string      `json:"phone,omitempty" validate:"omitempty"`
	Addresses   []Address    `json:"addresses,omitempty" validate:"omitempty,dive"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
}
