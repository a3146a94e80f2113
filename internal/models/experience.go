package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Geolocation is the canonical coordinate shape. Earlier data dumps also
// contained a "lat,lng" string form; only the object form is served.
type Geolocation struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Experience is a curated travel/activity item. Read-only from the client.
type Experience struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Type        string             `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Rating      float64            `bson:"rating" json:"rating"`
	Image       string             `bson:"image" json:"image"`
	Address     string             `bson:"address" json:"address"`
	Geolocation Geolocation        `bson:"geolocation" json:"geolocation"`
	GalleryID   primitive.ObjectID `bson:"gallery_id,omitempty" json:"gallery_id,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Gallery holds the photo set referenced by Experience.gallery_id.
type Gallery struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name   string             `bson:"name,omitempty" json:"name,omitempty"`
	Images []string           `bson:"images" json:"images"`
}
