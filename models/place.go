package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Place struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	Title       string             `json:"title" bson:"title"`
	Address     string             `json:"address" bson:"address"`
	Photos      []string           `json:"photos" bson:"photos"`
	Description string             `json:"description" bson:"description"`
	Perks       []string           `json:"perks" bson:"perks"`
	ExtraInfo   string             `json:"extraInfo" bson:"extraInfo"`
	CheckIn     int                `json:"checkIn" bson:"checkIn"`
	CheckOut    int                `json:"checkOut" bson:"checkOut"`
	MaxGuests   int                `json:"maxGuests" bson:"maxGuests"`
	Price       float64            `json:"price" bson:"price"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// PlaceRequest is the body of POST /places and PUT /places. The client sends
// photo file names under "addedPhotos"; ID is only set on update.
type PlaceRequest struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	AddedPhotos []string `json:"addedPhotos"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	ExtraInfo   string   `json:"extraInfo"`
	CheckIn     int      `json:"checkIn"`
	CheckOut    int      `json:"checkOut"`
	MaxGuests   int      `json:"maxGuests"`
	Price       float64  `json:"price"`
}
