package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID             primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Place          primitive.ObjectID `json:"place" bson:"place"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	CheckIn        string             `json:"checkIn" bson:"checkIn"`
	CheckOut       string             `json:"checkOut" bson:"checkOut"`
	NumberOfGuests int                `json:"numberOfGuests" bson:"numberOfGuests"`
	Name           string             `json:"name" bson:"name"`
	Phone          string             `json:"phone" bson:"phone"`
	Price          float64            `json:"price" bson:"price"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
}

type BookingRequest struct {
	Place          string  `json:"place"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	NumberOfGuests int     `json:"numberOfGuests"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Price          float64 `json:"price"`
}
