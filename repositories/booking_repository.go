package repositories

import (
	"context"

	"github.com/Crish19/airbnb-clone-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the booking store used by the handlers. Bookings are
// append-only: there is no update or delete in scope.
type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error)
}

type mongoBookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &mongoBookingRepository{collection: db.Collection("bookings")}
}

func (r *mongoBookingRepository) Insert(ctx context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, booking)
	return err
}

func (r *mongoBookingRepository) FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user": user})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, cursor.Err()
}
