package repositories

import (
	"context"
	"time"

	"github.com/Crish19/airbnb-clone-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaceRepository is the listing store used by the handlers.
type PlaceRepository interface {
	Insert(ctx context.Context, place *models.Place) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Place, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Place, error)
	FindAll(ctx context.Context) ([]models.Place, error)
	Update(ctx context.Context, place *models.Place) error
}

type mongoPlaceRepository struct {
	collection *mongo.Collection
}

func NewPlaceRepository(db *mongo.Database) PlaceRepository {
	return &mongoPlaceRepository{collection: db.Collection("places")}
}

func (r *mongoPlaceRepository) Insert(ctx context.Context, place *models.Place) error {
	if place.ID.IsZero() {
		place.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, place)
	return err
}

func (r *mongoPlaceRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Place, error) {
	var place models.Place
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&place)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *mongoPlaceRepository) FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Place, error) {
	return r.find(ctx, bson.M{"owner": owner})
}

func (r *mongoPlaceRepository) FindAll(ctx context.Context) ([]models.Place, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoPlaceRepository) find(ctx context.Context, filter bson.M) ([]models.Place, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	places := []models.Place{}
	for cursor.Next(ctx) {
		var place models.Place
		if err := cursor.Decode(&place); err != nil {
			continue
		}
		places = append(places, place)
	}
	return places, cursor.Err()
}

func (r *mongoPlaceRepository) Update(ctx context.Context, place *models.Place) error {
	updateDoc := bson.M{
		"title":       place.Title,
		"address":     place.Address,
		"photos":      place.Photos,
		"description": place.Description,
		"perks":       place.Perks,
		"extraInfo":   place.ExtraInfo,
		"checkIn":     place.CheckIn,
		"checkOut":    place.CheckOut,
		"maxGuests":   place.MaxGuests,
		"price":       place.Price,
		"updatedAt":   time.Now(),
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": place.ID}, bson.M{"$set": updateDoc})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
