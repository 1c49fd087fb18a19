package handlers

import (
	"net/http"
	"time"

	"github.com/Crish19/airbnb-clone-backend/models"
	"github.com/Crish19/airbnb-clone-backend/repositories"
	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	placesCacheKey = "places:all"
	placeCacheTTL  = 5 * time.Minute
)

func placeCacheKey(id primitive.ObjectID) string {
	return "places:" + id.Hex()
}

type PlaceController struct {
	places repositories.PlaceRepository
	cache  *utils.Cache
}

func NewPlaceController(places repositories.PlaceRepository, cache *utils.Cache) *PlaceController {
	return &PlaceController{places: places, cache: cache}
}

func (pc *PlaceController) CreatePlace(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.PlaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired("title", req.Title, "address", req.Address); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	now := time.Now()
	place := &models.Place{
		Owner:       userID,
		Title:       req.Title,
		Address:     req.Address,
		Photos:      req.AddedPhotos,
		Description: req.Description,
		Perks:       req.Perks,
		ExtraInfo:   req.ExtraInfo,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		MaxGuests:   req.MaxGuests,
		Price:       req.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx := c.Request().Context()
	if err := pc.places.Insert(ctx, place); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create place",
		})
	}

	pc.cache.Delete(ctx, placesCacheKey)

	return c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) UpdatePlace(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.PlaceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired("id", req.ID, "title", req.Title, "address", req.Address); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	placeID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid place ID",
		})
	}

	ctx := c.Request().Context()

	place, err := pc.places.FindByID(ctx, placeID)
	if err == repositories.ErrNotFound {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Place not found",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch place",
		})
	}

	if place.Owner != userID {
		return c.JSON(http.StatusForbidden, map[string]string{
			"error": "You are not authorized to update this place",
		})
	}

	place.Title = req.Title
	place.Address = req.Address
	place.Photos = req.AddedPhotos
	place.Description = req.Description
	place.Perks = req.Perks
	place.ExtraInfo = req.ExtraInfo
	place.CheckIn = req.CheckIn
	place.CheckOut = req.CheckOut
	place.MaxGuests = req.MaxGuests
	place.Price = req.Price
	place.UpdatedAt = time.Now()

	if err := pc.places.Update(ctx, place); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to update place",
		})
	}

	pc.cache.Delete(ctx, placesCacheKey, placeCacheKey(placeID))

	return c.JSON(http.StatusOK, "ok")
}

func (pc *PlaceController) GetPlace(c echo.Context) error {
	placeID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid place ID",
		})
	}

	ctx := c.Request().Context()

	var cached models.Place
	if ok, err := pc.cache.Get(ctx, placeCacheKey(placeID), &cached); err == nil && ok {
		return c.JSON(http.StatusOK, cached)
	}

	place, err := pc.places.FindByID(ctx, placeID)
	if err == repositories.ErrNotFound {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch place",
		})
	}

	pc.cache.Set(ctx, placeCacheKey(placeID), place, placeCacheTTL)

	return c.JSON(http.StatusOK, place)
}

func (pc *PlaceController) ListPlaces(c echo.Context) error {
	ctx := c.Request().Context()

	var cached []models.Place
	if ok, err := pc.cache.Get(ctx, placesCacheKey, &cached); err == nil && ok {
		return c.JSON(http.StatusOK, cached)
	}

	places, err := pc.places.FindAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch places",
		})
	}

	pc.cache.Set(ctx, placesCacheKey, places, placeCacheTTL)

	return c.JSON(http.StatusOK, places)
}

func (pc *PlaceController) ListUserPlaces(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	places, err := pc.places.FindByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch places",
		})
	}

	return c.JSON(http.StatusOK, places)
}
