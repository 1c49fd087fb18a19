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

type BookingController struct {
	bookings repositories.BookingRepository
}

func NewBookingController(bookings repositories.BookingRepository) *BookingController {
	return &BookingController{bookings: bookings}
}

func (bc *BookingController) CreateBooking(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired(
		"place", req.Place,
		"checkIn", req.CheckIn,
		"checkOut", req.CheckOut,
		"name", req.Name,
		"phone", req.Phone,
	); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	placeID, err := primitive.ObjectIDFromHex(req.Place)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid place ID",
		})
	}

	booking := &models.Booking{
		Place:          placeID,
		User:           userID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		NumberOfGuests: req.NumberOfGuests,
		Name:           req.Name,
		Phone:          req.Phone,
		Price:          req.Price,
		CreatedAt:      time.Now(),
	}

	if err := bc.bookings.Insert(c.Request().Context(), booking); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create booking",
		})
	}

	return c.JSON(http.StatusOK, booking)
}

// ListBookings returns only the caller's bookings; no booking is ever
// visible to another account.
func (bc *BookingController) ListBookings(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	bookings, err := bc.bookings.FindByUser(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch bookings",
		})
	}

	return c.JSON(http.StatusOK, bookings)
}
