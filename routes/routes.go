package routes

import (
	"net/http"

	"github.com/Crish19/airbnb-clone-backend/handlers"
	"github.com/Crish19/airbnb-clone-backend/middleware"
	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/labstack/echo/v4"
)

// Controllers bundles the handler dependencies for route registration.
type Controllers struct {
	Users    *handlers.UserController
	Places   *handlers.PlaceController
	Bookings *handlers.BookingController
	Uploads  *handlers.UploadController
}

func RegisterRoutes(e *echo.Echo, ctrl Controllers, sessions *utils.SessionManager, uploadsDir string) {
	auth := middleware.Auth(sessions)

	e.GET("/test", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "Test OK")
	})

	e.POST("/register", ctrl.Users.Register)
	e.POST("/login", ctrl.Users.Login)
	e.GET("/profile", ctrl.Users.Profile)
	e.POST("/logout", ctrl.Users.Logout)

	e.POST("/upload", ctrl.Uploads.Upload, auth)
	e.POST("/upload-by-link", ctrl.Uploads.UploadByLink, auth)
	e.Static("/uploads", uploadsDir)

	e.POST("/places", ctrl.Places.CreatePlace, auth)
	e.PUT("/places", ctrl.Places.UpdatePlace, auth)
	e.GET("/places", ctrl.Places.ListPlaces)
	e.GET("/places/:id", ctrl.Places.GetPlace)
	e.GET("/user-places", ctrl.Places.ListUserPlaces, auth)

	e.POST("/bookings", ctrl.Bookings.CreateBooking, auth)
	e.GET("/bookings", ctrl.Bookings.ListBookings, auth)
}
