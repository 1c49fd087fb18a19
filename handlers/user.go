package handlers

import (
	"net/http"
	"time"

	"github.com/Crish19/airbnb-clone-backend/models"
	"github.com/Crish19/airbnb-clone-backend/repositories"
	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	users    repositories.UserRepository
	sessions *utils.SessionManager
}

func NewUserController(users repositories.UserRepository, sessions *utils.SessionManager) *UserController {
	return &UserController{users: users, sessions: sessions}
}

func (uc *UserController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired("name", req.Name, "email", req.Email, "password", req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	ctx := c.Request().Context()

	_, err := uc.users.FindByEmail(ctx, req.Email)
	if err == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Email already exists",
		})
	}
	if err != repositories.ErrNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create user",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to hash password",
		})
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
	}
	if err := uc.users.Insert(ctx, user); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to create user",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Registration successful",
	})
}

func (uc *UserController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if msg := utils.ValidateRequired("email", req.Email, "password", req.Password); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	ctx := c.Request().Context()

	user, err := uc.users.FindByEmail(ctx, req.Email)
	if err == repositories.ErrNotFound {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch user",
		})
	}

	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Invalid email or password",
		})
	}

	token, err := uc.sessions.Issue(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate token",
		})
	}

	c.SetCookie(uc.sessions.Cookie(token))

	return c.JSON(http.StatusOK, user.Public())
}

// Profile verifies the session itself instead of going through the auth
// middleware: a request without a cookie is anonymous, not unauthorized.
func (uc *UserController) Profile(c echo.Context) error {
	cookie, err := c.Cookie(uc.sessions.CookieName())
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusOK, nil)
	}

	claims, err := uc.sessions.Verify(cookie.Value)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"error": "Unauthorized",
		})
	}

	user, err := uc.users.FindByID(c.Request().Context(), claims.UserID)
	if err == repositories.ErrNotFound {
		return c.JSON(http.StatusOK, nil)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch user",
		})
	}

	return c.JSON(http.StatusOK, user.Public())
}

func (uc *UserController) Logout(c echo.Context) error {
	c.SetCookie(uc.sessions.ClearCookie())
	return c.JSON(http.StatusOK, true)
}
