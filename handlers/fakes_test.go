package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Crish19/airbnb-clone-backend/handlers"
	"github.com/Crish19/airbnb-clone-backend/models"
	"github.com/Crish19/airbnb-clone-backend/repositories"
	"github.com/Crish19/airbnb-clone-backend/routes"
	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They return copies so handler-side mutation
// only reaches the store through Insert/Update, like the Mongo versions.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			found := *u
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

type fakePlaceRepo struct {
	places []*models.Place
}

func (r *fakePlaceRepo) Insert(_ context.Context, place *models.Place) error {
	if place.ID.IsZero() {
		place.ID = primitive.NewObjectID()
	}
	stored := *place
	r.places = append(r.places, &stored)
	return nil
}

func (r *fakePlaceRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Place, error) {
	for _, p := range r.places {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakePlaceRepo) FindByOwner(_ context.Context, owner primitive.ObjectID) ([]models.Place, error) {
	result := []models.Place{}
	for _, p := range r.places {
		if p.Owner == owner {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (r *fakePlaceRepo) FindAll(_ context.Context) ([]models.Place, error) {
	result := []models.Place{}
	for _, p := range r.places {
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakePlaceRepo) Update(_ context.Context, place *models.Place) error {
	for _, p := range r.places {
		if p.ID == place.ID {
			*p = *place
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeBookingRepo struct {
	bookings []*models.Booking
}

func (r *fakeBookingRepo) Insert(_ context.Context, booking *models.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	stored := *booking
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *fakeBookingRepo) FindByUser(_ context.Context, user primitive.ObjectID) ([]models.Booking, error) {
	result := []models.Booking{}
	for _, b := range r.bookings {
		if b.User == user {
			result = append(result, *b)
		}
	}
	return result, nil
}

// testApp wires the controllers through the real routes and middleware so
// the cookie and authorization paths are exercised end to end.
type testApp struct {
	e        *echo.Echo
	users    *fakeUserRepo
	places   *fakePlaceRepo
	bookings *fakeBookingRepo
	sessions *utils.SessionManager
	uploads  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	users := &fakeUserRepo{}
	places := &fakePlaceRepo{}
	bookings := &fakeBookingRepo{}
	sessions := utils.NewSessionManager("test-secret", "token", time.Hour, false)
	dir := t.TempDir()

	ctrl := routes.Controllers{
		Users:    handlers.NewUserController(users, sessions),
		Places:   handlers.NewPlaceController(places, nil),
		Bookings: handlers.NewBookingController(bookings),
		Uploads:  handlers.NewUploadController(dir),
	}

	e := echo.New()
	routes.RegisterRoutes(e, ctrl, sessions, dir)

	return &testApp{
		e:        e,
		users:    users,
		places:   places,
		bookings: bookings,
		sessions: sessions,
		uploads:  dir,
	}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func (a *testApp) seedUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, Password: hash, CreatedAt: time.Now()}
	require.NoError(t, a.users.Insert(context.Background(), user))
	return user
}

func (a *testApp) seedPlace(t *testing.T, owner primitive.ObjectID, title string) *models.Place {
	t.Helper()

	place := &models.Place{
		Owner:     owner,
		Title:     title,
		Address:   "1 Main St",
		Photos:    []string{},
		Perks:     []string{},
		CheckIn:   14,
		CheckOut:  11,
		MaxGuests: 2,
		Price:     99,
	}
	require.NoError(t, a.places.Insert(context.Background(), place))
	return place
}

func (a *testApp) sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()

	token, err := a.sessions.Issue(user.ID, user.Email)
	require.NoError(t, err)
	return &http.Cookie{Name: "token", Value: token}
}
