package utils

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionClaims is the identity payload carried by the session cookie.
type SessionClaims struct {
	UserID primitive.ObjectID `json:"id"`
	Email  string             `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies the signed session tokens delivered to
// clients in a cookie. The signing secret is injected at construction rather
// than read from process-wide state.
type SessionManager struct {
	secret       []byte
	cookieName   string
	expiry       time.Duration
	secureCookie bool
}

func NewSessionManager(secret, cookieName string, expiry time.Duration, secureCookie bool) *SessionManager {
	return &SessionManager{
		secret:       []byte(secret),
		cookieName:   cookieName,
		expiry:       expiry,
		secureCookie: secureCookie,
	}
}

func (sm *SessionManager) CookieName() string {
	return sm.cookieName
}

// Issue signs a token for the given account identity.
func (sm *SessionManager) Issue(userID primitive.ObjectID, email string) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sm.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(sm.secret)
}

// Verify recovers the identity from a token. Malformed, tampered and expired
// tokens all come back as errors.
func (sm *SessionManager) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return sm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// Cookie wraps a token for delivery to the browser. SameSite=None because the
// front end runs on a different origin and sends credentialed requests.
func (sm *SessionManager) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sm.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(sm.expiry.Seconds()),
		HttpOnly: true,
		Secure:   sm.secureCookie,
		SameSite: http.SameSiteNoneMode,
	}
}

// ClearCookie instructs the client to discard the session cookie.
func (sm *SessionManager) ClearCookie() *http.Cookie {
	cookie := sm.Cookie("")
	cookie.MaxAge = -1
	return cookie
}
