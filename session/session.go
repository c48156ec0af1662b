// Package session guards access to protected handlers. The session is a
// signed JWT held in an HttpOnly cookie, carrying the authenticated user's
// id and username; the server keeps no session state of its own.
package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"cartera-web/models"
)

const cookieName = "cartera_session"

// Claims is the payload of the session cookie.
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret), ttl: 24 * time.Hour}
}

// Establish marks the session as authenticated for user by setting a signed
// cookie on the response.
func (m *Manager) Establish(c *gin.Context, user models.Usuario) error {
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Current returns the session claims, or false when the request carries no
// valid session cookie.
func (m *Manager) Current(c *gin.Context) (*Claims, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return nil, false
	}
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}

// Clear removes the session state (logout).
func (m *Manager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}
