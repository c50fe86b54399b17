package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"zeros.dev/launchpad/internal/entity"
)

// CookieName carries the signed session token. The cookie is httpOnly and
// holds the user record minus the password, encoded as JWT claims.
const CookieName = "current_user"

type Claims struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	Avatar string      `json:"avatar"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens and manages the session cookie.
type Manager struct {
	secret string
	ttl    time.Duration
	secure bool
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{secret: secret, ttl: ttl, secure: secure}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue mints a signed token for the user.
func (m *Manager) Issue(user *entity.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secret))
}

// Parse verifies the token and reconstructs the acting user. The password
// never travels in the token.
func (m *Manager) Parse(tokenString string) (*entity.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid token subject")
	}

	return &entity.User{
		ID:     id,
		Name:   claims.Name,
		Email:  claims.Email,
		Role:   claims.Role,
		Avatar: claims.Avatar,
	}, nil
}

// SetCookie attaches the session cookie to the response.
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// TokenFromRequest extracts the session token from the cookie, falling back
// to a bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}
