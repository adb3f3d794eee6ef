package middleware

import (
	"net/http"
	"strings"

	"github.com/dukalink/dukalink-escrow-service/internal/domain"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

type authClaims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Auth verifies bearer tokens issued by the identity service and puts the
// resulting actor on the request context.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

func (a *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		}

		c.Set(actorKey, domain.Actor{
			ID:   claims.Subject,
			Role: domain.Role(claims.Role),
			Name: claims.Name,
		})
		return next(c)
	}
}

// RequireRole gates a route group on the actor's role. Mount after
// RequireAuth.
func (a *Auth) RequireRole(role domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ActorFrom(c).Role != role {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
			}
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor, or a zero actor on public
// routes.
func ActorFrom(c echo.Context) domain.Actor {
	actor, _ := c.Get(actorKey).(domain.Actor)
	return actor
}
