package middleware

import (
	"log"
	"net/http"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

const sessionUserKey = "sessionUser"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Login required", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden)
)

// SessionReader loads the logged-in user from the request.
type SessionReader interface {
	Load(r *http.Request) (entities.SessionUser, error)
}

// RequireAuth aborts with 401 unless the request carries a session user.
func RequireAuth(sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Load(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if user.Role == r {
				c.Next()
				return
			}
		}
		log.Printf("[auth][middleware] forbidden email=%s role=%s path=%s", user.Email, user.Role, c.FullPath())
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

func CurrentUser(c *gin.Context) (entities.SessionUser, bool) {
	v, ok := c.Get(sessionUserKey)
	if !ok {
		return entities.SessionUser{}, false
	}
	user, ok := v.(entities.SessionUser)
	return user, ok
}

// SetCurrentUser is used by tests that exercise handlers without a cookie.
func SetCurrentUser(c *gin.Context, user entities.SessionUser) {
	c.Set(sessionUserKey, user)
}
