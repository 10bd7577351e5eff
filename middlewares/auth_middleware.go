package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kajtekw/restaurant-manager/models"
	"github.com/kajtekw/restaurant-manager/utils"
	"gorm.io/gorm"
)

const userContextKey = "authUser"

var (
	errNoToken      = errors.New("not authorized, no token")
	errTokenInvalid = errors.New("not authorized, token invalid")
	errUserNotFound = errors.New("not authorized, user not found")
)

// resolveUser reads the session cookie, verifies the token and loads the
// matching user record. Stateless apart from the lookup.
func resolveUser(c *gin.Context, db *gorm.DB) (*models.User, error) {
	tokenString, err := c.Cookie(utils.SessionCookie)
	if err != nil || tokenString == "" {
		return nil, errNoToken
	}

	claims, err := utils.ParseToken(tokenString)
	if err != nil {
		return nil, errTokenInvalid
	}

	var user models.User
	if err := db.First(&user, claims.UserID).Error; err != nil {
		return nil, errUserNotFound
	}

	return &user, nil
}

// AuthMiddleware guards a route group: requests without a valid session
// cookie are rejected with 401 before reaching the handler.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolveUser(c, db)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// OptionalAuth attaches the user when the cookie resolves but lets the
// request through either way. Used by /auth/me, which reports
// unauthenticated instead of rejecting outright.
func OptionalAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, err := resolveUser(c, db); err == nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// CurrentUser returns the user attached by the auth gate. Handlers call
// this instead of poking at raw context keys.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
