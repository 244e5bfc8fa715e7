package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/dto"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/session"
)

// SessionStore restores the client's session store from its cookie and
// makes it available to the rest of the chain.
func SessionStore(auth session.Authenticator, latency time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.NewStore(auth, session.NewGinPersister(sessions.Default(c)), latency)
		c.Set(constants.ContextKeySession, store)

		if user, ok := store.CurrentUser(); ok {
			c.Set(constants.ContextKeyUserID, user.ID)
		}
		c.Next()
	}
}

// RequireAuth checks if the user is authenticated via session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		store, ok := GetSessionStore(c)
		if !ok || !store.IsAuthenticated() {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetSessionStore retrieves the session store set by SessionStore
func GetSessionStore(c *gin.Context) (*session.Store, bool) {
	value, exists := c.Get(constants.ContextKeySession)
	if !exists {
		return nil, false
	}
	store, ok := value.(*session.Store)
	return store, ok
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetCurrentUser returns the session's user record
func GetCurrentUser(c *gin.Context) (dto.UserDTO, bool) {
	store, ok := GetSessionStore(c)
	if !ok {
		return dto.UserDTO{}, false
	}
	return store.CurrentUser()
}
