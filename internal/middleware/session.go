package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"workboard/internal/constants"
	apierrors "workboard/internal/errors"
	"workboard/internal/models"
	"workboard/internal/store"
)

// RequireActor resolves the acting user from the session cookie and the
// store's user directory, and makes it available to handlers. Mutating store
// operations take the actor explicitly, so the "no current user"
// precondition is checked here, once, at the edge.
func RequireActor(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(constants.SessionKeyUserID).(string)
		if !ok || userID == "" {
			apierrors.Unauthorized(c, "No active session")
			c.Abort()
			return
		}

		actor, found := s.UserByID(userID)
		if !found {
			// Session identity may predate the directory (the store
			// does not validate SetCurrentUser); fall back to it.
			if current, ok := s.CurrentUser(); ok && current.ID == userID {
				actor = current
				found = true
			}
		}
		if !found {
			apierrors.Unauthorized(c, "Unknown session user")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyActor, actor)
		c.Next()
	}
}

// GetActor retrieves the acting user placed in the context by RequireActor.
func GetActor(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return nil, false
	}
	actor, ok := value.(models.User)
	if !ok {
		return nil, false
	}
	return &actor, true
}
