package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cartera-web/session"
)

// ContextClaims is the gin context key under which RequireAuth stores the
// session claims for the handler.
const ContextClaims = "session_claims"

// RequireAuth is the single access-control mechanism: requests without a
// valid session are redirected to the login form before the handler or any
// store call runs.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := sessions.Current(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextClaims, claims)
		c.Next()
	}
}
