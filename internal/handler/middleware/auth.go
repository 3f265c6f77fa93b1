package middleware

import (
	"net/http"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/pkg/cookie"
	"campus-booking/internal/pkg/errs"
	"campus-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxUserIDKey = "user_id"

var errLoginRequired = errs.Reject(errs.KindUnauthenticated, "login required")

type AuthMiddleware struct {
	verifier   usecase.SessionVerifier
	cookieOpts cookie.Options
}

func NewAuthMiddleware(verifier usecase.SessionVerifier, cookieOpts cookie.Options) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   verifier,
		cookieOpts: cookieOpts,
	}
}

// Authenticate resolves the session of every request. Requests without a valid session
// continue as anonymous.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetSessionToken(c, m.cookieOpts)
		if token == "" {
			c.Next()
			return
		}

		identity := m.verifier.Verify(c.Request.Context(), token)
		if identity.Authenticated() {
			c.Request = c.Request.WithContext(session.WithIdentity(c.Request.Context(), identity))
			c.Set(ctxUserIDKey, identity.UserID)
		}
		c.Next()
	}
}

// RequireSession must run after Authenticate.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).Authenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errLoginRequired, errs.Reason(errLoginRequired), nil)
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) session.Identity {
	return session.FromContext(c.Request.Context())
}

func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok
}
