package cookie

import (
	"net/http"
	"strings"
	"time"

	"campus-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// Options describes the session cookie. It is always HttpOnly and scoped to "/".
type Options struct {
	Name     string
	Domain   string
	SameSite http.SameSite
	Secure   bool
}

func NewOptions(cfg config.SessionConfig, production bool) Options {
	return Options{
		Name:     cfg.CookieName,
		Domain:   cfg.Domain,
		SameSite: getSameSite(cfg.SameSite),
		Secure:   production,
	}
}

func SetSessionCookie(c *gin.Context, opts Options, token string, ttl time.Duration) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(
		opts.Name,
		token,
		int(ttl.Seconds()),
		"/",
		opts.Domain,
		opts.Secure,
		true, // HttpOnly
	)
}

func ClearSessionCookie(c *gin.Context, opts Options) {
	c.SetSameSite(opts.SameSite)
	c.SetCookie(
		opts.Name,
		"",
		-1,
		"/",
		opts.Domain,
		opts.Secure,
		true,
	)
}

// GetSessionToken reads the session cookie, falling back to a bearer header for API clients.
func GetSessionToken(c *gin.Context, opts Options) string {
	if token, err := c.Cookie(opts.Name); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// getSameSite accepts the attribute in any case. None is never honoured.
func getSameSite(sameSite string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(sameSite)) {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	default:
		return http.SameSiteLaxMode
	}
}
