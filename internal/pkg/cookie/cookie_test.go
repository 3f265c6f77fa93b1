//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		sameSite   string
		production bool
		expectSS   http.SameSite
	}{
		{name: "development lax", sameSite: "Lax", production: false, expectSS: http.SameSiteLaxMode},
		{name: "production strict", sameSite: "Strict", production: true, expectSS: http.SameSiteStrictMode},
		{name: "none is not allowed", sameSite: "None", production: true, expectSS: http.SameSiteLaxMode},
		{name: "lowercase strict", sameSite: "strict", production: true, expectSS: http.SameSiteStrictMode},
		{name: "padded mixed case strict", sameSite: " STRICT ", production: false, expectSS: http.SameSiteStrictMode},
		{name: "uppercase none is not allowed", sameSite: "NONE", production: true, expectSS: http.SameSiteLaxMode},
		{name: "unknown falls back to lax", sameSite: "sometimes", production: false, expectSS: http.SameSiteLaxMode},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := cookie.NewOptions(config.SessionConfig{CookieName: "session_token", SameSite: tc.sameSite}, tc.production)

			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)

			cookie.SetSessionCookie(c, opts, "signed-token", 2*time.Hour)

			cookies := rec.Result().Cookies()
			require.Len(t, cookies, 1)
			got := cookies[0]
			assert.Equal(t, "session_token", got.Name)
			assert.Equal(t, "signed-token", got.Value)
			assert.Equal(t, "/", got.Path)
			assert.Equal(t, 7200, got.MaxAge)
			assert.True(t, got.HttpOnly)
			assert.Equal(t, tc.production, got.Secure)
			assert.Equal(t, tc.expectSS, got.SameSite)
		})
	}
}

func TestGetSessionToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	opts := cookie.Options{Name: "session_token"}

	t.Run("cookie wins over header", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
		c.Request.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-cookie", cookie.GetSessionToken(c, opts))
	})

	t.Run("bearer header fallback", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer from-header")
		assert.Equal(t, "from-header", cookie.GetSessionToken(c, opts))
	})

	t.Run("nothing present", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, cookie.GetSessionToken(c, opts))
	})
}
