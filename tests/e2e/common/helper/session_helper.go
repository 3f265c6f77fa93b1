//go:build e2e

package helper

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/handler/dto/request"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/jwt"
	"campus-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SessionHelper mints session tokens the same way the running app does, so
// tests can act as members that never went through the login provider.
type SessionHelper struct {
	cfg     config.SessionConfig
	service *jwt.Service
}

func NewSessionHelper(cfg config.Config) (*SessionHelper, error) {
	loc, err := cfg.Server.Location()
	if err != nil {
		return nil, err
	}
	return &SessionHelper{
		cfg:     cfg.Session,
		service: jwt.NewService(cfg.Session.Secret, cfg.Session.TTL, clock.NewRealClock(loc)),
	}, nil
}

func (h *SessionHelper) TokenFor(t *testing.T, userID, displayName string) string {
	t.Helper()
	token, err := h.service.Issue(session.Identity{UserID: userID, DisplayName: displayName})
	require.NoError(t, err)
	return token.Value
}

// Members returns n distinct student identities with their tokens.
func (h *SessionHelper) Members(t *testing.T, n int) map[string]string {
	t.Helper()
	tokens := make(map[string]string, n)
	for i := range n {
		userID := fmt.Sprintf("2099%06d", i+1)
		tokens[userID] = h.TokenFor(t, userID, "Student "+userID)
	}
	return tokens
}

// Login goes through POST /api/auth/login and returns the issued session cookie.
func (h *SessionHelper) Login(t *testing.T, router *gin.Engine, loginID, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{LoginID: loginID, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := httptest.ExtractCookie(w, h.cfg.CookieName)
	require.NotNil(t, cookie, "session cookie not found")
	require.NotEmpty(t, cookie.Value)
	return cookie
}

// FutureDate is a campus date far enough ahead that every slot on it is still bookable.
func FutureDate(t *testing.T, cfg config.Config, days int) time.Time {
	t.Helper()
	loc, err := cfg.Server.Location()
	require.NoError(t, err)
	now := time.Now().In(loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, days)
}
