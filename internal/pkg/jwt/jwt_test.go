//go:build unit

package jwt_test

import (
	"strings"
	"testing"
	"time"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/pkg/clock"
	"campus-booking/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var member = session.Identity{UserID: "2021012345", DisplayName: "김하늘"}

func newService(clk clock.Clock) *jwt.Service {
	return jwt.NewService("test-secret", 2*time.Hour, clk)
}

func TestIssueAndParse(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc := newService(clk)

	token, err := svc.Issue(member)
	require.NoError(t, err)
	assert.NotEmpty(t, token.ID)
	assert.Equal(t, clk.Now().Add(2*time.Hour), token.ExpiresAt)

	t.Run("round trip before expiry", func(t *testing.T) {
		clk.Set(time.Date(2025, 3, 10, 10, 59, 0, 0, time.UTC))
		claims, err := svc.Parse(token.Value)
		require.NoError(t, err)
		assert.Equal(t, member, claims.Identity())
		assert.Equal(t, token.ID, claims.ID)
	})

	t.Run("expired after ttl", func(t *testing.T) {
		clk.Set(time.Date(2025, 3, 10, 11, 0, 1, 0, time.UTC))
		_, err := svc.Parse(token.Value)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}

func TestParseRejectsBadTokens(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	svc := newService(clk)
	token, err := svc.Issue(member)
	require.NoError(t, err)

	parts := strings.Split(token.Value, ".")
	require.Len(t, parts, 3)

	foreign, err := jwt.NewService("other-secret", time.Hour, clk).Issue(member)
	require.NoError(t, err)

	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, jwt.Claims{
		UserID: member.UserID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Hour)),
		},
	}).SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "tampered payload", token: parts[0] + "." + parts[1] + "x." + parts[2]},
		{name: "signed with another key", token: foreign.Value},
		{name: "alg none", token: unsigned},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Parse(tc.token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}

func TestIssueRequiresIdentity(t *testing.T) {
	svc := newService(clock.NewMockClock(time.Now()))
	_, err := svc.Issue(session.Anonymous)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
