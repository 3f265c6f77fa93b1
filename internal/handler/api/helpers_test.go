//go:build unit

package api_test

import (
	"context"

	"campus-booking/internal/domain/session"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/config"
	"campus-booking/internal/pkg/cookie"
	usecasemock "campus-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const (
	memberToken = "member-token"
	adminToken  = "admin-token"
)

var (
	member = session.Identity{UserID: "2021000001", DisplayName: "김하나"}
	admin  = session.Identity{UserID: "admin-1", DisplayName: "관리자"}

	cookieOpts = cookie.NewOptions(config.NewTestConfig().Session, false)
)

// newTestEngine returns an engine that resolves memberToken and adminToken as sessions.
func newTestEngine(ctrl *gomock.Controller) (*gin.Engine, *middleware.AuthMiddleware) {
	gin.SetMode(gin.TestMode)

	verifier := usecasemock.NewMockSessionVerifier(ctrl)
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, token string) session.Identity {
			switch token {
			case memberToken:
				return member
			case adminToken:
				return admin
			default:
				return session.Anonymous
			}
		}).AnyTimes()

	authMiddleware := middleware.NewAuthMiddleware(verifier, cookieOpts)
	engine := gin.New()
	engine.Use(middleware.ErrorHandler())
	engine.Use(authMiddleware.Authenticate())
	return engine, authMiddleware
}
