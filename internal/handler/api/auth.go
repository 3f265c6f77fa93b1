package api

import (
	"net/http"
	"time"

	reqdto "campus-booking/internal/handler/dto/request"
	resdto "campus-booking/internal/handler/dto/response"
	"campus-booking/internal/handler/httperr"
	"campus-booking/internal/handler/middleware"
	"campus-booking/internal/pkg/cookie"
	"campus-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	cookieOpts cookie.Options
	sessionTTL time.Duration
}

func NewAuthHandler(cmds commands.AuthCommands, cookieOpts cookie.Options, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		cookieOpts: cookieOpts,
		sessionTTL: sessionTTL,
	}
}

// @Summary Member login
// @Description Authenticate with the library account and receive a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.LoginID, req.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieOpts, result.Token.Value, h.sessionTTL)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Current session
// @Description Report the identity behind the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromIdentity(middleware.GetIdentity(c)))
}

// @Summary Extend session
// @Description Re-issue the current session with a fresh lifetime
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/extend [post]
func (h *AuthHandler) Extend(c *gin.Context) {
	result, err := h.cmds.Extend(c.Request.Context(), cookie.GetSessionToken(c, h.cookieOpts))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.SetSessionCookie(c, h.cookieOpts, result.Token.Value, h.sessionTTL)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Logout
// @Description Invalidate the current session
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.cmds.Logout(c.Request.Context(), cookie.GetSessionToken(c, h.cookieOpts)); err != nil {
		httperr.Abort(c, err)
		return
	}

	cookie.ClearSessionCookie(c, h.cookieOpts)
	c.Status(http.StatusNoContent)
}
