package httperr

import (
	"log/slog"
	"net/http"

	"campus-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Kind    string `json:"kind,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Kind = string(kindOfStatus(status))
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort classifies err and answers with the status of its kind. Rejections expose their
// reason, anything else is reported as an internal error.
func Abort(c *gin.Context, err error) {
	kind := errs.KindOf(err)
	status := StatusOf(kind)

	msg := errs.Reason(err)
	if kind == errs.KindInternal {
		msg = internalMessage
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
	} else {
		if msg == "" {
			msg = http.StatusText(status)
		}
		slog.WarnContext(c.Request.Context(), "request rejected",
			"path", c.FullPath(),
			"kind", string(kind),
			"reason", msg)
	}

	AbortWithError(c, status, err, msg, nil)
}

func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindUnauthenticated:
		return http.StatusUnauthorized
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflict:
		return http.StatusConflict
	case errs.KindQuotaExceeded:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func kindOfStatus(status int) errs.Kind {
	switch status {
	case http.StatusUnauthorized:
		return errs.KindUnauthenticated
	case http.StatusForbidden:
		return errs.KindForbidden
	case http.StatusBadRequest:
		return errs.KindInvalidInput
	case http.StatusNotFound:
		return errs.KindNotFound
	case http.StatusConflict:
		return errs.KindConflict
	case http.StatusUnprocessableEntity:
		return errs.KindQuotaExceeded
	default:
		return errs.KindInternal
	}
}
