package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Err is the uniform failure envelope: {"success": false, "error": ...}.
// The message is surfaced verbatim.
type Err struct {
	StatusCode int    `json:"-"`
	Success    bool   `json:"success"`
	Message    string `json:"error"`
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

func ErrUnauthorized(message string) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Message:    message,
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
	}
}

// RenderErr writes the envelope and aborts the chain. Server-side
// failures are logged; the process keeps serving regardless.
func RenderErr(ctx *gin.Context, err *Err) {
	if err.StatusCode >= http.StatusInternalServerError {
		zap.L().Error(err.Message,
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
		)
	}

	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
