package httpbase

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"opencsg.com/persona-predictor/common/errorx"
	"opencsg.com/persona-predictor/common/types"
)

// OK responds the client with data rendered as plain JSON, without an envelope.
//
// Example:
//
//	OK(c, types.StatusResponse{Status: "API is running"})
func OK(c *gin.Context, data interface{}) {
	c.PureJSON(http.StatusOK, data)
}

// BadRequest responds with a JSON-formatted error message.
//
// Example:
//
//	BadRequest(c, "Missing 'prompt' or 'persona'.")
func BadRequest(c *gin.Context, errMsg string) {
	c.PureJSON(http.StatusBadRequest, types.ErrorResponse{
		Error: errMsg,
	})
}

// ServerError logs err with its error code and responds with a message safe for clients.
//
// Example:
//
//	ServerError(c, errorx.Inference(err, nil))
func ServerError(c *gin.Context, err error) {
	status, msg := statusAndMessage(err)
	attrs := []any{slog.Any("error", err), slog.String("url", c.Request.URL.Path)}
	if customErr, ok := errorx.GetFirstCustomError(err); ok {
		if detail, ok := customErr.(errorx.CustomError); ok {
			attrs = append(attrs, slog.String("error_code", detail.Detail()))
		}
	}
	slog.ErrorContext(c.Request.Context(), "request failed", attrs...)
	c.PureJSON(status, types.ErrorResponse{
		Error: msg,
	})
}

// ModelUnavailable responds that the predictor could not be loaded.
func ModelUnavailable(c *gin.Context) {
	c.PureJSON(http.StatusInternalServerError, types.ErrorResponse{
		Error: MsgModelUnavailable,
	})
}
