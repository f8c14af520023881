package httpbase

import (
	"errors"
	"net/http"

	"opencsg.com/persona-predictor/common/errorx"
)

const (
	MsgModelUnavailable = "Model is not available."
	MsgInternalError    = "An internal server error occurred."
	MsgInvalidJSON      = "Invalid JSON body."
)

// statusAndMessage decides what the client sees for err.
// Details of inference failures stay in the server log.
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, errorx.ErrModelUnavailable):
		return http.StatusInternalServerError, MsgModelUnavailable
	case errors.Is(err, errorx.ErrReqBodyFormat):
		return http.StatusBadRequest, MsgInvalidJSON
	default:
		return http.StatusInternalServerError, MsgInternalError
	}
}
