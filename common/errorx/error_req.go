package errorx

import (
	"errors"
	"fmt"
)

const errReqPrefix = "REQ-ERR"

type errReqCode int

type errReq struct {
	code errReqCode
}

func (err errReq) Error() string {
	return fmt.Sprintf("%d", err.code)
}

func (err errReq) Code() string {
	return errReqPrefix + "-" + fmt.Sprintf("%d", err.code)
}

func (err errReq) CustomError() CustomError {
	return CustomError{
		Prefix: errReqPrefix,
		Code:   int(err.code),
	}
}

const (
	errBadRequest = iota

	errReqBodyFormat
	errReqParamMissing
	errReqParamInvalid
)

var (
	// --- REQ-ERR-xxx: Request related errors, always the caller's fault ---
	ErrBadRequest = errReq{code: errBadRequest}

	// Request body is not valid JSON
	ErrReqBodyFormat = errReq{code: errReqBodyFormat}
	// A required field is missing or empty
	ErrReqParamMissing = errReq{code: errReqParamMissing}
	// A field is present but out of range
	ErrReqParamInvalid = errReq{code: errReqParamInvalid}
)

var errReqMap = map[errReqCode]errReq{
	errBadRequest:      ErrBadRequest,
	errReqBodyFormat:   ErrReqBodyFormat,
	errReqParamMissing: ErrReqParamMissing,
	errReqParamInvalid: ErrReqParamInvalid,
}

func ReqBodyFormat(err error, ext context) error {
	customErr := ErrReqBodyFormat.CustomError()
	customErr.Context = ext
	return fmt.Errorf("%w, %w", err, customErr)
}

func ReqParamMissing(msg string, ext context) error {
	customErr := ErrReqParamMissing.CustomError()
	customErr.Context = ext
	return fmt.Errorf("%s, %w", msg, customErr)
}

func ReqParamInvalid(err error, ext context) error {
	customErr := ErrReqParamInvalid.CustomError()
	customErr.Context = ext
	return fmt.Errorf("%w, %w", err, customErr)
}

// IsValidationError reports whether err is caused by the caller's request.
func IsValidationError(err error) bool {
	for _, e := range errReqMap {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
