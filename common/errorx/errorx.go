package errorx

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var errorCodeRegex = regexp.MustCompile(`^([A-Z]+-ERR)-(\d+)$`)

func IsValidErrorCode(code string) bool {
	return errorCodeRegex.MatchString(code)
}

// ParseErrorCode parses an error code string of format "PREFIX-ERR-NUMBER"
// (e.g. "REQ-ERR-1", "PRED-ERR-2") back into a CustomError.
// Unparsable codes yield the unknown error.
func ParseErrorCode(errorCode string) CustomError {
	errUnknown := CustomError{
		Prefix: errUnknownPrefix,
		Code:   0,
	}

	matches := errorCodeRegex.FindStringSubmatch(errorCode)
	if len(matches) != 3 {
		return errUnknown
	}

	codeNum, err := strconv.Atoi(matches[2])
	if err != nil {
		return errUnknown
	}

	return CustomError{
		Prefix: matches[1],
		Code:   codeNum,
	}
}

type CoreError interface {
	Error() string
	Code() string
	CustomError() CustomError
}

// CustomError is the standard coded error carried through the service.
// Context holds request details that are logged but never sent to clients.
type CustomError struct {
	Prefix  string  `json:"prefix"`
	Code    int     `json:"code"`
	Context context `json:"context,omitempty"`
}

func (err CustomError) Error() string {
	return err.Prefix + "-" + fmt.Sprintf("%d", err.Code)
}

func (err CustomError) Detail() string {
	errorMsg := err.Error()
	if len(err.Context) > 0 {
		keys := make([]string, 0, len(err.Context))
		for key := range err.Context {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		auxParts := make([]string, 0, len(keys))
		for _, key := range keys {
			auxParts = append(auxParts, fmt.Sprintf("%s:%v", key, err.Context[key]))
		}
		errorMsg += " [" + strings.Join(auxParts, ", ") + "]"
	}

	return errorMsg
}

// used for errors.Is to check error type
func (err CustomError) Unwrap() error {
	switch err.Prefix {
	case errReqPrefix:
		if e, ok := errReqMap[errReqCode(err.Code)]; ok {
			return e
		}
	case errPredPrefix:
		if e, ok := errPredMap[errPredCode(err.Code)]; ok {
			return e
		}
	}
	return ErrUnknown
}
