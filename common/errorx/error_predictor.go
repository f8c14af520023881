package errorx

import "fmt"

const errPredPrefix = "PRED-ERR"

type errPredCode int

type errPred struct {
	code errPredCode
}

func (err errPred) Error() string {
	return fmt.Sprintf("%d", err.code)
}

func (err errPred) Code() string {
	return errPredPrefix + "-" + fmt.Sprintf("%d", err.code)
}

func (err errPred) CustomError() CustomError {
	return CustomError{
		Prefix: errPredPrefix,
		Code:   int(err.code),
	}
}

const (
	errModelUnavailable = iota
	errInvalidPersona
	errInference
)

var (
	// Description: The predictor could not load its models at startup, every inference request is refused until restart.
	//
	// en-US: Model is not available.
	ErrModelUnavailable = errPred{code: errModelUnavailable}

	// Description: The persona is not one of lawyer, doctor, writer or teacher. Raised by the predictor itself, so it is
	// reported as a server fault and not as a bad request.
	//
	// en-US: Invalid persona specified.
	ErrInvalidPersona = errPred{code: errInvalidPersona}

	// Description: The inference backend failed or returned an unusable response.
	//
	// en-US: An internal server error occurred.
	ErrInference = errPred{code: errInference}
)

var errPredMap = map[errPredCode]errPred{
	errModelUnavailable: ErrModelUnavailable,
	errInvalidPersona:   ErrInvalidPersona,
	errInference:        ErrInference,
}

func ModelUnavailable(err error, ext context) error {
	customErr := ErrModelUnavailable.CustomError()
	customErr.Context = ext
	if err == nil {
		return customErr
	}
	return fmt.Errorf("%w, %w", err, customErr)
}

func InvalidPersona(persona string) error {
	customErr := ErrInvalidPersona.CustomError()
	customErr.Context = Ctx().Set("persona", persona)
	return fmt.Errorf("invalid persona specified: %q, %w", persona, customErr)
}

func Inference(err error, ext context) error {
	customErr := ErrInference.CustomError()
	customErr.Context = ext
	return fmt.Errorf("%w, %w", err, customErr)
}
