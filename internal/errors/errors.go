package errors

import "fmt"

// AppError is an application-specific error type
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// wraps an error with a code and message
func Wrap(err error, code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// CodeOf walks the error chain and returns the code of the first AppError.
// Returns CodeInternal when the chain has none.
func CodeOf(err error) string {
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			return appErr.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return CodeInternal
}

// Error code constants
const (
	CodeInternal   = "INTERNAL_ERROR"
	CodeInvalidArg = "INVALID_ARGUMENT"

	CodeInvalidURL = "INVALID_URL"          // URL matches no recognized YouTube shape
	CodeNoCaptions = "NO_CAPTIONS"          // video has no caption track
	CodeFetch      = "FETCH_ERROR"          // captions provider or network failure
	CodeTooLarge   = "TRANSCRIPT_TOO_LARGE" // transcript exceeds the model context budget
	CodeGeneration = "GENERATION_ERROR"     // generation API failure or malformed response
	CodeAuth       = "AUTH_ERROR"           // API credential missing or rejected
	CodeExport     = "EXPORT_ERROR"         // artifact rendering failure
)
