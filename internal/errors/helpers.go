package errors

import (
	"errors"
)

// GetCode returns the code carried anywhere in err's chain. A nil error is
// CodeOK; an error from outside this package is CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetMessage returns the outermost message without the cause chain, or
// err.Error() for foreign errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}
