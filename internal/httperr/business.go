package httperr

import "errors"

type BusinessError struct {
	Code    string
	Message string

	// Field is set for input validation failures so the UI can point at
	// the offending field instead of a generic banner.
	Field string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func ErrField(field, code, message string) error {
	return BusinessError{Code: code, Message: message, Field: field}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
