package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// statusFor maps business codes to HTTP statuses. Unlisted codes are
// treated as bad requests.
func statusFor(code string) int {
	switch code {
	case "appointment_not_found",
		"barber_not_found",
		"service_not_found",
		"schedule_not_found",
		"profile_not_found":
		return 404
	case "service_in_use":
		return 409
	case "not_authenticated":
		return 401
	default:
		return 400
	}
}
