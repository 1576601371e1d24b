package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gabrielcaixeta01/barber-agenda/internal/validators"
)

// HTTPError is the uniform error body: {error, details?}.
type HTTPError struct {
	Code    string `json:"error"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, details string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code, details string) {
	Write(c, http.StatusBadRequest, code, details)
}

func NotFound(c *gin.Context, code, details string) {
	Write(c, http.StatusNotFound, code, details)
}

func Unauthorized(c *gin.Context, code, details string) {
	Write(c, http.StatusUnauthorized, code, details)
}

func Internal(c *gin.Context, code, details string) {
	Write(c, http.StatusInternalServerError, code, details)
}

// From translates any use-case error into the uniform body. Validation
// errors become 400 naming the field, business errors map through
// statusFor, everything else is a persistence error surfaced with the
// underlying message.
func From(c *gin.Context, err error) {
	var fe *validators.FieldError
	if errors.As(err, &fe) {
		Write(c, http.StatusBadRequest, "validation_error", fe.Error())
		return
	}

	var be BusinessError
	if errors.As(err, &be) {
		Write(c, statusFor(be.Code), be.Code, "")
		return
	}

	Write(c, http.StatusInternalServerError, "persistence_error", err.Error())
}
