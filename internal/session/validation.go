package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/zealcatalyst/zeal-client/internal/domain"
)

var validate = validator.New()

// ErrValidation wraps all pre-network input failures so callers can
// distinguish them from backend errors.
var ErrValidation = errors.New("validation failed")

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterInput struct {
	Email           string      `validate:"required,email"`
	Password        string      `validate:"required,min=6"`
	ConfirmPassword string      `validate:"required,eqfield=Password"`
	FullName        string      `validate:"required"`
	Role            domain.Role `validate:"omitempty,oneof=student tutor"`
	Phone           string      `validate:"omitempty"`
}

// validateInput runs the struct rules and returns a single
// user-displayable error, before any network call is made.
func validateInput(in interface{}) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrValidation, err.Error())
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
