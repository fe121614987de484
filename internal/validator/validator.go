package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

func GetValidator() *validator.Validate {
	return validate
}

// Describe turns validation errors into one readable line per field, for
// command-line users. Other errors are returned as their message.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	lines := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			lines = append(lines, fmt.Sprintf("%s is required", fe.Field()))
		case "min", "gte":
			lines = append(lines, fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		case "max", "lte":
			lines = append(lines, fmt.Sprintf("%s must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value()))
		default:
			lines = append(lines, fmt.Sprintf("%s failed the %q check", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(lines, "\n")
}
