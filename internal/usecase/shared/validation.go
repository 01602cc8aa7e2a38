package shared

import (
	"errors"
	"fmt"
	"strings"

	"range-booking/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateInput checks struct tags and reports every failing field as one
// validation error.
func ValidateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs.Validation(errs.Wrap(err, "invalid input"))
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
	}
	return errs.Validationf("invalid input: %s", strings.Join(msgs, "; "))
}

// RequireText rejects empty and whitespace-only values.
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Validationf("%s is required", field)
	}
	return nil
}
