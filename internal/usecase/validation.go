package usecase

import (
	"net/mail"
	"strings"
)

// ValidateCreateLeadInput collects every violation instead of stopping at the
// first, so the form can surface all of them in one round trip.
func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.FullName) == "" {
		errs = append(errs, ValidationError{"fullName", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errs = append(errs, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errs = append(errs, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.ServiceInterest) == "" {
		errs = append(errs, ValidationError{"serviceInterest", "is required"})
	}

	return errs
}
