package usecase

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadMagnetInput(input CreateLeadMagnetInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	} else if len(input.Title) > 200 {
		errors = append(errors, ValidationError{"title", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Kind) == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if !entity.MagnetKind(input.Kind).IsValid() {
		errors = append(errors, ValidationError{"type", "must be one of: checklist, template, calculator, report"})
	}

	if input.ConversionScore < 1 || input.ConversionScore > 10 {
		errors = append(errors, ValidationError{"conversion_score", "must be between 1 and 10"})
	}

	return errors
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Name) == "" {
		errors = append(errors, ValidationError{"name", "is required"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.LeadMagnetID <= 0 {
		errors = append(errors, ValidationError{"lead_magnet_id", "is required"})
	}

	return errors
}

func ValidateCreateLandingPageInput(input CreateLandingPageInput) []ValidationError {
	var errors []ValidationError

	if input.LeadMagnetID <= 0 {
		errors = append(errors, ValidationError{"lead_magnet_id", "is required"})
	}
	if strings.TrimSpace(input.Headline) == "" {
		errors = append(errors, ValidationError{"headline", "is required"})
	}
	if strings.TrimSpace(input.CTA) == "" {
		errors = append(errors, ValidationError{"cta", "is required"})
	}

	return errors
}

func ValidateCreateEmailTemplateInput(input CreateEmailTemplateInput) []ValidationError {
	var errors []ValidationError

	if input.LeadMagnetID <= 0 {
		errors = append(errors, ValidationError{"lead_magnet_id", "is required"})
	}
	if input.SequenceNumber < 1 {
		errors = append(errors, ValidationError{"sequence_number", "must be positive"})
	}
	if strings.TrimSpace(input.Subject) == "" {
		errors = append(errors, ValidationError{"subject", "is required"})
	}
	if strings.TrimSpace(input.Body) == "" {
		errors = append(errors, ValidationError{"body", "is required"})
	}

	return errors
}

func ValidateCreateUpgradeOfferInput(input CreateUpgradeOfferInput) []ValidationError {
	var errors []ValidationError

	if input.LeadMagnetID <= 0 {
		errors = append(errors, ValidationError{"lead_magnet_id", "is required"})
	}
	if strings.TrimSpace(input.Title) == "" {
		errors = append(errors, ValidationError{"title", "is required"})
	}
	if strings.TrimSpace(input.Link) == "" {
		errors = append(errors, ValidationError{"link", "is required"})
	}

	return errors
}

func validationMessage(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return strings.TrimSuffix(msg, ", ")
}
