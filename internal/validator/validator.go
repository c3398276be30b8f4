package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/tferraro/ticketek/internal/domain"
)

func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterValidation("venue_kind", validateVenueKind)
	v.RegisterValidation("sector_name", validateSectorName)

	return v
}

func validateVenueKind(fl validator.FieldLevel) bool {
	kind := domain.VenueKind(fl.Field().Int())
	return kind == domain.GeneralAdmission || kind == domain.Sectored || kind == domain.SectoredSurcharge
}

// validateSectorName rejects the reserved general-admission sentinel as a
// real sector name.
func validateSectorName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	return name != "" && name != domain.GeneralSector
}

// ValidationMessage converts validator errors into readable messages.
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return fmt.Sprintf("must be greater than %s", err.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "min":
		return fmt.Sprintf("must have at least %s entries", err.Param())
	case "venue_kind":
		return "must be one of general-admission, sectored, sectored-surcharge"
	case "sector_name":
		return "must be a non-empty name other than the reserved GENERAL sector"
	default:
		return "is invalid"
	}
}
