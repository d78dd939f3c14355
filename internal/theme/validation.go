package theme

import (
	"sync"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/pkg/validator"
)

// RegisterValidations registers the section_kind and animation_kind rules used
// by request payloads and style struct tags.
func RegisterValidations() {
	kinds := models.SectionKinds()
	kindValues := make([]string, len(kinds))
	for i, kind := range kinds {
		kindValues[i] = string(kind)
	}
	validator.RegisterEnum("section_kind", kindValues)

	animations := constants.SectionAnimationOptions()
	animationValues := make([]string, len(animations))
	for i, option := range animations {
		animationValues[i] = option.Value
	}
	validator.RegisterEnum("animation_kind", animationValues)
}

var registerOnce sync.Once

// ValidateStyle checks a style against its struct tag constraints.
func ValidateStyle(style models.SectionStyle) error {
	registerOnce.Do(RegisterValidations)
	return validator.Validate(style)
}
