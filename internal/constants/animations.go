package constants

import "strings"

// AnimationNone disables the entrance animation of a section.
const AnimationNone = "none"

// SectionAnimationOption describes an available section animation.
type SectionAnimationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var sectionAnimationOptions = []SectionAnimationOption{
	{Value: AnimationNone, Label: "None"},
	{Value: "fadeIn", Label: "Fade in"},
	{Value: "slideDown", Label: "Slide down"},
	{Value: "slideUp", Label: "Slide up"},
	{Value: "slideLeft", Label: "Slide from right"},
	{Value: "slideRight", Label: "Slide from left"},
	{Value: "zoomIn", Label: "Zoom in"},
	{Value: "zoomOut", Label: "Zoom out"},
	{Value: "bounce", Label: "Bounce"},
	{Value: "rotate", Label: "Rotate"},
	{Value: "flip", Label: "Flip"},
	{Value: "pulse", Label: "Pulse"},
}

// SectionAnimationOptions returns the allowed section animations.
// A copy of the slice is returned to prevent external mutation of the internal list.
func SectionAnimationOptions() []SectionAnimationOption {
	options := make([]SectionAnimationOption, len(sectionAnimationOptions))
	copy(options, sectionAnimationOptions)
	return options
}

// NormaliseSectionAnimation matches case-insensitively and returns the canonical
// animation name, or "" when the value is unknown.
func NormaliseSectionAnimation(value string) string {
	value = strings.TrimSpace(value)
	for _, option := range sectionAnimationOptions {
		if strings.EqualFold(option.Value, value) {
			return option.Value
		}
	}
	return ""
}
