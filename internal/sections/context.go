package sections

import (
	"landing-builder-backend/pkg/utils"
	"landing-builder-backend/pkg/validator"
)

// TrustedContext embeds operator markup as-is.
type TrustedContext struct{}

func (TrustedContext) SanitizeHTML(input string) string { return input }

func (TrustedContext) Markdown(input string) string { return utils.RenderMarkdown(input) }

// SanitizingContext cleans operator markup with the UGC policy.
type SanitizingContext struct{}

func (SanitizingContext) SanitizeHTML(input string) string { return validator.SanitizeHTML(input) }

func (SanitizingContext) Markdown(input string) string {
	return validator.SanitizeHTML(utils.RenderMarkdown(input))
}

// NewRenderContext picks the context for the sanitising setting.
func NewRenderContext(sanitize bool) RenderContext {
	if sanitize {
		return SanitizingContext{}
	}
	return TrustedContext{}
}
