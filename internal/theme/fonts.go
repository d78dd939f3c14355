package theme

import (
	"net/url"
	"strings"

	"landing-builder-backend/internal/constants"
)

// FontFamilyName extracts the first family of a font stack without quotes.
func FontFamilyName(stack string) string {
	first := stack
	if i := strings.Index(stack, ","); i >= 0 {
		first = stack[:i]
	}
	return strings.Trim(strings.TrimSpace(first), `'"`)
}

// FontStylesheetURL returns the stylesheet URL that loads the stack's primary
// family. Generic families have no stylesheet.
func FontStylesheetURL(stack string) (string, bool) {
	name := FontFamilyName(stack)
	if name == "" || constants.IsGenericFontFamily(strings.ToLower(name)) {
		return "", false
	}
	family := url.QueryEscape(name)
	return constants.FontStylesheetBase + "?family=" + family + ":" + constants.FontWeightsQuery + "&display=swap", true
}

// FontStylesheets returns one URL per distinct family, in first-seen order.
func FontStylesheets(stacks ...string) []string {
	seen := make(map[string]struct{}, len(stacks))
	links := make([]string, 0, len(stacks))
	for _, stack := range stacks {
		name := strings.ToLower(FontFamilyName(stack))
		if _, ok := seen[name]; ok {
			continue
		}
		link, ok := FontStylesheetURL(stack)
		if !ok {
			continue
		}
		seen[name] = struct{}{}
		links = append(links, link)
	}
	return links
}
