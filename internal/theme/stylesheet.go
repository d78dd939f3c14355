package theme

import (
	"fmt"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
)

var keyframes = map[string]string{
	"fadeIn":     "from{opacity:0}to{opacity:1}",
	"slideDown":  "from{opacity:0;transform:translateY(-40px)}to{opacity:1;transform:translateY(0)}",
	"slideUp":    "from{opacity:0;transform:translateY(40px)}to{opacity:1;transform:translateY(0)}",
	"slideLeft":  "from{opacity:0;transform:translateX(40px)}to{opacity:1;transform:translateX(0)}",
	"slideRight": "from{opacity:0;transform:translateX(-40px)}to{opacity:1;transform:translateX(0)}",
	"zoomIn":     "from{opacity:0;transform:scale(0.9)}to{opacity:1;transform:scale(1)}",
	"zoomOut":    "from{opacity:0;transform:scale(1.1)}to{opacity:1;transform:scale(1)}",
	"bounce":     "0%{opacity:0;transform:translateY(-30px)}60%{opacity:1;transform:translateY(8px)}80%{transform:translateY(-4px)}100%{transform:translateY(0)}",
	"rotate":     "from{opacity:0;transform:rotate(-8deg)}to{opacity:1;transform:rotate(0)}",
	"flip":       "from{opacity:0;transform:perspective(800px) rotateX(-90deg)}to{opacity:1;transform:perspective(800px) rotateX(0)}",
	"pulse":      "0%{transform:scale(1)}50%{transform:scale(1.03)}100%{transform:scale(1)}",
}

// Keyframes returns @keyframes rules for the referenced animations only, in
// catalogue order.
func Keyframes(kinds []string) string {
	wanted := make(map[string]struct{}, len(kinds))
	for _, kind := range kinds {
		wanted[kind] = struct{}{}
	}
	var sb strings.Builder
	for _, option := range constants.SectionAnimationOptions() {
		if _, ok := wanted[option.Value]; !ok {
			continue
		}
		body, ok := keyframes[option.Value]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "@keyframes %s{%s}\n", option.Value, body)
	}
	return sb.String()
}

const resetCSS = `*,*::before,*::after{box-sizing:border-box;margin:0;padding:0}
html{scroll-behavior:smooth}
img,video,iframe{max-width:100%;display:block}
a{color:inherit}
button,input,select,textarea{font:inherit}
.lp-section{animation-fill-mode:both}
.lp-button{transition:transform .2s ease,box-shadow .2s ease,filter .2s ease}
.lp-button--lift:hover{transform:translateY(-2px)}
.lp-button--scale:hover{transform:scale(1.05)}
.lp-button--glow:hover{filter:brightness(1.1);box-shadow:0 0 24px currentColor}
.lp-faq__item summary{cursor:pointer;list-style:none}
.lp-faq__item summary::-webkit-details-marker{display:none}
`

// BaseStylesheet returns reset rules and body typography from the theme.
func BaseStylesheet(global models.GlobalStyles) string {
	var sb strings.Builder
	sb.WriteString(resetCSS)
	fmt.Fprintf(&sb, "body{font-family:%s;background:%s;color:%s;line-height:%s;-webkit-font-smoothing:antialiased}\n",
		global.BodyFont, global.BackgroundColor, global.TextColor, number(constants.DefaultLineHeight))
	fmt.Fprintf(&sb, "h1,h2,h3,h4{font-family:%s}\n", global.HeadingFont)
	return sb.String()
}

// VisibilityStylesheet returns the media rules behind the lp-hide-* classes.
// They follow the real viewport width, so only published pages use them.
func VisibilityStylesheet() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "@media (max-width:%dpx){.lp-hide-mobile{display:none!important}}\n", constants.MobileMaxWidth)
	fmt.Fprintf(&sb, "@media (min-width:%dpx) and (max-width:%dpx){.lp-hide-tablet{display:none!important}}\n", constants.MobileMaxWidth+1, constants.TabletMaxWidth)
	fmt.Fprintf(&sb, "@media (min-width:%dpx){.lp-hide-desktop{display:none!important}}\n", constants.TabletMaxWidth+1)
	return sb.String()
}
