package validator

import (
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	strict    *bluemonday.Policy
	initOnce  sync.Once
	enumsMu   sync.Mutex
	enums     = map[string][]string{}
)

var (
	hexColorPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern = regexp.MustCompile(`^(?:rgba?|hsla?)\(\s*[-0-9.%\s,/]+\)$`)
	namedColor       = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
)

// Init prepares the shared validator and sanitising policies and registers the
// custom rules on gin's binding engine as well.
func Init() {
	initOnce.Do(func() {
		validate = validator.New()
		sanitizer = bluemonday.UGCPolicy()
		strict = bluemonday.StrictPolicy()

		registerCustomValidations(validate)
		if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
			registerCustomValidations(engine)
		}
	})
}

func registerCustomValidations(v *validator.Validate) {
	v.RegisterValidation("css_color", validateCSSColor)
	v.RegisterValidation("no_html", validateNoHTML)
}

// RegisterEnum registers tag as a rule accepting only the given values.
func RegisterEnum(tag string, values []string) {
	Init()

	enumsMu.Lock()
	enums[tag] = append([]string(nil), values...)
	enumsMu.Unlock()

	rule := func(fl validator.FieldLevel) bool {
		return inEnum(tag, fl.Field().String())
	}
	validate.RegisterValidation(tag, rule)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		engine.RegisterValidation(tag, rule)
	}
}

func inEnum(tag, value string) bool {
	enumsMu.Lock()
	defer enumsMu.Unlock()
	value = strings.TrimSpace(value)
	for _, allowed := range enums[tag] {
		if strings.EqualFold(allowed, value) {
			return true
		}
	}
	return false
}

// Validate checks the struct tags of s.
func Validate(s interface{}) error {
	Init()
	return validate.Struct(s)
}

// SanitizeHTML keeps user generated markup safe for embedding.
func SanitizeHTML(html string) string {
	Init()
	return sanitizer.Sanitize(html)
}

// SanitizeString strips all markup.
func SanitizeString(s string) string {
	Init()
	return strict.Sanitize(s)
}

// IsCSSColor accepts hex, rgb(a), hsl(a) and named colours.
func IsCSSColor(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	return hexColorPattern.MatchString(value) ||
		funcColorPattern.MatchString(value) ||
		namedColor.MatchString(value)
}

func validateCSSColor(fl validator.FieldLevel) bool {
	return IsCSSColor(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return !strings.Contains(value, "<") && !strings.Contains(value, ">")
}
