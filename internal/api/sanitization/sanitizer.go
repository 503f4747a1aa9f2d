package sanitization

import (
	"html/template"
	"regexp"
	"strings"
)

var (
	horizontalSpace = regexp.MustCompile(`[^\S\n]+`)
	spacedNewline   = regexp.MustCompile(`[^\S\n]*\n[^\S\n]*`)
)

// SanitizeString escapes markup-significant characters and normalizes
// whitespace, so user text is safe to embed in generated email HTML.
// Newlines are kept so multi-paragraph messages keep their shape; only
// horizontal runs collapse.
func SanitizeString(input string) string {
	safe := template.HTMLEscapeString(input)

	safe = horizontalSpace.ReplaceAllString(safe, " ")
	safe = spacedNewline.ReplaceAllString(safe, "\n")

	return strings.TrimSpace(safe)
}

// SanitizeEmail normalizes an email address for validation and delivery.
func SanitizeEmail(input string) string {
	email := strings.ToLower(input)
	email = strings.TrimSpace(email)
	return template.HTMLEscapeString(email)
}

// SanitizePhone escapes and trims a phone number without touching the
// punctuation phone formats legitimately carry.
func SanitizePhone(input string) string {
	safe := template.HTMLEscapeString(input)
	return strings.TrimSpace(safe)
}
