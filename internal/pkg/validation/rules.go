// Package validation registers the custom binding rules used by request DTOs.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Rule tags usable in `binding:"..."` struct tags.
const (
	TagNotBlank = "notblank"
	TagTitle    = "title"
)

// titlePattern rejects control characters (newlines, tabs) in single-line titles.
var titlePattern = regexp.MustCompile(`^[^\p{Cc}]+$`)

// Register adds the custom rules to v. Registering twice is harmless.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagNotBlank, notBlank); err != nil {
		return err
	}
	return v.RegisterValidation(TagTitle, title)
}

// notBlank fails for strings made only of whitespace.
func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// title is notBlank plus a single-line check.
func title(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.TrimSpace(s) != "" && titlePattern.MatchString(s)
}
