package theme

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

const maxTitleLength = 255

// CreateInput holds the parameters for creating a theme.
type CreateInput struct {
	Title       string
	Description string
	Pages       int
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Pages < 0 {
		errs = append(errs, domain.FieldError{Field: "pages", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
