package submission

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/poetic-threads/internal/domain"
)

// SubmitInput holds the parameters for submitting a stanza.
type SubmitInput struct {
	ThemeID  int64
	AuthorID int64
	Content  string
}

// Validate checks ids and content and returns the normalized content.
func (i SubmitInput) Validate(maxLength int) (string, error) {
	var errs []domain.FieldError

	if i.ThemeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "theme_id", Message: "must be a positive integer"})
	}
	if i.AuthorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "must be a positive integer"})
	}

	content := domain.NormalizeStanza(i.Content)
	switch {
	case content == "":
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	case utf8.RuneCountInString(content) > maxLength:
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", maxLength)})
	}

	if len(errs) > 0 {
		return "", &domain.ValidationError{Errors: errs}
	}
	return content, nil
}
