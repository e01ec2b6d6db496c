package core

import "errors"

// Validation errors, returned before any gateway I/O. The string form is the
// stable tag the transport layer exposes.
var (
	ErrTitleRequired           = errors.New("title_required")
	ErrBodyRequired            = errors.New("body_required")
	ErrInvalidCategory         = errors.New("invalid_category")
	ErrTooManyTags             = errors.New("too_many_tags")
	ErrMissingStartID          = errors.New("missing_required_param")
	ErrInvalidRelationshipType = errors.New("invalid_relationship_type")
)

// IsValidationError reports whether err carries one of the validation tags.
func IsValidationError(err error) bool {
	for _, tag := range []error{
		ErrTitleRequired,
		ErrBodyRequired,
		ErrInvalidCategory,
		ErrTooManyTags,
		ErrMissingStartID,
		ErrInvalidRelationshipType,
	} {
		if errors.Is(err, tag) {
			return true
		}
	}
	return false
}
