package tour

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced to callers. Handlers match these with errors.Is
// to pick a response status; anything wrapping ErrCollaboratorFailure is a
// catalog access problem, not a recommendation outcome.
var (
	ErrNoHistoryFound      = errors.New("no tour history found for user")
	ErrEmptyCatalog        = errors.New("no tour options available in catalog")
	ErrOptionNotFound      = errors.New("tour option not found")
	ErrCollaboratorFailure = errors.New("tour catalog unavailable")
)

func catalogErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrCollaboratorFailure, op, err)
}
