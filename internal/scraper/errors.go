package scraper

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKeyword is returned when Fetch is called without a search keyword
	ErrEmptyKeyword = errors.New("keyword is required")

	// ErrInvalidPageCount is returned when the page count is outside MinPages..MaxPages
	ErrInvalidPageCount = fmt.Errorf("page count must be between %d and %d", MinPages, MaxPages)
)

// PageError reports why a single search page could not be retrieved or decoded.
// It ends pagination but never discards listings collected before it.
type PageError struct {
	Page int
	Err  error
}

func (e *PageError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}

// StopReason tells why a fetch run ended
type StopReason int

const (
	// StopExhausted means every requested page was fetched
	StopExhausted StopReason = iota
	// StopEmpty means a page came back without results
	StopEmpty
	// StopError means a page failed and the remaining pages were skipped
	StopError
)

func (s StopReason) String() string {
	switch s {
	case StopExhausted:
		return "exhausted"
	case StopEmpty:
		return "empty page"
	case StopError:
		return "page error"
	default:
		return fmt.Sprintf("StopReason(%d)", int(s))
	}
}
