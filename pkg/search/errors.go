package search

import (
	"github.com/pkg/errors"
)

// Contract violations. A search that returns one of these was malformed; it
// is never the same thing as a valid search that found nothing.
var (
	ErrNilText        = errors.New("text is nil")
	ErrEmptyText      = errors.New("text is empty")
	ErrNilPattern     = errors.New("pattern is nil")
	ErrEmptyPattern   = errors.New("pattern is empty")
	ErrPatternTooLong = errors.New("pattern is longer than the text")
)

// ErrUnknownAlgorithm is returned by Lookup for a name it does not know.
var ErrUnknownAlgorithm = errors.New("unknown search algorithm")

// IsInvalid reports whether err is (or wraps) a contract violation.
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}
	for _, target := range []error{
		ErrNilText, ErrEmptyText, ErrNilPattern, ErrEmptyPattern, ErrPatternTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// validate applies the match contract in order: text, then pattern, then
// the relative lengths. No table is built before it passes.
func validate(textNil, patternNil bool, n, m int) error {
	switch {
	case textNil:
		return ErrNilText
	case n == 0:
		return ErrEmptyText
	case patternNil:
		return ErrNilPattern
	case m == 0:
		return ErrEmptyPattern
	case m > n:
		return errors.Wrapf(ErrPatternTooLong, "pattern length %d, text length %d", m, n)
	}
	return nil
}
