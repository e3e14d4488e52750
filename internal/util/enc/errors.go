package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// Kind classifies the failures reported by this package.
type Kind int

const (
	// InvalidInput is returned when the decoded text contains a symbol outside of the alphabet or has
	// a length the encoding can never produce.
	InvalidInput Kind = iota + 1
	// AlphabetLength is returned when a custom alphabet does not have exactly 2^bits symbols.
	AlphabetLength
	// AlphabetSymbols is returned when a custom alphabet repeats a symbol or contains the padding character.
	AlphabetSymbols
	// UnsupportedOption is returned when a custom alphabet is requested for an encoding which does not allow it.
	UnsupportedOption
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid input"
	case AlphabetLength:
		return "alphabet length"
	case AlphabetSymbols:
		return "alphabet symbols"
	case UnsupportedOption:
		return "unsupported option"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the typed failure of an encode / decode / lookup call.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// KindOf returns the Kind of the error, or 0 if err does not originate from this package.
func KindOf(err error) Kind {
	if err == nil {
		return 0
	}
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err was caused by an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
