package enc

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"strings"
)

// Names of the encodings understood by Lookup.
const (
	NameBase16 = "base16"
	NameBase32 = "base32"
	NameBase64 = "base64"
)

// Lookup returns the encoder for the given encoding name. An empty alphabet selects the RFC4648
// default; a non-empty one is validated and used instead. Custom alphabets are not supported for
// Base16.
func Lookup(name string, alphabet string) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBase16:
		if alphabet != "" {
			return nil, newError(UnsupportedOption, "custom alphabet is only available for %s and %s", NameBase32, NameBase64)
		}
		return StdBase16, nil
	case NameBase32:
		if alphabet == "" {
			return StdBase32, nil
		}
		e, err := NewBase32Encoder(alphabet)
		if err != nil {
			return nil, err
		}
		return e, nil
	case NameBase64:
		if alphabet == "" {
			return StdBase64, nil
		}
		e, err := NewBase64Encoder(alphabet)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, newError(UnsupportedOption, "unknown encoding %q, expected one of %s, %s, %s", name, NameBase16, NameBase32, NameBase64)
	}
}

// validateAlphabet checks that the alphabet has exactly 1<<bits symbols, that no symbol repeats and
// that the padding character is not part of it. All problems are reported at once; the error is of
// kind AlphabetLength if the length is wrong and AlphabetSymbols otherwise.
func validateAlphabet(name string, alphabet string, bits uint, padding rune) error {
	var result *multierror.Error
	kind := AlphabetSymbols

	if want := 1 << bits; len(alphabet) != want {
		kind = AlphabetLength
		result = multierror.Append(result, fmt.Errorf("length is %d, expected %d", len(alphabet), want))
	}

	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		ch := alphabet[i]
		if padding != NoPadding && rune(ch) == padding {
			result = multierror.Append(result, fmt.Errorf("padding character %q at position %d", ch, i))
			continue
		}
		if seen[ch] {
			result = multierror.Append(result, fmt.Errorf("symbol %q at position %d is repeated", ch, i))
			continue
		}
		seen[ch] = true
	}

	if result == nil {
		return nil
	}
	result.ErrorFormat = func(errs []error) string {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		return strings.Join(msgs, "; ")
	}
	return newError(kind, "invalid %s alphabet: %s", name, result.Error())
}
