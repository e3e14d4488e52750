package util

import (
	"github.com/bokysan/basez/internal/util/enc"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	ErrGeneric = 99

	// ErrUnsupportedOption is returned when an option is used where it is not allowed, e.g. a custom
	// alphabet with base16
	ErrUnsupportedOption = -1
	// ErrAlphabet is returned when a custom alphabet cannot be used
	ErrAlphabet = -2
)

// ExitCode maps an error to the process exit code. Flags errors map to their type, alphabet
// problems to ErrAlphabet, unsupported options to ErrUnsupportedOption and everything else
// to ErrGeneric.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	cause := errors.Cause(err)
	if flagsError, ok := cause.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}

	switch enc.KindOf(cause) {
	case enc.UnsupportedOption:
		return ErrUnsupportedOption
	case enc.AlphabetLength, enc.AlphabetSymbols:
		return ErrAlphabet
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code returned
// by ExitCode. Help requests exit with 0 without logging.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %v", err)
	log.Exit(code)
}
