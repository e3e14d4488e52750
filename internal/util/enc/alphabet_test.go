package enc

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"sync"
	"testing"
)

func Test_LookupDefaults(t *testing.T) {
	for name, expected := range map[string]Encoder{
		"base16":   StdBase16,
		"base32":   StdBase32,
		"base64":   StdBase64,
		"BASE64":   StdBase64,
		" base32 ": StdBase32,
	} {
		encoder, err := Lookup(name, "")
		require.NoError(t, err)
		require.Same(t, expected, encoder)
	}
}

func Test_LookupUnknown(t *testing.T) {
	encoder, err := Lookup("base58", "")
	require.Nil(t, encoder)
	require.True(t, IsKind(err, UnsupportedOption))
}

func Test_LookupBase16CustomAlphabet(t *testing.T) {
	encoder, err := Lookup(NameBase16, "fedcba9876543210")
	require.Nil(t, encoder)
	require.True(t, IsKind(err, UnsupportedOption))
}

func Test_LookupCustomAlphabet(t *testing.T) {
	encoder, err := Lookup(NameBase32, "abcdefghijklmnopqrstuvwxyz234567")
	require.NoError(t, err)
	require.Equal(t, "Base32", encoder.Name())
	require.Equal(t, uint(5), encoder.Bits())
	require.Equal(t, "mzxw6ytboi", encoder.Encode([]byte("foobar")))
}

func Test_AlphabetLength(t *testing.T) {
	for _, alphabet := range []string{Base32Alphabet[:31], Base32Alphabet + "="} {
		encoder, err := Lookup(NameBase32, alphabet)
		require.Nil(t, encoder, "alphabet of %d symbols", len(alphabet))
		require.True(t, IsKind(err, AlphabetLength))
	}

	_, err := NewBase64Encoder(Base32Alphabet)
	require.True(t, IsKind(err, AlphabetLength))
	require.Contains(t, err.Error(), "length is 32, expected 64")
}

func Test_AlphabetSymbols(t *testing.T) {
	duplicated := "A" + Base32Alphabet[1:31] + "A"
	_, err := NewBase32Encoder(duplicated)
	require.True(t, IsKind(err, AlphabetSymbols))
	require.Contains(t, err.Error(), "repeated")

	padded := Base64Alphabet[:63] + "="
	_, err = NewBase64Encoder(padded)
	require.True(t, IsKind(err, AlphabetSymbols))
	require.Contains(t, err.Error(), "padding character")

	// Base32 does not pad, so '=' is an ordinary symbol there.
	_, err = NewBase32Encoder(Base32Alphabet[:31] + "=")
	require.NoError(t, err)
}

func Test_AlphabetReportsAllProblems(t *testing.T) {
	_, err := NewBase32Encoder("AAB")
	require.True(t, IsKind(err, AlphabetLength), "length problems decide the kind")
	require.Contains(t, err.Error(), "length is 3, expected 32")
	require.Contains(t, err.Error(), "repeated")
	require.Equal(t, 1, strings.Count(err.Error(), ";"))
}

func Test_KindOf(t *testing.T) {
	require.Equal(t, Kind(0), KindOf(nil))
	require.Equal(t, Kind(0), KindOf(errors.New("demo")))

	_, err := StdBase64.Decode("!")
	require.Equal(t, InvalidInput, KindOf(err))
	require.Equal(t, InvalidInput, KindOf(errors.Wrap(err, "wrapped")))
	require.Equal(t, "invalid input", InvalidInput.String())
}

func Test_ConcurrentUse(t *testing.T) {
	encoders := []Encoder{StdBase16, StdBase32, StdBase64}
	var wg sync.WaitGroup
	errs := make(chan error, len(encoders)*len(encoderTests))
	for _, encoder := range encoders {
		for _, encoderTest := range encoderTests {
			wg.Add(1)
			go func(encoder Encoder, data []byte) {
				defer wg.Done()
				decoded, err := encoder.Decode(encoder.Encode(data))
				if err == nil && string(decoded) != string(data) {
					err = errors.Errorf("%s round trip mismatch", encoder.Name())
				}
				errs <- err
			}(encoder, encoderTest)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
}
