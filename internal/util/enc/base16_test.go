package enc

import (
	"encoding/hex"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Base16Encoder(t *testing.T) {
	encoded := StdBase16.Encode([]byte{0x00, 0xFF, 0x1A})
	require.Equal(t, "00FF1A", encoded)

	decoded, err := StdBase16.Decode("00FF1A")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xFF, 0x1A}, decoded)

	require.Equal(t, "666F6F626172", StdBase16.Encode([]byte("foobar")))
	require.Equal(t, "", StdBase16.Encode(nil))
}

func Test_Base16MatchesStdlib(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoded := StdBase16.Encode(encoderTest)
		require.Equal(t, strings.ToUpper(hex.EncodeToString(encoderTest)), encoded)

		decoded, err := StdBase16.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_Base16OddLength(t *testing.T) {
	decoded, err := StdBase16.Decode("00F")
	require.Error(t, err)
	require.Nil(t, decoded)
	require.True(t, IsKind(err, InvalidInput))

	// Length is checked before any symbol, so the invalid symbol is not what gets reported.
	_, err = StdBase16.Decode("zzz")
	require.Contains(t, err.Error(), "odd length")
}

func Test_Base16InvalidSymbol(t *testing.T) {
	for _, in := range []string{"0G", "ff", "0x", "=="} {
		_, err := StdBase16.Decode(in)
		require.Error(t, err, "decoding %q", in)
		require.True(t, IsKind(err, InvalidInput))
	}
}
