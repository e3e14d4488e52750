package enc

import "fmt"

const (
	// Base32Alphabet is the RFC4648 Base32 alphabet.
	Base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
)

// StdBase32 encodes with the RFC4648 alphabet. Output is not padded.
var StdBase32 = &Base32Encoder{
	codec: newCodec("Base32", 5, Base32Alphabet, NoPadding, 0),
}

// NewBase32Encoder creates a Base32 encoder over a custom alphabet of 32 distinct symbols.
func NewBase32Encoder(alphabet string) (*Base32Encoder, error) {
	if err := validateAlphabet("Base32", alphabet, 5, NoPadding); err != nil {
		return nil, err
	}
	return &Base32Encoder{
		codec: newCodec("Base32", 5, alphabet, NoPadding, 0),
	}, nil
}

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. The last group is not padded, so `=` is not
// accepted when decoding.
type Base32Encoder struct {
	codec *codec
}

func (b *Base32Encoder) Name() string {
	return b.codec.name
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), b.Alphabet())
}

func (b *Base32Encoder) Bits() uint {
	return b.codec.bits
}

func (b *Base32Encoder) Alphabet() string {
	return b.codec.alphabet
}

func (b *Base32Encoder) Encode(data []byte) string {
	return b.codec.encode(data)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	return b.codec.decode(data)
}
