package enc

import "fmt"

const (
	// Base16Alphabet is the RFC4648 Base16 (upper-case hex) alphabet.
	Base16Alphabet = "0123456789ABCDEF"
)

// StdBase16 is the only Base16 encoder; custom alphabets are not supported for Base16.
var StdBase16 = &Base16Encoder{
	codec: newCodec("Base16", 4, Base16Alphabet, NoPadding, 0),
}

// -------------------------------------------------------

// Base16Encoder encodes 1 byte to 2 characters
type Base16Encoder struct {
	codec *codec
}

func (b *Base16Encoder) Name() string {
	return b.codec.name
}

func (b *Base16Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), b.Alphabet())
}

func (b *Base16Encoder) Bits() uint {
	return b.codec.bits
}

func (b *Base16Encoder) Alphabet() string {
	return b.codec.alphabet
}

func (b *Base16Encoder) Encode(data []byte) string {
	return b.codec.encode(data)
}

// Decode requires an even number of symbols, every byte is always exactly two symbols.
func (b *Base16Encoder) Decode(data string) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, newError(InvalidInput, "invalid data: Base16 input has odd length %d", len(data))
	}
	return b.codec.decode(data)
}
