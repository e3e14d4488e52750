package enc

const (
	// Base64Alphabet is the RFC4648 Base64 alphabet.
	Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// StdBase64 encodes with the RFC4648 alphabet and `=` padding.
var StdBase64 = &Base64Encoder{
	codec: newCodec("Base64", 6, Base64Alphabet, StdPadding, 4),
}

// NewBase64Encoder creates a Base64 encoder over a custom alphabet of 64 distinct symbols. The
// alphabet may not contain the padding character.
func NewBase64Encoder(alphabet string) (*Base64Encoder, error) {
	if err := validateAlphabet("Base64", alphabet, 6, StdPadding); err != nil {
		return nil, err
	}
	return &Base64Encoder{
		codec: newCodec("Base64", 6, alphabet, StdPadding, 4),
	}, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters
type Base64Encoder struct {
	codec *codec
}

func (b *Base64Encoder) Name() string {
	return b.codec.name
}

func (b *Base64Encoder) Bits() uint {
	return b.codec.bits
}

func (b *Base64Encoder) Alphabet() string {
	return b.codec.alphabet
}

// Encode pads the output with `=` up to a multiple of 4 characters.
func (b *Base64Encoder) Encode(data []byte) string {
	return b.codec.encode(data)
}

// Decode stops at the first `=`, anything after it is ignored.
func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return b.codec.decode(data)
}
