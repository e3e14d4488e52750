package enc

// Encoder is one RFC4648 binary-to-text codec bound to a fixed alphabet.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string

	// Bits is the number of bits every output symbol carries (4, 5 or 6)
	Bits() uint

	// Alphabet returns the symbols of this encoder, symbol at position i encodes value i
	Alphabet() string

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)
}
