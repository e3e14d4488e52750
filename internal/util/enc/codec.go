package enc

const (
	// NoPadding disables padding of the encoded output
	NoPadding rune = -1
	// StdPadding is the RFC4648 padding character
	StdPadding rune = '='

	invalidSymbol = 0xFF
)

// codec is the bit-packing engine shared by all encoders. It is immutable once built and safe for
// concurrent use; all transient state lives in a per-call bitBuffer.
type codec struct {
	name      string
	bits      uint
	alphabet  string
	decodeMap [256]byte
	padding   rune
	padBlock  int
}

// newCodec builds the codec. The alphabet is assumed valid: exactly 1<<bits distinct bytes.
func newCodec(name string, bits uint, alphabet string, padding rune, padBlock int) *codec {
	c := &codec{
		name:     name,
		bits:     bits,
		alphabet: alphabet,
		padding:  padding,
		padBlock: padBlock,
	}
	for i := range c.decodeMap {
		c.decodeMap[i] = invalidSymbol
	}
	// Walk backwards so a repeated symbol resolves to its first position.
	for i := len(alphabet) - 1; i >= 0; i-- {
		c.decodeMap[alphabet[i]] = byte(i)
	}
	return c
}

// encodedLen is the number of symbols, padding included, produced for n input bytes.
func (c *codec) encodedLen(n int) int {
	l := (n*8 + int(c.bits) - 1) / int(c.bits)
	if c.padding != NoPadding && c.padBlock > 0 {
		if rem := l % c.padBlock; rem != 0 {
			l += c.padBlock - rem
		}
	}
	return l
}

func (c *codec) encode(src []byte) string {
	dst := make([]byte, 0, c.encodedLen(len(src)))

	var buf bitBuffer
	for _, b := range src {
		buf.push(uint32(b), 8)
		for buf.bits >= c.bits {
			dst = append(dst, c.alphabet[buf.pop(c.bits)])
		}
	}
	if buf.bits > 0 {
		dst = append(dst, c.alphabet[buf.flush(c.bits)])
	}

	if c.padding != NoPadding {
		for len(dst)%c.padBlock != 0 {
			dst = append(dst, byte(c.padding))
		}
	}
	return string(dst)
}

// decode converts src back into bytes. It stops at the first padding character (if the codec pads)
// and silently drops the trailing bits of the last partial group.
func (c *codec) decode(src string) ([]byte, error) {
	dst := make([]byte, 0, len(src)*int(c.bits)/8)

	var buf bitBuffer
	for i := 0; i < len(src); i++ {
		ch := src[i]
		if c.padding != NoPadding && rune(ch) == c.padding {
			break
		}
		v := c.decodeMap[ch]
		if v == invalidSymbol {
			return nil, newError(InvalidInput, "invalid data: %q at offset %d is not a %s symbol", ch, i, c.name)
		}
		buf.push(uint32(v), c.bits)
		if buf.bits >= 8 {
			dst = append(dst, byte(buf.pop(8)))
		}
	}
	return dst, nil
}
