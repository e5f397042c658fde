package wire

import (
	"fmt"

	"github.com/deferfmt/deferfmt/ids"
)

// Header bit flags (spec §4.3.1). The two low bits jointly negotiate the
// frame's pointer width; bit 2 signals whether a Stamp follows.
const (
	flagPlus16Width byte = 1 << 0
	flagPlus32Width byte = 1 << 1
	flagStamp       byte = 1 << 2

	// knownBits masks every bit this version of the codec understands. Any
	// other set bit makes a header invalid (spec §4.6 step 1).
	knownBits = flagPlus16Width | flagPlus32Width | flagStamp
)

// Header is the decoded form of a frame's single leading header byte.
type Header struct {
	Width    ids.PointerWidth
	HasStamp bool
}

// Encode packs h into the single header byte (spec §4.3.1).
func (h Header) Encode() byte {
	var b byte
	switch h.Width {
	case ids.PointerWidth32:
		b |= flagPlus16Width
	case ids.PointerWidth64:
		b |= flagPlus32Width | flagPlus16Width
	}
	if h.HasStamp {
		b |= flagStamp
	}
	return b
}

// DecodeHeader unpacks a frame's header byte. It returns an error if any
// bit outside knownBits is set, or if the width bits select the reserved
// combination (PLUS_32_WIDTH set without PLUS_16_WIDTH).
func DecodeHeader(b byte) (Header, error) {
	if b&^knownBits != 0 {
		return Header{}, fmt.Errorf("wire: unknown header bits set: %#02x", b&^knownBits)
	}
	widthBits := b & (flagPlus16Width | flagPlus32Width)
	var width ids.PointerWidth
	switch widthBits {
	case 0:
		width = ids.PointerWidth16
	case flagPlus16Width:
		width = ids.PointerWidth32
	case flagPlus32Width:
		return Header{}, fmt.Errorf("wire: reserved pointer-width bit pattern 0b10")
	case flagPlus16Width | flagPlus32Width:
		width = ids.PointerWidth64
	}
	return Header{Width: width, HasStamp: b&flagStamp != 0}, nil
}
