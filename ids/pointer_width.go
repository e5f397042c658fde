package ids

import "fmt"

// PointerWidth is the byte-size negotiated per-frame for usize/isize values
// and for the length hints that precede collections and strings on the
// wire (spec §4.3.1).
type PointerWidth uint8

const (
	PointerWidth16 PointerWidth = 16
	PointerWidth32 PointerWidth = 32
	PointerWidth64 PointerWidth = 64
)

// Size returns the byte-size a value of this pointer width occupies on the
// wire: 2, 4, or 8.
func (w PointerWidth) Size() int {
	switch w {
	case PointerWidth16:
		return 2
	case PointerWidth32:
		return 4
	case PointerWidth64:
		return 8
	default:
		return 0
	}
}

func (w PointerWidth) String() string {
	switch w {
	case PointerWidth16:
		return "16-bit"
	case PointerWidth32:
		return "32-bit"
	case PointerWidth64:
		return "64-bit"
	default:
		return fmt.Sprintf("PointerWidth(%d)", uint8(w))
	}
}

// Valid reports whether w is one of the three negotiable widths.
func (w PointerWidth) Valid() bool {
	switch w {
	case PointerWidth16, PointerWidth32, PointerWidth64:
		return true
	default:
		return false
	}
}
