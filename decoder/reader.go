package decoder

import (
	"errors"
	"math"

	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/wire"
)

// ErrIncomplete is returned by DecodeFrame when buf does not yet hold a
// full frame. The caller's buffer is untouched; appending more bytes and
// retrying is always safe.
var ErrIncomplete = errors.New("decoder: incomplete frame")

// cursor is a forward-only read position over a byte slice that never
// advances past what it can actually deliver: every read either succeeds
// in full or leaves pos unchanged and reports short input.
type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) readByte() (byte, bool) {
	if len(c.buf)-c.pos < 1 {
		return 0, false
	}
	b := c.buf[c.pos]
	c.pos++
	return b, true
}

func (c *cursor) readN(n int) ([]byte, bool) {
	if len(c.buf)-c.pos < n {
		return nil, false
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, true
}

// readLength reads a length/usize hint sized to width and returns it as a
// uint64; the bool reports whether width's bytes were available. A value
// that does not fit a non-negative host int, the only thing a caller ever
// needs it for (slicing or a field count), is an ErrLengthOverflow error.
func (c *cursor) readLength(width ids.PointerWidth) (uint64, bool, error) {
	raw, ok := c.readN(width.Size())
	if !ok {
		return 0, false, nil
	}
	n := wire.ReadLength(raw, width)
	if n > math.MaxInt {
		return n, true, &Error{Kind: ErrLengthOverflow, Length: n}
	}
	return n, true, nil
}
