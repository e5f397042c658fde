package producer

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/wire"
)

// Formatter owns an exclusive borrow of a Dispatcher and emits
// type-hinted, pointer-width-aware value bytes through it (spec §4.4). A
// Formatter never allocates beyond the small fixed-size scratch arrays
// used to encode a single primitive.
type Formatter struct {
	d     Dispatcher
	width ids.PointerWidth

	// scopeStack tracks open StatementWriter scopes LIFO. Proper nesting
	// (an inner scope fully opened, used, and closed from within an outer
	// scope's Statement body) is allowed; closing out of order is not —
	// that would interleave two regions' End markers and desynchronize the
	// decoder (spec §4.4's "no concurrent nested-region borrow" rule,
	// enforced here at runtime since Go has no borrow checker).
	scopeStack []*StatementWriter
}

// NewFormatter returns a Formatter that writes through d at the given
// negotiated pointer width.
func NewFormatter(d Dispatcher, width ids.PointerWidth) *Formatter {
	return &Formatter{d: d, width: width}
}

// PointerWidth reports the pointer width this Formatter was constructed
// with; WriteValue implementations consult it to size usize/isize/length
// payloads.
func (f *Formatter) PointerWidth() ids.PointerWidth { return f.width }

// WriteRaw writes bytes through the dispatcher unmodified. Used for frame
// plumbing (header, stamp, statement ids) that is not itself a WriteValue.
func (f *Formatter) WriteRaw(b []byte) {
	f.d.Write(b)
}

// Write emits v's type hint followed by its payload bytes (spec §4.4).
func (f *Formatter) Write(v WriteValue) {
	f.writeHintByte(v.hint())
	v.writePayload(f)
}

func (f *Formatter) writeHintByte(h wire.TypeHint) {
	f.d.Write([]byte{byte(h)})
}

func (f *Formatter) writeContinuationByte(c wire.ContinuationMarker) {
	f.d.Write([]byte{byte(c)})
}

func (f *Formatter) writeStatementRef(ref wire.StatementRef) {
	var buf [wire.StatementRefSize]byte
	wire.PutStatementRef(buf[:], ref)
	f.d.Write(buf[:])
}

func (f *Formatter) writeLength(n uint64) {
	var buf [8]byte
	size := f.width.Size()
	wire.PutLength(buf[:size], f.width, n)
	f.d.Write(buf[:size])
}
