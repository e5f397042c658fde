package decoder

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/processor"
	"github.com/deferfmt/deferfmt/registry"
	"github.com/deferfmt/deferfmt/wire"
)

// Decoder is the stateless byte machine from spec §4.6: every call to
// DecodeFrame is independent except for the caches it shares across
// calls. A Decoder is safe for concurrent use; its caches are.
type Decoder struct {
	reg    *registry.Store
	crates *CrateCache
	prints *StatementCache[registry.PrintStatementRecord]
	writes *StatementCache[registry.WriteStatementRecord]
}

// New returns a Decoder reading registered statements from reg.
func New(reg *registry.Store) *Decoder {
	return &Decoder{
		reg:    reg,
		crates: NewCrateCache(reg),
		prints: NewStatementCache[registry.PrintStatementRecord](),
		writes: NewStatementCache[registry.WriteStatementRecord](),
	}
}

// DecodeFrame attempts to decode one complete frame from the start of
// buf. On success it returns the frame and the number of bytes consumed
// from buf. If buf does not yet hold a complete frame it returns
// ErrIncomplete and 0, and buf must be left untouched by the caller until
// more bytes are appended. Any other error is fatal to this frame only;
// the decoder itself is not corrupted and the caller should resynchronize
// past the frame (this module does not prescribe how) before decoding
// again.
func (d *Decoder) DecodeFrame(buf []byte) (*Frame, int, error) {
	c := &cursor{buf: buf}

	hb, ok := c.readByte()
	if !ok {
		return nil, 0, ErrIncomplete
	}
	header, err := wire.DecodeHeader(hb)
	if err != nil {
		return nil, 0, &Error{Kind: ErrUnknownHeaderBits, Err: err}
	}

	var stamp *ids.Stamp
	if header.HasStamp {
		sb, ok := c.readN(8)
		if !ok {
			return nil, 0, ErrIncomplete
		}
		s := ids.Stamp(wire.ReadU64(sb))
		stamp = &s
	}

	refBytes, ok := c.readN(wire.StatementRefSize)
	if !ok {
		return nil, 0, ErrIncomplete
	}
	ref := wire.ReadStatementRef(refBytes)

	crate, err := d.crates.resolve(ref.Crate)
	if err != nil {
		return nil, 0, err
	}

	printID := ids.PrintStatementId(ref.Statement)
	print, err := d.prints.Resolve(ref.Crate, ids.ShortId(ref.Statement), func() (registry.PrintStatementRecord, error) {
		return crate.store.FindPrintByID(printID)
	})
	if err != nil {
		return nil, 0, &Error{Kind: ErrUnknownStatement, StatementKind: "print", StatementID: uint16(ref.Statement), Err: err}
	}

	segments, err := d.decodeSegments(print.Payload.Format, header.Width, c, crate)
	if err != nil {
		return nil, 0, err
	}

	return &Frame{
		Stamp:    stamp,
		Crate:    crate.record,
		PrintID:  printID,
		Segments: segments,
	}, c.pos, nil
}

// decodeSegments walks pfs's segments in order, emitting a literal
// DecodedSegment for each literal run and consuming one value off c for
// each argument segment (spec §4.6 step 4).
func (d *Decoder) decodeSegments(pfs processor.ProcessedFormatString, width ids.PointerWidth, c *cursor, crate *crateHandle) ([]DecodedSegment, error) {
	out := make([]DecodedSegment, 0, len(pfs.Segments))
	for _, seg := range pfs.Segments {
		switch seg.Kind {
		case processor.SegmentLiteral:
			out = append(out, DecodedSegment{Kind: SegmentLiteral, Literal: seg.Literal})
		case processor.SegmentArgument:
			v, err := d.decodeValue(c, width, crate)
			if err != nil {
				return nil, err
			}
			out = append(out, DecodedSegment{Kind: SegmentArgument, Value: v, Options: seg.Argument.Options})
		}
	}
	return out, nil
}
