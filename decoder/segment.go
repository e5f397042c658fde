package decoder

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/processor"
	"github.com/deferfmt/deferfmt/registry"
)

// SegmentKind distinguishes a literal text run from a decoded argument in
// a DecodedSegment stream.
type SegmentKind uint8

const (
	SegmentLiteral SegmentKind = iota
	SegmentArgument
)

// DecodedSegment is one element of a rendered statement: either a literal
// text run (borrowed from the statement's stored format expression) or a
// decoded value paired with the format options its replacement field
// specified (spec §4.6 step 6). Rendering Value+Options to text is left
// to an external collaborator.
type DecodedSegment struct {
	Kind    SegmentKind
	Literal string
	Value   Value
	Options processor.Options
}

// Frame is one fully decoded print-statement emission.
type Frame struct {
	Stamp    *ids.Stamp
	Crate    registry.CrateRecord
	PrintID  ids.PrintStatementId
	Segments []DecodedSegment
}
