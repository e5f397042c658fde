package processor

import "github.com/deferfmt/deferfmt/formatstring"

// IdentifierKind distinguishes the two ways a resolved argument can be
// named. Unlike formatstring.Identifier, there is no "implicit" kind here:
// resolution always assigns an explicit index to an implicit `{}`.
type IdentifierKind uint8

const (
	IdentifierIndex IdentifierKind = iota
	IdentifierName
)

// Identifier is a fully-resolved argument reference.
type Identifier struct {
	Kind  IdentifierKind `json:"kind"`
	Index uint64         `json:"index,omitempty"`
	Name  string         `json:"name,omitempty"`
}

// CountKind distinguishes the two ways a resolved width/precision can be
// supplied. Unlike formatstring.Count, "next arg" has already been
// resolved to the explicit index it consumed.
type CountKind uint8

const (
	CountNone CountKind = iota
	CountFixed
	CountArg
)

// Count is a resolved width or precision specifier.
type Count struct {
	Kind  CountKind  `json:"kind"`
	Fixed uint64     `json:"fixed,omitempty"`
	Arg   Identifier `json:"arg,omitempty"`
}

// Options is the resolved form of a replacement field's `{:...}` portion.
type Options struct {
	Fill      rune                `json:"fill,omitempty"`
	Align     formatstring.Align  `json:"align"`
	Sign      formatstring.Sign   `json:"sign"`
	Alternate bool                `json:"alternate,omitempty"`
	ZeroPad   bool                `json:"zero_pad,omitempty"`
	Width     *Count              `json:"width,omitempty"`
	Precision *Count              `json:"precision,omitempty"`
	Trait     formatstring.Trait  `json:"trait"`
}

// Argument is a resolved replacement field.
type Argument struct {
	Identifier Identifier `json:"identifier"`
	Options    Options    `json:"options"`
}

// SegmentKind distinguishes a literal text run from a resolved replacement
// field.
type SegmentKind uint8

const (
	SegmentLiteral SegmentKind = iota
	SegmentArgument
)

// Segment is one element of a processed format string.
type Segment struct {
	Kind     SegmentKind `json:"kind"`
	Literal  string      `json:"literal,omitempty"`
	Argument Argument    `json:"argument,omitempty"`
}

// ProcessedFormatString is the stable, serializable, content-hashable form
// of a parsed-and-resolved format string (spec §3.3). Two ProcessedFormatString
// values that are deep-equal must always produce identical canonical JSON,
// and therefore identical content hashes, regardless of how their source
// format strings were spelled (spec §4.2's determinism contract).
type ProcessedFormatString struct {
	Segments                   []Segment `json:"segments"`
	AppendNewline              bool      `json:"append_newline"`
	ExpectedPositionalArgCount uint64    `json:"expected_positional_arg_count"`
	ExpectedNamedArgs          []string  `json:"expected_named_args"`
}
