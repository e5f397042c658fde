package formatstring

// Align is the fill-alignment requested for a replacement field.
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Sign is an explicit sign request ('+' forces a sign on positives, '-' is
// accepted but has no effect beyond being recorded for the renderer).
type Sign uint8

const (
	SignNone Sign = iota
	SignPlus
	SignMinus
)

// Trait selects which formatting trait renders the argument, mirroring
// Rust's std::fmt trait family (spec §4.1).
type Trait uint8

const (
	TraitDisplay Trait = iota
	TraitDebug
	TraitLowerHex
	TraitUpperHex
	TraitDebugLowerHex
	TraitDebugUpperHex
	TraitOctal
	TraitBinary
	TraitLowerExp
	TraitUpperExp
	TraitPointer
)

func (t Trait) String() string {
	switch t {
	case TraitDisplay:
		return "Display"
	case TraitDebug:
		return "Debug"
	case TraitLowerHex:
		return "LowerHex"
	case TraitUpperHex:
		return "UpperHex"
	case TraitDebugLowerHex:
		return "DebugLowerHex"
	case TraitDebugUpperHex:
		return "DebugUpperHex"
	case TraitOctal:
		return "Octal"
	case TraitBinary:
		return "Binary"
	case TraitLowerExp:
		return "LowerExp"
	case TraitUpperExp:
		return "UpperExp"
	case TraitPointer:
		return "Pointer"
	default:
		return "Trait(?)"
	}
}

// CountKind distinguishes the three ways a width or precision can be
// supplied in a replacement field's options.
type CountKind uint8

const (
	// CountNone means the option was not present at all.
	CountNone CountKind = iota
	// CountFixed is a literal decimal integer written in the format string.
	CountFixed
	// CountArg references another argument by index or name, written as
	// "N$" or "name$".
	CountArg
	// CountNextArg consumes the next unclaimed positional argument, written
	// as "*" for width or ".*" for precision.
	CountNextArg
)

// Count is a resolved width or precision specifier.
type Count struct {
	Kind  CountKind
	Fixed uint64
	Arg   Identifier
}

// IdentifierKind distinguishes the ways a replacement field can name its
// argument.
type IdentifierKind uint8

const (
	// IdentifierImplicit means no identifier was written ("{}"); the
	// argument is taken from the next unclaimed positional slot.
	IdentifierImplicit IdentifierKind = iota
	// IdentifierIndex is an explicit positional reference ("{0}").
	IdentifierIndex
	// IdentifierName is an explicit named reference ("{count}").
	IdentifierName
)

// Identifier names an argument, either implicitly, by position, or by name.
type Identifier struct {
	Kind  IdentifierKind
	Index uint64
	Name  string
}

// Options is the `{:...}` portion of a replacement field.
type Options struct {
	Fill      rune
	Align     Align
	Sign      Sign
	Alternate bool
	ZeroPad   bool
	Width     *Count
	Precision *Count
	Trait     Trait
}

// Span is a half-open character-index range into the source format string,
// used only to locate diagnostics.
type Span struct {
	Start int
	End   int
}

// Argument is a `{...}` replacement field.
type Argument struct {
	Identifier Identifier
	Options    Options
	Span       Span
}

// SegmentKind distinguishes a literal text run from a replacement field.
type SegmentKind uint8

const (
	SegmentLiteral SegmentKind = iota
	SegmentArgument
)

// Segment is one element of a parsed format string: either a literal run of
// text (with "{{"/"}}" already unescaped) or a replacement field.
type Segment struct {
	Kind     SegmentKind
	Literal  string
	Argument Argument
}

// FormatString is the parsed representation of a format string: an ordered
// sequence of literal runs and replacement fields.
type FormatString struct {
	Segments []Segment
}
