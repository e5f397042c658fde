package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deferfmt/deferfmt/decoder"
	"github.com/deferfmt/deferfmt/formatstring"
	"github.com/deferfmt/deferfmt/processor"
)

// renderSegments joins a decoded segment stream into display text,
// applying each argument's resolved Options the way an external
// collaborator is expected to (spec §4.6 step 6 leaves rendering to one).
func renderSegments(segments []decoder.DecodedSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		switch seg.Kind {
		case decoder.SegmentLiteral:
			b.WriteString(seg.Literal)
		case decoder.SegmentArgument:
			b.WriteString(renderArgument(seg.Value, seg.Options))
		}
	}
	return b.String()
}

// renderArgument renders one decoded value under its resolved format
// options: trait selects the base representation, precision truncates a
// string or re-renders a float, then sign, the alternate prefix, and
// zero-pad/width/fill/align are layered on in that order, mirroring the
// field-formatting pipeline the `{:...}` syntax describes.
func renderArgument(v decoder.Value, opts processor.Options) string {
	body, kind := traitBody(v, opts.Trait)

	if opts.Precision != nil && kind == stringKind {
		body = truncateRunes(body, int(fixedCount(opts.Precision)))
	} else if opts.Precision != nil && kind == floatKind {
		body = formatFloatPrecision(v, int(fixedCount(opts.Precision)))
	}

	if kind == numericKind || kind == floatKind {
		body = applySign(body, opts.Sign)
	}
	if kind == numericKind && opts.Alternate {
		body = alternatePrefix(opts.Trait) + body
	}

	return pad(body, opts, kind)
}

type valueKind int

const (
	stringKind valueKind = iota
	numericKind
	floatKind
	otherKind
)

// fixedCount reads a resolved Count's literal value. Argument-supplied
// widths/precisions (CountArg) are not resolved to a value by the decoder
// or by this renderer, so such a Count reads as 0.
func fixedCount(c *processor.Count) uint64 {
	if c == nil || c.Kind != processor.CountFixed {
		return 0
	}
	return c.Fixed
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return s
	}
	return string(r[:n])
}

func applySign(body string, sign formatstring.Sign) string {
	if sign != formatstring.SignPlus {
		return body
	}
	if strings.HasPrefix(body, "-") {
		return body
	}
	return "+" + body
}

func alternatePrefix(trait formatstring.Trait) string {
	switch trait {
	case formatstring.TraitLowerHex, formatstring.TraitDebugLowerHex:
		return "0x"
	case formatstring.TraitUpperHex, formatstring.TraitDebugUpperHex:
		return "0X"
	case formatstring.TraitOctal:
		return "0o"
	case formatstring.TraitBinary:
		return "0b"
	default:
		return ""
	}
}

func pad(body string, opts processor.Options, kind valueKind) string {
	width := int(fixedCount(opts.Width))
	n := len([]rune(body))
	if width <= n {
		return body
	}
	fill := opts.Fill
	if fill == 0 {
		fill = ' '
	}
	align := opts.Align
	if align == formatstring.AlignNone {
		if kind == numericKind || kind == floatKind {
			align = formatstring.AlignRight
		} else {
			align = formatstring.AlignLeft
		}
	}
	if opts.ZeroPad && (kind == numericKind || kind == floatKind) {
		fill = '0'
		align = formatstring.AlignRight
	}

	padding := strings.Repeat(string(fill), width-n)
	switch align {
	case formatstring.AlignRight:
		return insertAfterSign(padding, body, opts.ZeroPad)
	case formatstring.AlignCenter:
		left := (width - n) / 2
		right := width - n - left
		return strings.Repeat(string(fill), left) + body + strings.Repeat(string(fill), right)
	default:
		return body + padding
	}
}

// insertAfterSign keeps a leading sign character ahead of zero-padding, so
// -7 zero-padded to width 4 renders "-007" rather than "00-7".
func insertAfterSign(padding, body string, zeroPad bool) string {
	if zeroPad && len(body) > 0 && (body[0] == '-' || body[0] == '+') {
		return body[:1] + padding + body[1:]
	}
	return padding + body
}

// traitBody renders v's base text under trait, reporting the kind used to
// decide sign/zero-pad/default-alignment handling above.
func traitBody(v decoder.Value, trait formatstring.Trait) (string, valueKind) {
	switch trait {
	case formatstring.TraitLowerHex:
		return intText(v, 16, false), numericKind
	case formatstring.TraitUpperHex:
		return intText(v, 16, true), numericKind
	case formatstring.TraitOctal:
		return intText(v, 8, false), numericKind
	case formatstring.TraitBinary:
		return intText(v, 2, false), numericKind
	case formatstring.TraitLowerExp:
		return floatExp(v, false), floatKind
	case formatstring.TraitUpperExp:
		return floatExp(v, true), floatKind
	case formatstring.TraitDebug, formatstring.TraitDebugLowerHex, formatstring.TraitDebugUpperHex:
		return debugText(v), otherKind
	case formatstring.TraitPointer:
		return fmt.Sprintf("%#x", uintOf(v)), numericKind
	default: // TraitDisplay
		return displayText(v)
	}
}

func displayText(v decoder.Value) (string, valueKind) {
	switch val := v.(type) {
	case decoder.BoolValue:
		return strconv.FormatBool(bool(val)), otherKind
	case decoder.CharValue:
		return string(rune(val)), stringKind
	case decoder.StringValue:
		return string(val), stringKind
	case decoder.F32Value:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), floatKind
	case decoder.F64Value:
		return strconv.FormatFloat(float64(val), 'f', -1, 64), floatKind
	case decoder.Int128Value:
		return val.V.String(), numericKind
	case decoder.Uint128Value:
		return val.V.String(), numericKind
	default:
		if isSignedInt(v) {
			return strconv.FormatInt(signedOf(v), 10), numericKind
		}
		if isUnsignedInt(v) {
			return strconv.FormatUint(uintOf(v), 10), numericKind
		}
		return debugText(v), otherKind
	}
}

func debugText(v decoder.Value) string {
	switch val := v.(type) {
	case decoder.StringValue:
		return strconv.Quote(string(val))
	case decoder.CharValue:
		return strconv.QuoteRune(rune(val))
	case decoder.ListValue:
		parts := make([]string, len(val.Elements))
		for i, e := range val.Elements {
			parts[i] = debugText(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case decoder.DynListValue:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = debugText(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case decoder.TupleValue:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = debugText(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case decoder.TypeStructureValue:
		parts := make([]string, len(val.Fields))
		for i, f := range val.Fields {
			parts[i] = debugText(f)
		}
		return fmt.Sprintf("#%d{%s}", val.ID, strings.Join(parts, ", "))
	case decoder.WriteStatementsValue:
		parts := make([]string, len(val.Statements))
		for i, s := range val.Statements {
			parts[i] = renderSegments(s.Segments)
		}
		return strings.Join(parts, "")
	default:
		body, _ := displayText(v)
		return body
	}
}

func formatFloatPrecision(v decoder.Value, prec int) string {
	switch val := v.(type) {
	case decoder.F32Value:
		return strconv.FormatFloat(float64(val), 'f', prec, 32)
	case decoder.F64Value:
		return strconv.FormatFloat(float64(val), 'f', prec, 64)
	default:
		body, _ := displayText(v)
		return body
	}
}

func floatExp(v decoder.Value, upper bool) string {
	var s string
	switch val := v.(type) {
	case decoder.F32Value:
		s = strconv.FormatFloat(float64(val), 'e', -1, 32)
	case decoder.F64Value:
		s = strconv.FormatFloat(float64(val), 'e', -1, 64)
	default:
		s, _ = displayText(v)
		return s
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

func intText(v decoder.Value, base int, upper bool) string {
	var s string
	if iv, ok := v.(decoder.Int128Value); ok {
		s = iv.V.Text(base)
	} else if uv, ok := v.(decoder.Uint128Value); ok {
		s = uv.V.Text(base)
	} else if isSignedInt(v) {
		n := signedOf(v)
		if n < 0 {
			s = "-" + strconv.FormatUint(uint64(-n), base)
		} else {
			s = strconv.FormatUint(uint64(n), base)
		}
	} else {
		s = strconv.FormatUint(uintOf(v), base)
	}
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

func isSignedInt(v decoder.Value) bool {
	switch v.(type) {
	case decoder.I8Value, decoder.I16Value, decoder.I32Value, decoder.I64Value, decoder.IsizeValue:
		return true
	default:
		return false
	}
}

func isUnsignedInt(v decoder.Value) bool {
	switch v.(type) {
	case decoder.U8Value, decoder.U16Value, decoder.U32Value, decoder.U64Value, decoder.UsizeValue:
		return true
	default:
		return false
	}
}

func signedOf(v decoder.Value) int64 {
	switch val := v.(type) {
	case decoder.I8Value:
		return int64(val)
	case decoder.I16Value:
		return int64(val)
	case decoder.I32Value:
		return int64(val)
	case decoder.I64Value:
		return int64(val)
	case decoder.IsizeValue:
		return int64(val)
	default:
		return 0
	}
}

func uintOf(v decoder.Value) uint64 {
	switch val := v.(type) {
	case decoder.U8Value:
		return uint64(val)
	case decoder.U16Value:
		return uint64(val)
	case decoder.U32Value:
		return uint64(val)
	case decoder.U64Value:
		return uint64(val)
	case decoder.UsizeValue:
		return uint64(val)
	default:
		return 0
	}
}
