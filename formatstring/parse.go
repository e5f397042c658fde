package formatstring

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse parses s into a FormatString AST. On any grammar violation it
// returns a *ParseError whose CharRange locates the offending text.
func Parse(s string) (FormatString, error) {
	p := &parser{runes: []rune(s)}
	return p.parse()
}

type parser struct {
	runes []rune
	pos   int
}

func (p *parser) errAt(start, end int, kind ErrorKind, detail string) error {
	return &ParseError{CharRange: Span{Start: start, End: end}, Kind: kind, Detail: detail}
}

func (p *parser) eof() bool { return p.pos >= len(p.runes) }

func (p *parser) peek(offset int) rune {
	i := p.pos + offset
	if i < 0 || i >= len(p.runes) {
		return 0
	}
	return p.runes[i]
}

func (p *parser) parse() (FormatString, error) {
	var fs FormatString
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			fs.Segments = append(fs.Segments, Segment{Kind: SegmentLiteral, Literal: lit.String()})
			lit.Reset()
		}
	}

	for !p.eof() {
		c := p.runes[p.pos]
		switch c {
		case '{':
			if p.peek(1) == '{' {
				lit.WriteRune('{')
				p.pos += 2
				continue
			}
			flush()
			start := p.pos
			arg, err := p.parseReplacement()
			if err != nil {
				return FormatString{}, err
			}
			arg.Span = Span{Start: start, End: p.pos}
			fs.Segments = append(fs.Segments, Segment{Kind: SegmentArgument, Argument: arg})
		case '}':
			if p.peek(1) == '}' {
				lit.WriteRune('}')
				p.pos += 2
				continue
			}
			return FormatString{}, p.errAt(p.pos, p.pos+1, ErrUnmatchedBrace, "unescaped '}' outside a replacement field")
		default:
			lit.WriteRune(c)
			p.pos++
		}
	}
	flush()
	return fs, nil
}

// parseReplacement consumes a `{...}` field starting at the opening brace.
func (p *parser) parseReplacement() (Argument, error) {
	fieldStart := p.pos
	p.pos++ // consume '{'

	var arg Argument
	if !p.eof() && p.runes[p.pos] != ':' && p.runes[p.pos] != '}' {
		id, err := p.parseIdentifierRef()
		if err != nil {
			return Argument{}, err
		}
		arg.Identifier = id
	}

	if !p.eof() && p.runes[p.pos] == ':' {
		p.pos++
		opts, err := p.parseOptions()
		if err != nil {
			return Argument{}, err
		}
		arg.Options = opts
	}

	if p.eof() || p.runes[p.pos] != '}' {
		return Argument{}, p.errAt(fieldStart, p.pos+1, ErrUnterminatedReplacement, "expected '}' to close replacement field")
	}
	p.pos++ // consume '}'
	return arg, nil
}

func (p *parser) parseIdentifierRef() (Identifier, error) {
	start := p.pos
	c := p.runes[p.pos]
	if isASCIIDigit(c) {
		n, err := p.parseUint(start)
		if err != nil {
			return Identifier{}, err
		}
		return Identifier{Kind: IdentifierIndex, Index: n}, nil
	}
	name, err := p.parseName(start)
	if err != nil {
		return Identifier{}, err
	}
	return Identifier{Kind: IdentifierName, Name: name}, nil
}

func (p *parser) parseUint(start int) (uint64, error) {
	begin := p.pos
	for !p.eof() && isASCIIDigit(p.runes[p.pos]) {
		p.pos++
	}
	n, err := strconv.ParseUint(string(p.runes[begin:p.pos]), 10, 64)
	if err != nil {
		return 0, p.errAt(start, p.pos, ErrIntegerOverflow, "integer literal does not fit in 64 bits")
	}
	return n, nil
}

func (p *parser) parseName(start int) (string, error) {
	if p.eof() || !isXIDStart(p.runes[p.pos]) {
		return "", p.errAt(start, p.pos+1, ErrInvalidIdentifier, "expected an identifier or a decimal index")
	}
	var b strings.Builder
	b.WriteRune(p.runes[p.pos])
	p.pos++
	for !p.eof() {
		c := p.runes[p.pos]
		if c == zeroWidthJoiner || c == zeroWidthNonJoiner {
			return "", p.errAt(start, p.pos+1, ErrDisallowedCodepoint, "zero-width joiner/non-joiner is not allowed in identifiers")
		}
		if !isXIDContinue(c) {
			break
		}
		b.WriteRune(c)
		p.pos++
	}
	return b.String(), nil
}

// parseOptions parses everything between the ':' and the closing '}':
//
//	[Fill Align] [Sign] ['#'] ['0'] [Width] ['.' Precision] [Trait]
func (p *parser) parseOptions() (Options, error) {
	var opts Options

	if fill, align, ok := p.tryFillAlign(); ok {
		opts.Fill = fill
		opts.Align = align
	} else if align, ok := p.tryAlign(); ok {
		opts.Align = align
	}

	if !p.eof() && isOptionsWhitespace(p.runes[p.pos]) {
		return Options{}, p.errAt(p.pos, p.pos+1, ErrUnexpectedWhitespace, "whitespace is not allowed inside a replacement field")
	}

	if !p.eof() {
		switch p.runes[p.pos] {
		case '+':
			opts.Sign = SignPlus
			p.pos++
		case '-':
			opts.Sign = SignMinus
			p.pos++
		}
	}

	if !p.eof() && p.runes[p.pos] == '#' {
		opts.Alternate = true
		p.pos++
	}

	if !p.eof() && p.runes[p.pos] == '0' {
		opts.ZeroPad = true
		p.pos++
	}

	if !p.eof() && p.runes[p.pos] != '.' && p.runes[p.pos] != '}' {
		if isOptionsWhitespace(p.runes[p.pos]) {
			return Options{}, p.errAt(p.pos, p.pos+1, ErrUnexpectedWhitespace, "whitespace is not allowed inside a replacement field")
		}
		width, err := p.tryParseWidth()
		if err != nil {
			return Options{}, err
		}
		opts.Width = width
	}

	if !p.eof() && p.runes[p.pos] == '.' {
		p.pos++
		prec, err := p.parsePrecision()
		if err != nil {
			return Options{}, err
		}
		opts.Precision = prec
	}

	if !p.eof() && p.runes[p.pos] != '}' {
		trait, err := p.parseTrait()
		if err != nil {
			return Options{}, err
		}
		opts.Trait = trait
	}

	return opts, nil
}

func (p *parser) tryFillAlign() (rune, Align, bool) {
	if p.eof() {
		return 0, AlignNone, false
	}
	fill := p.runes[p.pos]
	if align, ok := alignFromRune(p.peek(1)); ok {
		p.pos += 2
		return fill, align, true
	}
	return 0, AlignNone, false
}

func (p *parser) tryAlign() (Align, bool) {
	if p.eof() {
		return AlignNone, false
	}
	if align, ok := alignFromRune(p.runes[p.pos]); ok {
		p.pos++
		return align, true
	}
	return AlignNone, false
}

func alignFromRune(r rune) (Align, bool) {
	switch r {
	case '<':
		return AlignLeft, true
	case '^':
		return AlignCenter, true
	case '>':
		return AlignRight, true
	default:
		return AlignNone, false
	}
}

// tryParseWidth parses a width count: '*', a decimal integer, or an
// "index$"/"name$" argument reference. A bare identifier with no trailing
// '$' is not a width at all — it is backtracked out and left for
// parseTrait (or, if nothing matches there either, reported as an error by
// the caller that next expects a trait or closing brace).
func (p *parser) tryParseWidth() (*Count, error) {
	if p.eof() {
		return nil, nil
	}
	if p.runes[p.pos] == '*' {
		p.pos++
		return &Count{Kind: CountNextArg}, nil
	}
	return p.tryParseArgRefCount()
}

func (p *parser) parsePrecision() (*Count, error) {
	if !p.eof() && p.runes[p.pos] == '*' {
		p.pos++
		return &Count{Kind: CountNextArg}, nil
	}
	c, err := p.tryParseArgRefCount()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, p.errAt(p.pos, p.pos+1, ErrInvalidOptions, "expected a precision after '.'")
	}
	return c, nil
}

// tryParseArgRefCount attempts to parse a decimal-integer count or an
// "index$"/"name$" argument reference, backtracking to pos unchanged (and
// returning nil, nil) if neither is present — e.g. when what follows is
// actually a trait selector.
func (p *parser) tryParseArgRefCount() (*Count, error) {
	start := p.pos
	if p.eof() {
		return nil, nil
	}
	if isASCIIDigit(p.runes[p.pos]) {
		n, err := p.parseUint(start)
		if err != nil {
			return nil, err
		}
		if !p.eof() && p.runes[p.pos] == '$' {
			p.pos++
			return &Count{Kind: CountArg, Arg: Identifier{Kind: IdentifierIndex, Index: n}}, nil
		}
		return &Count{Kind: CountFixed, Fixed: n}, nil
	}
	if isXIDStart(p.runes[p.pos]) {
		name, err := p.parseName(start)
		if err != nil {
			p.pos = start
			return nil, nil
		}
		if !p.eof() && p.runes[p.pos] == '$' {
			p.pos++
			return &Count{Kind: CountArg, Arg: Identifier{Kind: IdentifierName, Name: name}}, nil
		}
		p.pos = start
		return nil, nil
	}
	return nil, nil
}

func (p *parser) parseTrait() (Trait, error) {
	start := p.pos
	rest := p.runes[p.pos:]
	end := len(rest)
	for i, r := range rest {
		if r == '}' {
			end = i
			break
		}
	}
	token := string(rest[:end])
	trait, ok := traitFromToken(token)
	if !ok {
		return TraitDisplay, p.errAt(start, start+end, ErrInvalidTrait, fmt.Sprintf("unrecognized trait selector %q", token))
	}
	p.pos += end
	return trait, nil
}

func traitFromToken(tok string) (Trait, bool) {
	switch tok {
	case "":
		return TraitDisplay, true
	case "?":
		return TraitDebug, true
	case "x":
		return TraitLowerHex, true
	case "X":
		return TraitUpperHex, true
	case "x?":
		return TraitDebugLowerHex, true
	case "X?":
		return TraitDebugUpperHex, true
	case "o":
		return TraitOctal, true
	case "b":
		return TraitBinary, true
	case "e":
		return TraitLowerExp, true
	case "E":
		return TraitUpperExp, true
	case "p":
		return TraitPointer, true
	default:
		return TraitDisplay, false
	}
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isOptionsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}
