// Package formatstring implements the grammar and parser for deferfmt
// format strings: the compact, Rust-`format!`-flavored mini-language a
// registered print or write statement's text is written in.
//
// # Overview
//
// Parsing operates on character (rune) indices, not byte offsets, so that
// diagnostics line up with what an editor or terminal shows regardless of
// how many bytes a given code point occupies. The parser never allocates
// more than the literal runs and identifier strings it must keep; it does
// not resolve positional/named arguments against a provided-args list —
// that is the job of the sibling processor package. A format string is a
// sequence of literal text interleaved with `{...}` replacement fields,
// each field naming an argument (by position, by name, or implicitly) and
// optionally carrying fill/align/sign/width/precision/trait options.
//
// # Key Types
//
//   - FormatString: the parsed AST — an ordered slice of Segment values,
//     each either a literal run or an Argument.
//   - Argument: one replacement field's Identifier plus its Options.
//   - Options: fill rune, Align, Sign, the `#`/`0` flags, width, precision,
//     and the display Trait (Display, Debug, LowerHex, Binary, ...).
//   - ParseError: a typed, ErrorKind-tagged error carrying the offending
//     character range.
//
// # Usage
//
//	fs, err := formatstring.Parse("{name} scored {score:>5.2}")
//	if err != nil {
//	    var perr *formatstring.ParseError
//	    if errors.As(err, &perr) {
//	        // perr.Kind, perr.CharRange.Start, perr.CharRange.End locate the problem
//	    }
//	}
//
// # Error Handling
//
// Every parse failure is a *ParseError with a stable ErrorKind (unclosed
// brace, invalid identifier, malformed options, ...) and the rune range
// that triggered it; nothing here panics on malformed input.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/processor: resolves a parsed
//     FormatString against provided arguments into the stored,
//     content-hashable ProcessedFormatString.
package formatstring
