// Package processor resolves a parsed formatstring.FormatString against a
// caller's provided arguments into a ProcessedFormatString: a stable,
// deterministically-serializable form with every positional reference
// disambiguated to an explicit index, every named reference deduplicated
// into first-seen order, and every width/precision count resolved the same
// way.
//
// # Overview
//
// This is the form that gets hashed and stored in the registry; the
// producer and decoder never see a raw FormatString. Resolution walks the
// format string once, left to right, assigning explicit indices to
// implicit `{}` references, recording every name seen, and building the
// final Argument list; the caller's ProvidedArgs are then checked against
// what was actually referenced.
//
// # Key Types
//
//   - ProcessedFormatString: Segments plus AppendNewline and the expected
//     positional/named argument shape, serializable via CanonicalJSON for
//     content hashing.
//   - Config: which "unused argument" checks to enforce, the
//     AppendNewline flag to carry through, and an optional ArgCapturer.
//   - ArgCapturer: a caller hook answering whether a named identifier not
//     present in ProvidedArgs was captured by borrow from the surrounding
//     scope; this package never inspects argument values, only shape.
//   - ResolveError: an ErrorKind-tagged error for every way resolution
//     can fail (invalid positional, duplicate provided, unused
//     positional/named, missing named).
//
// # Usage
//
//	fs, _ := formatstring.Parse("{} logged in as {user}")
//	pfs, err := processor.Process(fs, processor.ProvidedArgs{
//	    Positional: 1,
//	    Named:      []string{"user"},
//	}, processor.DefaultConfig())
//	if err != nil {
//	    var rerr *processor.ResolveError
//	    if errors.As(err, &rerr) {
//	        // rerr.Kind identifies which check failed
//	    }
//	}
//	hash, _ := pfs.CanonicalJSON()
//
// # Error Handling
//
// Every failure is a *ResolveError carrying a stable ErrorKind and the
// fields relevant to that kind (Seen/MaxProvided, Count, or Name); nothing
// here panics on a malformed provided-args list.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/formatstring: supplies the FormatString
//     this package resolves.
//   - github.com/deferfmt/deferfmt/registry: stores and content-hashes the
//     ProcessedFormatString this package produces.
package processor
