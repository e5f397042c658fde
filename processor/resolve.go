package processor

import "github.com/deferfmt/deferfmt/formatstring"

// ArgCapturer is consulted for every named identifier the format string
// references that the caller's ProvidedArgs did not supply. Returning true
// tells the resolver the identifier was captured by borrow from the
// surrounding scope (spec §4.2 pass 2, §9 "unmove expression"); returning
// false leaves the identifier unresolved and the resolver reports
// ErrMissingNamed. A nil Capturer behaves as if every call returns false.
//
// The capturer never hands back a value: this package has no notion of
// argument values, only of argument shape. Producing the actual captured
// expression is the job of the out-of-scope macro front-end (spec §1).
type ArgCapturer func(name string) bool

// ProvidedArgs describes the shape of the argument list the caller actually
// supplied alongside the format string: how many positional arguments, and
// which named arguments (in the order they were written).
type ProvidedArgs struct {
	Positional uint64
	Named      []string
}

// Config tunes which resolution failures are reported. The two "unused"
// checks exist as separate switches because some host ecosystems tolerate
// (or even expect) callers to over-supply arguments; spec §4.2.
type Config struct {
	Capturer               ArgCapturer
	CheckUnusedPositionals bool
	CheckUnusedNamed       bool

	// AppendNewline is carried straight through to the resulting
	// ProcessedFormatString (spec §3.3): the macro front-end sets it for
	// println!-flavored statements and leaves it false for write!-flavored
	// ones. The resolver itself never inspects the format string for a
	// trailing newline.
	AppendNewline bool
}

// DefaultConfig enables both unused-argument checks, matching the
// conservative default a build-time macro front-end should use.
func DefaultConfig() Config {
	return Config{CheckUnusedPositionals: true, CheckUnusedNamed: true}
}

// Process resolves fs against provided into a ProcessedFormatString,
// disambiguating every positional reference to an explicit index and every
// named reference into first-seen order (spec §4.2, §3.3).
func Process(fs formatstring.FormatString, provided ProvidedArgs, cfg Config) (ProcessedFormatString, error) {
	if err := checkProvidedDuplicates(provided.Named); err != nil {
		return ProcessedFormatString{}, err
	}

	r := &resolver{provided: provided, namedIndex: make(map[string]int)}

	segments := make([]Segment, 0, len(fs.Segments))
	for _, seg := range fs.Segments {
		switch seg.Kind {
		case formatstring.SegmentLiteral:
			segments = append(segments, Segment{Kind: SegmentLiteral, Literal: seg.Literal})
		case formatstring.SegmentArgument:
			resolved, err := r.resolveArgument(seg.Argument)
			if err != nil {
				return ProcessedFormatString{}, err
			}
			segments = append(segments, Segment{Kind: SegmentArgument, Argument: resolved})
		}
	}

	if err := r.checkPositionalRange(); err != nil {
		return ProcessedFormatString{}, err
	}

	if cfg.CheckUnusedPositionals && provided.Positional > r.expectedPositionalCount() {
		return ProcessedFormatString{}, &ResolveError{
			Kind:  ErrUnusedPositionals,
			Count: provided.Positional - r.expectedPositionalCount(),
		}
	}

	providedNamed := make(map[string]bool, len(provided.Named))
	for _, n := range provided.Named {
		providedNamed[n] = true
	}
	for _, name := range r.namedOrder {
		if providedNamed[name] {
			continue
		}
		if cfg.Capturer != nil && cfg.Capturer(name) {
			continue
		}
		return ProcessedFormatString{}, &ResolveError{Kind: ErrMissingNamed, Name: name}
	}

	if cfg.CheckUnusedNamed {
		referenced := make(map[string]bool, len(r.namedOrder))
		for _, n := range r.namedOrder {
			referenced[n] = true
		}
		for _, n := range provided.Named {
			if !referenced[n] {
				return ProcessedFormatString{}, &ResolveError{Kind: ErrUnusedNamed, Name: n}
			}
		}
	}

	return ProcessedFormatString{
		Segments:                   segments,
		AppendNewline:              cfg.AppendNewline,
		ExpectedPositionalArgCount: r.expectedPositionalCount(),
		ExpectedNamedArgs:          append([]string(nil), r.namedOrder...),
	}, nil
}

func checkProvidedDuplicates(named []string) error {
	seen := make(map[string]bool, len(named))
	for _, n := range named {
		if seen[n] {
			return &ResolveError{Kind: ErrProvidedDuplicate, Name: n}
		}
		seen[n] = true
	}
	return nil
}

// resolver carries the running state of pass 1 (shape) across the
// left-to-right walk of a FormatString's segments.
type resolver struct {
	provided ProvidedArgs

	nextImplicit   uint64
	maxIndex       int64 // -1 means "no positional reference seen"
	firstOutOfBand *uint64

	namedOrder []string
	namedIndex map[string]int
}

func (r *resolver) expectedPositionalCount() uint64 {
	if r.maxIndex < 0 {
		return 0
	}
	return uint64(r.maxIndex) + 1
}

func (r *resolver) checkPositionalRange() error {
	if r.firstOutOfBand == nil {
		return nil
	}
	return &ResolveError{Kind: ErrInvalidStringPositional, Seen: *r.firstOutOfBand, MaxProvided: r.provided.Positional}
}

func (r *resolver) recordIndex(idx uint64) {
	if int64(idx) > r.maxIndex {
		r.maxIndex = int64(idx)
	}
	if idx >= r.provided.Positional && r.firstOutOfBand == nil {
		v := idx
		r.firstOutOfBand = &v
	}
}

func (r *resolver) recordName(name string) {
	if _, ok := r.namedIndex[name]; ok {
		return
	}
	r.namedIndex[name] = len(r.namedOrder)
	r.namedOrder = append(r.namedOrder, name)
}

func (r *resolver) resolveIdentifier(id formatstring.Identifier) Identifier {
	switch id.Kind {
	case formatstring.IdentifierImplicit:
		idx := r.nextImplicit
		r.nextImplicit++
		r.recordIndex(idx)
		return Identifier{Kind: IdentifierIndex, Index: idx}
	case formatstring.IdentifierIndex:
		r.recordIndex(id.Index)
		return Identifier{Kind: IdentifierIndex, Index: id.Index}
	default: // formatstring.IdentifierName
		r.recordName(id.Name)
		return Identifier{Kind: IdentifierName, Name: id.Name}
	}
}

func (r *resolver) resolveCount(c *formatstring.Count) *Count {
	if c == nil {
		return nil
	}
	switch c.Kind {
	case formatstring.CountFixed:
		return &Count{Kind: CountFixed, Fixed: c.Fixed}
	case formatstring.CountArg:
		return &Count{Kind: CountArg, Arg: r.resolveIdentifier(c.Arg)}
	case formatstring.CountNextArg:
		idx := r.nextImplicit
		r.nextImplicit++
		r.recordIndex(idx)
		return &Count{Kind: CountArg, Arg: Identifier{Kind: IdentifierIndex, Index: idx}}
	default:
		return nil
	}
}

func (r *resolver) resolveArgument(arg formatstring.Argument) (Argument, error) {
	id := r.resolveIdentifier(arg.Identifier)
	opts := Options{
		Fill:      arg.Options.Fill,
		Align:     arg.Options.Align,
		Sign:      arg.Options.Sign,
		Alternate: arg.Options.Alternate,
		ZeroPad:   arg.Options.ZeroPad,
		Width:     r.resolveCount(arg.Options.Width),
		Precision: r.resolveCount(arg.Options.Precision),
		Trait:     arg.Options.Trait,
	}
	return Argument{Identifier: id, Options: opts}, nil
}
