package formatstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	fs, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, fs.Segments)
}

func TestParseEscapesOnly(t *testing.T) {
	fs, err := Parse("{{{{}}")
	require.NoError(t, err)
	require.Len(t, fs.Segments, 1)
	assert.Equal(t, SegmentLiteral, fs.Segments[0].Kind)
	assert.Equal(t, "{{}", fs.Segments[0].Literal)
}

func TestParseImplicitPositional(t *testing.T) {
	fs, err := Parse("hello {} world {}")
	require.NoError(t, err)
	require.Len(t, fs.Segments, 4)
	assert.Equal(t, IdentifierImplicit, fs.Segments[1].Argument.Identifier.Kind)
	assert.Equal(t, IdentifierImplicit, fs.Segments[3].Argument.Identifier.Kind)
}

func TestParseExplicitIndexZero(t *testing.T) {
	fs, err := Parse("{0}")
	require.NoError(t, err)
	require.Len(t, fs.Segments, 1)
	arg := fs.Segments[0].Argument
	assert.Equal(t, IdentifierIndex, arg.Identifier.Kind)
	assert.Equal(t, uint64(0), arg.Identifier.Index)
}

func TestParseNamedArgument(t *testing.T) {
	fs, err := Parse("{count}")
	require.NoError(t, err)
	arg := fs.Segments[0].Argument
	assert.Equal(t, IdentifierName, arg.Identifier.Kind)
	assert.Equal(t, "count", arg.Identifier.Name)
}

func TestParseWidthAndPrecisionSameNamedArg(t *testing.T) {
	fs, err := Parse("{:w$.w$}")
	require.NoError(t, err)
	arg := fs.Segments[0].Argument
	require.NotNil(t, arg.Options.Width)
	require.NotNil(t, arg.Options.Precision)
	assert.Equal(t, CountArg, arg.Options.Width.Kind)
	assert.Equal(t, "w", arg.Options.Width.Arg.Name)
	assert.Equal(t, CountArg, arg.Options.Precision.Kind)
	assert.Equal(t, "w", arg.Options.Precision.Arg.Name)
}

func TestParseWidthStarThenTrait(t *testing.T) {
	fs, err := Parse("{:*x}")
	require.NoError(t, err)
	arg := fs.Segments[0].Argument
	require.NotNil(t, arg.Options.Width)
	assert.Equal(t, CountNextArg, arg.Options.Width.Kind)
	assert.Equal(t, TraitLowerHex, arg.Options.Trait)
}

func TestParseDebugHexTraits(t *testing.T) {
	for tok, want := range map[string]Trait{"x?": TraitDebugLowerHex, "X?": TraitDebugUpperHex} {
		fs, err := Parse("{:" + tok + "}")
		require.NoError(t, err)
		assert.Equal(t, want, fs.Segments[0].Argument.Options.Trait)
	}
}

func TestParseFillAlignSignAlternateZero(t *testing.T) {
	fs, err := Parse("{:*>+#08x}")
	require.NoError(t, err)
	opts := fs.Segments[0].Argument.Options
	assert.Equal(t, '*', opts.Fill)
	assert.Equal(t, AlignRight, opts.Align)
	assert.Equal(t, SignPlus, opts.Sign)
	assert.True(t, opts.Alternate)
	assert.True(t, opts.ZeroPad)
	require.NotNil(t, opts.Width)
	assert.Equal(t, CountFixed, opts.Width.Kind)
	assert.Equal(t, uint64(8), opts.Width.Fixed)
	assert.Equal(t, TraitLowerHex, opts.Trait)
}

func TestParseUnmatchedBraceErrors(t *testing.T) {
	_, err := Parse("oops }")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnmatchedBrace, perr.Kind)
}

func TestParseUnterminatedReplacementErrors(t *testing.T) {
	_, err := Parse("{0")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrUnterminatedReplacement, perr.Kind)
}

func TestParseZeroWidthJoinerRejected(t *testing.T) {
	_, err := Parse("{a‍b}")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrDisallowedCodepoint, perr.Kind)
}

func TestParseWhitespaceInsideFieldRejected(t *testing.T) {
	_, err := Parse("{: >5}x")
	require.NoError(t, err) // space is a valid fill when followed by align, not whitespace noise
	_, err = Parse("{:5 x}")
	require.Error(t, err)
}

func TestParseInvalidTrait(t *testing.T) {
	_, err := Parse("{:z}")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ErrInvalidTrait, perr.Kind)
}

func TestParseCharRangesAreRuneIndexed(t *testing.T) {
	// multi-byte literal before the bad brace must not shift the char index
	_, err := Parse("café }")
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 5, perr.CharRange.Start)
}
