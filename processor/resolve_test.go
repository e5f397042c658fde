package processor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deferfmt/deferfmt/formatstring"
)

func mustParse(t *testing.T, s string) formatstring.FormatString {
	t.Helper()
	fs, err := formatstring.Parse(s)
	require.NoError(t, err)
	return fs
}

func TestProcessSimpleCaptured(t *testing.T) {
	fs := mustParse(t, "hello {name}!")
	captured := map[string]bool{"name": true}
	cfg := DefaultConfig()
	cfg.Capturer = func(name string) bool { return captured[name] }

	pfs, err := Process(fs, ProvidedArgs{}, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), pfs.ExpectedPositionalArgCount)
	assert.Equal(t, []string{"name"}, pfs.ExpectedNamedArgs)
}

func TestProcessPositionalDedupe(t *testing.T) {
	fs := mustParse(t, "{0} {0} {1}")

	pfs, err := Process(fs, ProvidedArgs{Positional: 2}, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, uint64(2), pfs.ExpectedPositionalArgCount)

	_, err = Process(fs, ProvidedArgs{Positional: 1}, DefaultConfig())
	require.Error(t, err)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrInvalidStringPositional, rerr.Kind)
	assert.Equal(t, uint64(1), rerr.Seen)
	assert.Equal(t, uint64(1), rerr.MaxProvided)
}

func TestProcessWidthByArg(t *testing.T) {
	fs := mustParse(t, "{x:width$}")
	pfs, err := Process(fs, ProvidedArgs{Named: []string{"x", "width"}}, DefaultConfig())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"x", "width"}, pfs.ExpectedNamedArgs)
}

func TestProcessMissingNamedWithoutCapturer(t *testing.T) {
	fs := mustParse(t, "{count}")
	_, err := Process(fs, ProvidedArgs{}, DefaultConfig())
	require.Error(t, err)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrMissingNamed, rerr.Kind)
	assert.Equal(t, "count", rerr.Name)
}

func TestProcessProvidedDuplicate(t *testing.T) {
	fs := mustParse(t, "{a} {b}")
	_, err := Process(fs, ProvidedArgs{Named: []string{"a", "a", "b"}}, DefaultConfig())
	require.Error(t, err)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrProvidedDuplicate, rerr.Kind)
	assert.Equal(t, "a", rerr.Name)
}

func TestProcessUnusedPositionalsDisableable(t *testing.T) {
	fs := mustParse(t, "{0}")

	_, err := Process(fs, ProvidedArgs{Positional: 2}, DefaultConfig())
	require.Error(t, err)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrUnusedPositionals, rerr.Kind)
	assert.Equal(t, uint64(1), rerr.Count)

	cfg := DefaultConfig()
	cfg.CheckUnusedPositionals = false
	_, err = Process(fs, ProvidedArgs{Positional: 2}, cfg)
	require.NoError(t, err)
}

func TestProcessUnusedNamedDisableable(t *testing.T) {
	fs := mustParse(t, "{a}")

	_, err := Process(fs, ProvidedArgs{Named: []string{"a", "b"}}, DefaultConfig())
	require.Error(t, err)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, ErrUnusedNamed, rerr.Kind)
	assert.Equal(t, "b", rerr.Name)

	cfg := DefaultConfig()
	cfg.CheckUnusedNamed = false
	_, err = Process(fs, ProvidedArgs{Named: []string{"a", "b"}}, cfg)
	require.NoError(t, err)
}

func TestProcessEmptyFormatString(t *testing.T) {
	fs := mustParse(t, "")
	pfs, err := Process(fs, ProvidedArgs{}, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, pfs.Segments)
	assert.Equal(t, uint64(0), pfs.ExpectedPositionalArgCount)
	assert.Empty(t, pfs.ExpectedNamedArgs)
}

func TestProcessResolverCompleteness(t *testing.T) {
	fs := mustParse(t, "{} {name} {1}")
	pfs, err := Process(fs, ProvidedArgs{Positional: 2, Named: []string{"name"}}, DefaultConfig())
	require.NoError(t, err)
	for _, seg := range pfs.Segments {
		if seg.Kind != SegmentArgument {
			continue
		}
		switch seg.Argument.Identifier.Kind {
		case IdentifierIndex:
			assert.Less(t, seg.Argument.Identifier.Index, pfs.ExpectedPositionalArgCount)
		case IdentifierName:
			assert.Contains(t, pfs.ExpectedNamedArgs, seg.Argument.Identifier.Name)
		}
	}
}

func TestProcessDeterministicCanonicalJSON(t *testing.T) {
	fsA := mustParse(t, "{x} plain text")
	fsB := mustParse(t, "{x} plain text")

	pfsA, err := Process(fsA, ProvidedArgs{Named: []string{"x"}}, DefaultConfig())
	require.NoError(t, err)
	pfsB, err := Process(fsB, ProvidedArgs{Named: []string{"x"}}, DefaultConfig())
	require.NoError(t, err)

	jsonA, err := pfsA.CanonicalJSON()
	require.NoError(t, err)
	jsonB, err := pfsB.CanonicalJSON()
	require.NoError(t, err)
	assert.Equal(t, jsonA, jsonB)
}
