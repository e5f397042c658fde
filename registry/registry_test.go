package registry

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deferfmt/deferfmt/formatstring"
	"github.com/deferfmt/deferfmt/processor"
)

func TestResolveStateDirPrecedence(t *testing.T) {
	assert.Equal(t, "/explicit", ResolveStateDir("/explicit"))

	t.Setenv("REDEFMT_STATE_DIR", "/from-env")
	assert.Equal(t, "/from-env", ResolveStateDir(""))
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(WithStateDir(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreInsertCrateDedupe(t *testing.T) {
	s := openTestStore(t)

	id1, err := s.InsertCrate("my_crate")
	require.NoError(t, err)
	id2, err := s.InsertCrate("my_crate")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	other, err := s.InsertCrate("other_crate")
	require.NoError(t, err)
	assert.NotEqual(t, id1, other)

	rec, err := s.FindCrateByID(id1)
	require.NoError(t, err)
	assert.Equal(t, "my_crate", rec.Name)
}

func TestStoreInsertCrateRejectsBadName(t *testing.T) {
	s := openTestStore(t)
	_, err := s.InsertCrate("not a valid name!")
	require.Error(t, err)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrInvalidName, rerr.Kind)
}

func TestStoreFindCrateNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.FindCrateByName("does_not_exist")
	require.Error(t, err)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrNotFound, rerr.Kind)
}

func testProcessedFormat(t *testing.T, literal string) processor.ProcessedFormatString {
	t.Helper()
	fs, err := formatstring.Parse(literal)
	require.NoError(t, err)
	pfs, err := processor.Process(fs, processor.ProvidedArgs{Positional: 1}, processor.DefaultConfig())
	require.NoError(t, err)
	return pfs
}

func TestCrateStoreInsertPrintDedupe(t *testing.T) {
	s := openTestStore(t)
	cs, err := s.CrateStore("my_crate")
	require.NoError(t, err)

	payload := PrintStatementPayload{
		Location: "src/main.rs:10",
		Format:   testProcessedFormat(t, "hello {}"),
	}

	id1, err := cs.InsertPrint(payload)
	require.NoError(t, err)
	id2, err := cs.InsertPrint(payload)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	rec, err := cs.FindPrintByID(id1)
	require.NoError(t, err)
	assert.Equal(t, payload.Location, rec.Payload.Location)
}

func TestCrateStoreInsertPrintDistinguishesByFormat(t *testing.T) {
	s := openTestStore(t)
	cs, err := s.CrateStore("my_crate")
	require.NoError(t, err)

	id1, err := cs.InsertPrint(PrintStatementPayload{Format: testProcessedFormat(t, "hello {}")})
	require.NoError(t, err)
	id2, err := cs.InsertPrint(PrintStatementPayload{Format: testProcessedFormat(t, "goodbye {}")})
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
}

func TestCrateStoreInsertTypeStructure(t *testing.T) {
	s := openTestStore(t)
	cs, err := s.CrateStore("my_crate")
	require.NoError(t, err)

	payload := TypeStructurePayload{
		Name: "Point",
		Variant: TypeStructureVariant{
			Kind:   VariantNamed,
			Fields: []string{"x", "y"},
		},
	}
	id, err := cs.InsertTypeStructure(payload)
	require.NoError(t, err)

	rec, err := cs.FindTypeStructureByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Point", rec.Payload.Name)
	assert.Equal(t, []string{"x", "y"}, rec.Payload.Variant.Fields)
}

func TestCrateStoreFindMissingReturnsNotFound(t *testing.T) {
	s := openTestStore(t)
	cs, err := s.CrateStore("my_crate")
	require.NoError(t, err)

	_, err = cs.FindWriteByID(999)
	require.Error(t, err)
	var rerr *Error
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, ErrNotFound, rerr.Kind)
}

func TestStoreCratesPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(WithStateDir(dir))
	require.NoError(t, err)
	id, err := s1.InsertCrate("persisted")
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(WithStateDir(dir))
	require.NoError(t, err)
	defer s2.Close()

	rec, err := s2.FindCrateByID(id)
	require.NoError(t, err)
	assert.Equal(t, "persisted", rec.Name)
	assert.Equal(t, filepath.Join(dir, "main.sqlite"), filepath.Join(dir, "main.sqlite"))
}
