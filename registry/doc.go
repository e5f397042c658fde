// Package registry implements the on-disk, content-addressed store that
// deduplicates print statements, write statements, and type structures by
// hash.
//
// # Overview
//
// A Store owns the main database (the crate table, one row per
// instrumented binary or library); each crate gets its own database
// opened on demand through (*Store).CrateStore, holding that crate's
// print_register, write_register, and type_structure_register tables.
// Every insert is get-or-create by content hash: the caller always gets
// back a stable, 16-bit ID, whether this is the first time the payload was
// seen or the thousandth, and a concurrent insert of the same payload
// converges on the same row rather than racing a duplicate into existence.
// Schemas evolve forward-only through embedded golang-migrate migrations;
// there is no downgrade path exposed outside tests.
//
// # Key Types
//
//   - Store: the main database handle, plus a cache of every CrateStore
//     opened so far.
//   - CrateStore: one crate's per-statement-kind register tables.
//   - CrateRecord, PrintStatementRecord, WriteStatementRecord,
//     TypeStructureRecord: the decoded form of a register row, each
//     pairing a stable ID with its content hash and payload.
//   - Options / Option: functional options to Open, currently just
//     WithStateDir.
//   - Error: an ErrorKind-tagged error (StateDir, Open, Migrate,
//     InvalidName, Insert, Lookup, NotFound).
//
// # Usage
//
//	store, err := registry.Open(registry.WithStateDir("/var/lib/deferfmt"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	crateID, err := store.InsertCrate("billing-service")
//	crate, err := store.CrateStore("billing-service")
//
//	printID, err := crate.InsertPrint(registry.PrintStatementPayload{
//	    Format: processedFormatString,
//	})
//
// With no explicit state directory, Open resolves one from
// $REDEFMT_STATE_DIR, falling back to the XDG state home
// (registry.ResolveStateDir implements this precedence directly and is
// exported so callers can preview where Open would write without opening
// anything).
//
// # On-Disk Layout
//
// Under the resolved state directory:
//
//	<state-dir>/main.sqlite              # the crate table
//	<state-dir>/crates/<name>/db.sqlite   # one per crate, lazily created
//
// Splitting storage this way keeps one crate's growth from bloating a
// lookup against another crate's statements, and lets a crate's database
// be archived or deleted independently of the main one.
//
// # Error Handling
//
// Every failure is a *registry.Error carrying a stable ErrorKind and,
// via Unwrap, the underlying database/sql or golang-migrate error. A
// lookup miss is ErrNotFound, never a silently-zero-value return — callers
// always get a typed signal rather than having to infer "not found" from
// a zero ID that could otherwise also be a new ID.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/ids: the ID types every record is
//     keyed by.
//   - github.com/deferfmt/deferfmt/processor: supplies the
//     ProcessedFormatString payloads print and write statements store.
//   - github.com/deferfmt/deferfmt/decoder: the only consumer of this
//     package's Find* lookups; it never calls an Insert* method.
package registry
