// Package ids provides the small value types shared across the deferfmt
// stack: the short numeric handles that identify crates and registered
// statements, the per-frame stamp, the negotiated pointer width, and the
// producer-side severity level.
//
// # Overview
//
// None of these types allocate and all of them round-trip through SQLite
// INTEGER columns and the wire codec unchanged, so they live in one leaf
// package that every other package in this module depends on — nothing in
// here imports anything else in this module.
//
// # Key Types
//
//   - ShortId: the 16-bit handle the registry assigns to any deduplicated
//     row. CrateId, PrintStatementId, WriteStatementId, and
//     TypeStructureId are distinct named types over it, so a value typed
//     for one register table can't be passed where another is expected.
//   - Stamp: an opaque 64-bit per-producer counter or wall-clock value,
//     carried through decoding unmodified.
//   - PointerWidth: the negotiated 16/32/64-bit width a frame's header
//     selects, governing every length hint's wire size.
//   - Level: the producer-side severity a print statement is registered
//     at (Trace through Error).
//
// # Usage
//
// Every *Id type implements fmt.Stringer, database/sql/driver.Valuer, and
// sql.Scanner, so it binds directly to a SQLite column:
//
//	var id ids.PrintStatementId
//	row.Scan(&id)
//	db.Exec(`SELECT * FROM print_register WHERE id = ?`, id)
//
// # Error Handling
//
// Scan returns a plain error, not a typed one, when the source value
// can't be interpreted as an in-range id: these failures indicate a
// corrupt or foreign database row, not a condition a caller branches on.
//
// # Related Packages
//
//   - github.com/deferfmt/deferfmt/registry: assigns and persists every
//     *Id type this package defines.
//   - github.com/deferfmt/deferfmt/wire: encodes ShortId-derived values
//     and PointerWidth on the wire.
package ids
