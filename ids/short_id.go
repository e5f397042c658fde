package ids

import (
	"database/sql/driver"
	"fmt"
)

// ShortId is the 16-bit handle the registry assigns to a deduplicated row.
// It is never produced by the caller; the registry hands one out on first
// insert and the value is stable across reopenings (see registry.Store).
type ShortId uint16

// String implements fmt.Stringer as the plain decimal integer, matching the
// wire encoding and the registry's INTEGER PRIMARY KEY column.
func (id ShortId) String() string { return fmt.Sprintf("%d", uint16(id)) }

// Value implements driver.Valuer so a ShortId can be bound directly as a
// query argument.
func (id ShortId) Value() (driver.Value, error) { return int64(id), nil }

// Scan implements sql.Scanner, accepting the int64 SQLite hands back for an
// INTEGER column.
func (id *ShortId) Scan(src any) error {
	n, err := scanInt64(src)
	if err != nil {
		return fmt.Errorf("ids: scan ShortId: %w", err)
	}
	if n < 0 || n > 0xFFFF {
		return fmt.Errorf("ids: ShortId %d out of range", n)
	}
	*id = ShortId(n)
	return nil
}

func scanInt64(src any) (int64, error) {
	switch v := src.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("unsupported source type %T", src)
	}
}

// CrateId identifies a row in the registry's main crate table.
type CrateId ShortId

func (id CrateId) String() string                { return ShortId(id).String() }
func (id CrateId) Value() (driver.Value, error)  { return ShortId(id).Value() }
func (id *CrateId) Scan(src any) error            { return (*ShortId)(id).Scan(src) }

// PrintStatementId identifies a row in a crate's print_register table.
type PrintStatementId ShortId

func (id PrintStatementId) String() string               { return ShortId(id).String() }
func (id PrintStatementId) Value() (driver.Value, error) { return ShortId(id).Value() }
func (id *PrintStatementId) Scan(src any) error           { return (*ShortId)(id).Scan(src) }

// WriteStatementId identifies a row in a crate's write_register table.
type WriteStatementId ShortId

func (id WriteStatementId) String() string               { return ShortId(id).String() }
func (id WriteStatementId) Value() (driver.Value, error) { return ShortId(id).Value() }
func (id *WriteStatementId) Scan(src any) error           { return (*ShortId)(id).Scan(src) }

// TypeStructureId identifies a row in a crate's type_structure_register table.
type TypeStructureId ShortId

func (id TypeStructureId) String() string               { return ShortId(id).String() }
func (id TypeStructureId) Value() (driver.Value, error) { return ShortId(id).Value() }
func (id *TypeStructureId) Scan(src any) error           { return (*ShortId)(id).Scan(src) }

// Stamp is an opaque 64-bit per-producer counter or wall-clock value. The
// decoder never interprets it beyond carrying it through to a renderer.
type Stamp uint64
