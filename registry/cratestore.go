package registry

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deferfmt/deferfmt/ids"
)

// CrateStore is a single crate's database: its print_register,
// write_register, and type_structure_register tables.
type CrateStore struct {
	name string
	db   *sql.DB
}

// Name returns the crate name this store was opened for.
func (c *CrateStore) Name() string { return c.name }

// insertRow is the shared get-or-create body for all three register
// tables: select by content hash, and only on a miss insert then
// re-select, so a racing writer's INSERT OR IGNORE still resolves to the
// same row (spec §4.5, I1/I2).
func insertRow(db *sql.DB, table string, payload any) (ids.ShortId, []byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	hash, err := contentHash(body)
	if err != nil {
		return 0, nil, err
	}

	if id, err := findRowByHash(db, table, hash); err == nil {
		return id, hash, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, nil, err
	}

	if _, err := db.Exec(fmt.Sprintf(`INSERT OR IGNORE INTO %s (hash, payload) VALUES (?, ?)`, table), hash, body); err != nil {
		return 0, nil, err
	}
	id, err := findRowByHash(db, table, hash)
	if err != nil {
		return 0, nil, err
	}
	return id, hash, nil
}

func findRowByHash(db *sql.DB, table string, hash []byte) (ids.ShortId, error) {
	var id ids.ShortId
	err := db.QueryRow(fmt.Sprintf(`SELECT id FROM %s WHERE hash = ?`, table), hash).Scan(&id)
	return id, err
}

func findRowByID(db *sql.DB, table string, id ids.ShortId) ([]byte, []byte, error) {
	var payload, hash []byte
	err := db.QueryRow(fmt.Sprintf(`SELECT payload, hash FROM %s WHERE id = ?`, table), id).Scan(&payload, &hash)
	return payload, hash, err
}

// InsertPrint records a print statement, returning its stable ID.
func (c *CrateStore) InsertPrint(payload PrintStatementPayload) (ids.PrintStatementId, error) {
	id, _, err := insertRow(c.db, "print_register", payload)
	if err != nil {
		return 0, &Error{Kind: ErrInsert, Op: "insert print statement", Err: err}
	}
	return ids.PrintStatementId(id), nil
}

// FindPrintByID looks up a print statement by ID.
func (c *CrateStore) FindPrintByID(id ids.PrintStatementId) (PrintStatementRecord, error) {
	payload, hash, err := findRowByID(c.db, "print_register", ids.ShortId(id))
	if errors.Is(err, sql.ErrNoRows) {
		return PrintStatementRecord{}, &Error{Kind: ErrNotFound, Op: "find print statement"}
	}
	if err != nil {
		return PrintStatementRecord{}, &Error{Kind: ErrLookup, Op: "find print statement", Err: err}
	}
	var p PrintStatementPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return PrintStatementRecord{}, &Error{Kind: ErrLookup, Op: "decode print statement", Err: err}
	}
	return PrintStatementRecord{ID: id, Payload: p, Hash: hash}, nil
}

// InsertWrite records a write statement, returning its stable ID.
func (c *CrateStore) InsertWrite(payload WriteStatementPayload) (ids.WriteStatementId, error) {
	id, _, err := insertRow(c.db, "write_register", payload)
	if err != nil {
		return 0, &Error{Kind: ErrInsert, Op: "insert write statement", Err: err}
	}
	return ids.WriteStatementId(id), nil
}

// FindWriteByID looks up a write statement by ID.
func (c *CrateStore) FindWriteByID(id ids.WriteStatementId) (WriteStatementRecord, error) {
	payload, hash, err := findRowByID(c.db, "write_register", ids.ShortId(id))
	if errors.Is(err, sql.ErrNoRows) {
		return WriteStatementRecord{}, &Error{Kind: ErrNotFound, Op: "find write statement"}
	}
	if err != nil {
		return WriteStatementRecord{}, &Error{Kind: ErrLookup, Op: "find write statement", Err: err}
	}
	var p WriteStatementPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return WriteStatementRecord{}, &Error{Kind: ErrLookup, Op: "decode write statement", Err: err}
	}
	return WriteStatementRecord{ID: id, Payload: p, Hash: hash}, nil
}

// InsertTypeStructure records a type structure, returning its stable ID.
func (c *CrateStore) InsertTypeStructure(payload TypeStructurePayload) (ids.TypeStructureId, error) {
	id, _, err := insertRow(c.db, "type_structure_register", payload)
	if err != nil {
		return 0, &Error{Kind: ErrInsert, Op: "insert type structure", Err: err}
	}
	return ids.TypeStructureId(id), nil
}

// FindTypeStructureByID looks up a type structure by ID.
func (c *CrateStore) FindTypeStructureByID(id ids.TypeStructureId) (TypeStructureRecord, error) {
	payload, hash, err := findRowByID(c.db, "type_structure_register", ids.ShortId(id))
	if errors.Is(err, sql.ErrNoRows) {
		return TypeStructureRecord{}, &Error{Kind: ErrNotFound, Op: "find type structure"}
	}
	if err != nil {
		return TypeStructureRecord{}, &Error{Kind: ErrLookup, Op: "find type structure", Err: err}
	}
	var p TypeStructurePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return TypeStructureRecord{}, &Error{Kind: ErrLookup, Op: "decode type structure", Err: err}
	}
	return TypeStructureRecord{ID: id, Payload: p, Hash: hash}, nil
}
