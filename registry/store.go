package registry

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/deferfmt/deferfmt/ids"
)

// crateNameRE bounds what a crate name may look like: an identifier-ish
// token safe to use as a filesystem path component, since it becomes the
// per-crate database's directory name.
var crateNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]{0,63}$`)

// Options configures Open.
type Options struct {
	stateDir string
}

// Option mutates Options.
type Option func(*Options)

// WithStateDir overrides where the registry's SQLite files live, taking
// precedence over $REDEFMT_STATE_DIR and the OS default.
func WithStateDir(dir string) Option {
	return func(o *Options) { o.stateDir = dir }
}

// Store owns the main database (the crate table) and lazily opens a
// CrateStore per crate name as callers ask for one.
type Store struct {
	dir    string
	mainDB *sql.DB

	mu     sync.Mutex
	crates map[string]*CrateStore
}

// Open resolves the state directory, opens (creating if absent) the main
// database, and brings its schema up to date.
func Open(opts ...Option) (*Store, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	dir := ResolveStateDir(o.stateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Kind: ErrStateDir, Op: "open", Err: err}
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "main.sqlite"))
	if err != nil {
		return nil, &Error{Kind: ErrOpen, Op: "open main database", Err: err}
	}
	if err := applyMigrations(db, mainMigrations, "migrations/main"); err != nil {
		db.Close()
		return nil, &Error{Kind: ErrMigrate, Op: "migrate main database", Err: err}
	}

	return &Store{dir: dir, mainDB: db, crates: make(map[string]*CrateStore)}, nil
}

// Close releases the main database handle and every CrateStore opened
// through this Store.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var firstErr error
	for _, cs := range s.crates {
		if err := cs.db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if err := s.mainDB.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// InsertCrate returns the stable CrateId for name, creating a new row the
// first time name is seen (spec §4.5, I2: get-or-create, never a plain
// insert).
func (s *Store) InsertCrate(name string) (ids.CrateId, error) {
	if !crateNameRE.MatchString(name) {
		return 0, &Error{Kind: ErrInvalidName, Op: "insert crate", Err: errors.New(name)}
	}
	hash, err := contentHash([]byte(name))
	if err != nil {
		return 0, &Error{Kind: ErrInsert, Op: "insert crate", Err: err}
	}

	if id, err := s.findCrateByHash(hash); err == nil {
		return id, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return 0, &Error{Kind: ErrLookup, Op: "insert crate", Err: err}
	}

	if _, err := s.mainDB.Exec(`INSERT OR IGNORE INTO crate (name, hash) VALUES (?, ?)`, name, hash); err != nil {
		return 0, &Error{Kind: ErrInsert, Op: "insert crate", Err: err}
	}
	id, err := s.findCrateByHash(hash)
	if err != nil {
		return 0, &Error{Kind: ErrLookup, Op: "insert crate", Err: err}
	}
	return id, nil
}

func (s *Store) findCrateByHash(hash []byte) (ids.CrateId, error) {
	var id ids.CrateId
	err := s.mainDB.QueryRow(`SELECT id FROM crate WHERE hash = ?`, hash).Scan(&id)
	return id, err
}

// FindCrateByID looks up a crate row by its ID.
func (s *Store) FindCrateByID(id ids.CrateId) (CrateRecord, error) {
	var rec CrateRecord
	rec.ID = id
	err := s.mainDB.QueryRow(`SELECT name, hash FROM crate WHERE id = ?`, id).Scan(&rec.Name, &rec.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return CrateRecord{}, &Error{Kind: ErrNotFound, Op: "find crate"}
	}
	if err != nil {
		return CrateRecord{}, &Error{Kind: ErrLookup, Op: "find crate", Err: err}
	}
	return rec, nil
}

// FindCrateByName looks up a crate row by its registered name.
func (s *Store) FindCrateByName(name string) (CrateRecord, error) {
	var rec CrateRecord
	rec.Name = name
	err := s.mainDB.QueryRow(`SELECT id, hash FROM crate WHERE name = ?`, name).Scan(&rec.ID, &rec.Hash)
	if errors.Is(err, sql.ErrNoRows) {
		return CrateRecord{}, &Error{Kind: ErrNotFound, Op: "find crate"}
	}
	if err != nil {
		return CrateRecord{}, &Error{Kind: ErrLookup, Op: "find crate", Err: err}
	}
	return rec, nil
}

// CrateStore returns the per-crate database for name, opening and
// migrating it on first use and caching the handle for subsequent calls.
func (s *Store) CrateStore(name string) (*CrateStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cs, ok := s.crates[name]; ok {
		return cs, nil
	}

	crateDir := filepath.Join(s.dir, "crates", name)
	if err := os.MkdirAll(crateDir, 0o755); err != nil {
		return nil, &Error{Kind: ErrStateDir, Op: "open crate store", Err: err}
	}
	db, err := sql.Open("sqlite", filepath.Join(crateDir, "db.sqlite"))
	if err != nil {
		return nil, &Error{Kind: ErrOpen, Op: "open crate database", Err: err}
	}
	if err := applyMigrations(db, crateMigrations, "migrations/crate"); err != nil {
		db.Close()
		return nil, &Error{Kind: ErrMigrate, Op: "migrate crate database", Err: err}
	}

	cs := &CrateStore{name: name, db: db}
	s.crates[name] = cs
	return cs, nil
}
