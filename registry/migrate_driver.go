package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// sqliteDriver adapts a *sql.DB opened against modernc.org/sqlite to
// golang-migrate's database.Driver contract. golang-migrate ships a driver
// for the cgo mattn/go-sqlite3 binding; this module stays CGO-free so the
// producer side cross-compiles to embedded targets without a C toolchain,
// so schema application is driven against modernc's pure-Go driver through
// this small adapter instead.
type sqliteDriver struct {
	db *sql.DB
}

func newSQLiteDriver(db *sql.DB) (database.Driver, error) {
	d := &sqliteDriver{db: db}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER NOT NULL PRIMARY KEY, dirty BOOLEAN NOT NULL)`); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *sqliteDriver) Open(url string) (database.Driver, error) {
	return nil, errors.New("registry: sqliteDriver is constructed directly, not via Open")
}

// Close is a no-op: the *sql.DB handle is owned by the caller that opened
// it, not by the migration run.
func (d *sqliteDriver) Close() error { return nil }

// Lock and Unlock are no-ops: each Store/CrateStore owns its database
// exclusively within the process, and the registry makes no cross-process
// concurrency claim.
func (d *sqliteDriver) Lock() error   { return nil }
func (d *sqliteDriver) Unlock() error { return nil }

func (d *sqliteDriver) Run(migration io.Reader) error {
	b, err := io.ReadAll(migration)
	if err != nil {
		return err
	}
	_, err = d.db.Exec(string(b))
	return err
}

func (d *sqliteDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		tx.Rollback()
		return err
	}
	if version >= 0 {
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirty); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (d *sqliteDriver) Version() (int, bool, error) {
	var version int
	var dirty bool
	err := d.db.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return version, dirty, nil
}

func (d *sqliteDriver) Drop() error {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table'`)
	if err != nil {
		return err
	}
	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return err
		}
		tables = append(tables, name)
	}
	rows.Close()
	for _, t := range tables {
		if _, err := d.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %q`, t)); err != nil {
			return err
		}
	}
	_, err = d.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER NOT NULL PRIMARY KEY, dirty BOOLEAN NOT NULL)`)
	return err
}

// applyMigrations runs every forward migration rooted at dir (an embedded
// filesystem produced by go:embed) against db, in order, stopping early
// when there is nothing new to apply.
func applyMigrations(db *sql.DB, fsys fs.FS, dir string) error {
	driver, err := newSQLiteDriver(db)
	if err != nil {
		return err
	}
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return err
		}
		logger.Debug("registry: schema already up to date", "dir", dir)
		return nil
	}
	logger.Info("registry: migrations applied", "dir", dir)
	return nil
}
