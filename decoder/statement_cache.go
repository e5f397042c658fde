package decoder

import "github.com/deferfmt/deferfmt/ids"

// statementKey identifies a statement row scoped to its owning crate: the
// same numeric ShortId in two different crates' register tables is a
// different statement.
type statementKey struct {
	Crate ids.CrateId
	ID    ids.ShortId
}

// StatementCache caches rows of one register table (print, write, or
// type-structure) keyed by (CrateId, ShortId), generic over the row type
// T (spec §4.6: "StatementCache<T>").
type StatementCache[T any] struct {
	cache *Cache[statementKey, T]
}

// NewStatementCache returns an empty StatementCache.
func NewStatementCache[T any]() *StatementCache[T] {
	return &StatementCache[T]{cache: NewCache[statementKey, T]()}
}

// Resolve returns the cached row for (crate, id), calling load on a miss.
func (c *StatementCache[T]) Resolve(crate ids.CrateId, id ids.ShortId, load func() (T, error)) (*T, error) {
	return c.cache.GetOrLoad(statementKey{Crate: crate, ID: id}, func(k statementKey) (T, error) {
		logger.Debug("decoder: statement cache miss", "crate", uint16(k.Crate), "id", uint16(k.ID))
		return load()
	})
}
