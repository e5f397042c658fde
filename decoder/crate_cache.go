package decoder

import (
	"github.com/deferfmt/deferfmt/ids"
	"github.com/deferfmt/deferfmt/registry"
)

// crateHandle is what a CrateCache hit resolves to: the crate's main-table
// row plus its already-opened per-crate database handle.
type crateHandle struct {
	record registry.CrateRecord
	store  *registry.CrateStore
}

// CrateCache loads and caches a crate's record and per-crate database
// handle once per CrateId, as spec §4.6 step 3 describes.
type CrateCache struct {
	cache *Cache[ids.CrateId, crateHandle]
	reg   *registry.Store
}

// NewCrateCache returns a CrateCache backed by reg.
func NewCrateCache(reg *registry.Store) *CrateCache {
	return &CrateCache{cache: NewCache[ids.CrateId, crateHandle](), reg: reg}
}

func (c *CrateCache) resolve(id ids.CrateId) (*crateHandle, error) {
	return c.cache.GetOrLoad(id, func(id ids.CrateId) (crateHandle, error) {
		logger.Debug("decoder: crate cache miss", "crate", uint16(id))
		rec, err := c.reg.FindCrateByID(id)
		if err != nil {
			return crateHandle{}, &Error{Kind: ErrUnknownCrate, CrateID: uint16(id), Err: err}
		}
		store, err := c.reg.CrateStore(rec.Name)
		if err != nil {
			return crateHandle{}, err
		}
		return crateHandle{record: rec, store: store}, nil
	})
}
