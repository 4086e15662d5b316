package sessioncache

// cache.go is the public façade: it owns the backing slab and the two
// indices threaded through it (internal/bst, internal/lru), and exposes
// the two entry points a TLS server actually calls, Save and Load. The
// shape mirrors the teacher's pkg/cache.go constructor/Option pattern
// (compare github.com/Voskan/arena-cache's Cache[K,V]/New), generalized
// from a generic sharded map+CLOCK-Pro cache to a single, non-generic,
// slab-resident LRU+tree cache with a fixed 100-byte entry.
//
// © 2025 session-cache authors. MIT License.

import (
	"go.uber.org/zap"

	"github.com/voskan/session-cache/internal/bst"
	"github.com/voskan/session-cache/internal/keymask"
	"github.com/voskan/session-cache/internal/lru"
	"github.com/voskan/session-cache/internal/onceowner"
	"github.com/voskan/session-cache/internal/slot"
)

// ServerContext is the opaque collaborator a Cache draws its indexing
// secret from. It is modeled as an interface rather than a concrete type
// so the TLS server's own RNG and hash-negotiation machinery can be
// plugged in directly; the cache never seeds its own randomness.
type ServerContext interface {
	// RandomBytes fills out with cryptographically strong random data. It
	// is called on the first Save, and again on each later Save until one
	// call succeeds.
	RandomBytes(out []byte) error

	// PreferredHash names the hash primitive the cache should use to key
	// its MAC. Consulted at the same time as RandomBytes.
	PreferredHash() keymask.Hash
}

// SessionParams carries a TLS session's resumption material across the
// Save/Load boundary. For Load, only SessionID need be populated on
// entry; the remaining fields are filled in on a hit.
type SessionParams struct {
	SessionID    []byte // exactly 32 bytes
	Version      uint16
	CipherSuite  uint16
	MasterSecret []byte // exactly 48 bytes
}

// Stats is a point-in-time snapshot of cache-wide counters, returned by
// Snapshot. It never blocks a concurrent Save/Load beyond the single-
// owner guard already required by the cache's contract.
type Stats struct {
	Saves          uint64
	SaveCollisions uint64
	LoadHits       uint64
	LoadMisses     uint64
	Evictions      uint64
	OccupiedSlots  int64
	Capacity       int64
	Initialized    bool
}

// Cache is a bounded, fixed-capacity, single-owner TLS session cache
// backed by one caller-supplied byte slab. See SPEC_FULL.md §3-§5 for
// the invariants every exported method preserves.
type Cache struct {
	store []byte

	storePtr uint32 // next free offset; entries occupy [0, storePtr)
	list     lru.List
	root     uint32 // tree root address, or slot.NullAddr

	masker    *keymask.Masker
	initDone  bool
	serverCtx ServerContext

	guard onceowner.Guard

	cfg     *config
	metrics metricsSink

	saves, collisions, hits, misses, evictions uint64
	occupied                                   int64
}

// New builds a Cache over store. The slab is borrowed, not copied or
// owned: the caller must keep it alive and untouched for the Cache's
// lifetime. serverCtx supplies the randomness and hash choice consumed
// on the first Save; it must not be nil.
//
// A store shorter than one slot (100 bytes) is not an error: per
// SPEC_FULL.md §7, Save and Load on such a Cache are permanent no-ops,
// matching the governing spec's silent-degradation table exactly. New
// only rejects conditions the spec doesn't model at all: a nil
// ServerContext, or a store too large for a 32-bit slab address to
// span.
func New(store []byte, serverCtx ServerContext, opts ...Option) (*Cache, error) {
	if serverCtx == nil {
		return nil, ErrNilServerContext
	}
	if uint64(len(store)) > uint64(slot.NullAddr) {
		return nil, ErrStoreTooLarge
	}

	cfg := defaultConfig()
	applyOptions(cfg, opts)

	c := &Cache{
		store:     store,
		storePtr:  0,
		list:      lru.List{Head: slot.NullAddr, Tail: slot.NullAddr},
		root:      slot.NullAddr,
		serverCtx: serverCtx,
		cfg:       cfg,
		metrics:   newMetricsSink(cfg.registry),
	}

	cfg.logger.Debug("session cache constructed",
		zap.Int("store_bytes", len(store)),
		zap.Int("capacity_slots", len(store)/slot.Size),
	)

	return c, nil
}

// capacitySlots returns how many slots the backing store can ever hold.
func (c *Cache) capacitySlots() int64 {
	return int64(len(c.store) / slot.Size)
}

// Save records a completed handshake's session parameters, as described
// by SPEC_FULL.md §4.5. Its only error is ErrRandomSourceFailed, returned
// when the indexing secret cannot be drawn; a store too small to hold one
// slot, an indexed-key collision, and LRU-tail eviction are all handled
// silently and return nil.
func (c *Cache) Save(params SessionParams) error {
	defer c.guard.Enter("Save")()

	if len(c.store) < slot.Size {
		return nil
	}

	if !c.initDone {
		var key [keymask.KeyLen]byte
		if err := c.serverCtx.RandomBytes(key[:]); err != nil {
			c.cfg.logger.Error("session cache: failed to seed indexing secret", zap.Error(err))
			return ErrRandomSourceFailed
		}
		c.masker = keymask.New(key, c.serverCtx.PreferredHash())
		c.initDone = true
		c.cfg.logger.Debug("session cache initialized", zap.Int("capacity_slots", int(c.capacitySlots())))
	}

	indexedKey := c.masker.Mask(params.SessionID)

	if found, _ := bst.Find(c.store, &c.root, indexedKey[:]); found != slot.NullAddr {
		c.collisions++
		c.metrics.incSaveCollision()
		return nil
	}

	var addr uint32
	if c.storePtr+slot.Size <= uint32(len(c.store)) {
		addr = c.storePtr
		c.storePtr += slot.Size
		c.occupied++
	} else {
		addr = lru.EvictTail(c.store, &c.list)
		bst.Unlink(c.store, &c.root, addr)
		c.evictions++
		c.metrics.incEviction()
		c.cfg.logger.Debug("session cache evicted LRU tail", zap.Uint32("slot_addr", addr))
		if c.cfg.ejectObserver != nil {
			c.cfg.ejectObserver(addr, ReasonCapacity)
		}
	}

	_, attachAt := bst.Find(c.store, &c.root, indexedKey[:])
	slot.Init(c.store, addr)
	attachAt.Attach(addr)

	lru.PushFront(c.store, &c.list, addr)

	slot.SetIndexedKey(c.store, addr, indexedKey[:])
	slot.SetMasterSecret(c.store, addr, params.MasterSecret)
	slot.SetVersion(c.store, addr, params.Version)
	slot.SetCipherSuite(c.store, addr, params.CipherSuite)

	c.saves++
	c.metrics.incSave()
	c.metrics.setOccupancy(c.occupied)
	return nil
}

// Load fills params with a previously saved session's parameters, keyed
// by params.SessionID, and reports whether the session was found. On a
// hit, the matched entry is promoted to the front of the LRU list. On a
// miss (including an uninitialized cache), params is left untouched
// beyond SessionID.
func (c *Cache) Load(params *SessionParams) bool {
	defer c.guard.Enter("Load")()

	if !c.initDone {
		return false
	}

	indexedKey := c.masker.Mask(params.SessionID)

	addr, _ := bst.Find(c.store, &c.root, indexedKey[:])
	if addr == slot.NullAddr {
		c.misses++
		c.metrics.incLoadMiss()
		return false
	}

	params.Version = slot.Version(c.store, addr)
	params.CipherSuite = slot.CipherSuite(c.store, addr)
	params.MasterSecret = append(params.MasterSecret[:0], slot.MasterSecret(c.store, addr)...)

	lru.MoveToFront(c.store, &c.list, addr)

	c.hits++
	c.metrics.incLoadHit()
	return true
}

// Snapshot returns a point-in-time view of the cache's counters. Safe to
// call between Save/Load calls from the cache's single owner; calling it
// concurrently with a Save or Load violates the same single-owner
// contract those two methods enforce.
func (c *Cache) Snapshot() Stats {
	return Stats{
		Saves:          c.saves,
		SaveCollisions: c.collisions,
		LoadHits:       c.hits,
		LoadMisses:     c.misses,
		Evictions:      c.evictions,
		OccupiedSlots:  c.occupied,
		Capacity:       c.capacitySlots(),
		Initialized:    c.initDone,
	}
}
