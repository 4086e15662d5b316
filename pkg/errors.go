package sessioncache

import "errors"

// Constructor-time sentinel errors. These are the only errors New can
// return; see SPEC_FULL.md §7 for why a too-small store is NOT among them
// (it degrades silently per spec instead).
var (
	// ErrNilServerContext is returned by New when no ServerContext is
	// supplied; the cache cannot draw its indexing secret without one.
	ErrNilServerContext = errors.New("session-cache: server context must not be nil")

	// ErrStoreTooLarge is returned by New when the backing store exceeds
	// what a 32-bit slab address can index.
	ErrStoreTooLarge = errors.New("session-cache: store exceeds maximum addressable size")
)

// ErrRandomSourceFailed is returned by Save when the first save's draw
// from ServerContext.RandomBytes fails. init_done is left false so a
// subsequent Save retries the draw, per the spec's §9 guidance that a
// robust implementation must not adopt a weak indexing secret.
var ErrRandomSourceFailed = errors.New("session-cache: could not seed indexing secret from random source")
