// Package bst maintains an ordered binary tree over indexed keys stored in
// the session cache's shared slab. Nodes are addressed by 32-bit slab
// offset (internal/slot), not by pointer; there is no separate allocator
// and no rebalancing — tree balance instead rests on the key-masker
// (internal/keymask) producing pseudorandom indexed keys.
//
// Every operation is expressed in terms of a link-slot: either the root
// anchor (owned by the caller, passed by pointer) or a child field inside
// some node already in the tree. find locates both a node and the
// link-slot that points to it (or to where a new node would attach).
//
// Unlink deliberately reproduces the non-textbook removal policy described
// by the cache's governing spec: the extremum node chosen as replacement
// is detached from its old parent, but its own remaining child (on the
// side opposite its descent direction) is not reattached anywhere — it is
// silently dropped from the tree, though the slot it occupies is untouched
// and may still be linked into the LRU list. This is a known, intentional
// deviation from a textbook BST delete; see DESIGN.md for the rationale.
//
// © 2025 session-cache authors. MIT License.
package bst

import (
	"bytes"

	"github.com/voskan/session-cache/internal/slot"
)

// LinkSlot is a location that holds a node address and can be overwritten:
// either the tree's root anchor, or a child field inside a specific node.
type LinkSlot struct {
	buf    []byte
	root   *uint32
	holder uint32
	isLeft bool
	isRoot bool
}

// Get returns the address currently held by the link-slot.
func (ls LinkSlot) Get() uint32 {
	if ls.isRoot {
		return *ls.root
	}
	if ls.isLeft {
		return slot.TreeLeft(ls.buf, ls.holder)
	}
	return slot.TreeRight(ls.buf, ls.holder)
}

// Attach overwrites the link-slot with addr.
func (ls LinkSlot) Attach(addr uint32) {
	if ls.isRoot {
		*ls.root = addr
		return
	}
	if ls.isLeft {
		slot.SetTreeLeft(ls.buf, ls.holder, addr)
		return
	}
	slot.SetTreeRight(ls.buf, ls.holder, addr)
}

// Find descends from root comparing key against each visited entry's
// indexed key (lexicographic, unsigned byte comparison), going left on
// strictly-less and right on strictly-greater. It returns the matching
// address (or slot.NullAddr on a miss) and the link-slot that pointed to
// the comparison-stopping node — or, on a miss, the null-valued link-slot
// where a new node would attach.
func Find(buf []byte, root *uint32, key []byte) (uint32, LinkSlot) {
	ls := LinkSlot{buf: buf, root: root, isRoot: true}
	cur := *root

	for cur != slot.NullAddr {
		cmp := bytes.Compare(key, slot.IndexedKey(buf, cur))
		switch {
		case cmp == 0:
			return cur, ls
		case cmp < 0:
			ls = LinkSlot{buf: buf, holder: cur, isLeft: true}
			cur = slot.TreeLeft(buf, cur)
		default:
			ls = LinkSlot{buf: buf, holder: cur, isLeft: false}
			cur = slot.TreeRight(buf, cur)
		}
	}
	return slot.NullAddr, ls
}

// Unlink removes the node at addr from the tree reachable via root.
//
// Replacement selection:
//   - if addr has a left child, the replacement is the rightmost
//     descendant of that left subtree;
//   - else if addr has a right child, the replacement is the leftmost
//     descendant of that right subtree;
//   - else the node is a leaf and nothing replaces it.
//
// When the replacement is not an immediate child of addr, it is spliced
// out of its old parent first; the replacement's own child on the side
// opposite its descent direction is not reattached (see package doc).
func Unlink(buf []byte, root *uint32, addr uint32) {
	key := append([]byte(nil), slot.IndexedKey(buf, addr)...)
	_, ls := Find(buf, root, key)

	left := slot.TreeLeft(buf, addr)
	right := slot.TreeRight(buf, addr)

	var repl uint32

	switch {
	case left != slot.NullAddr:
		parent := addr
		child := left
		for slot.TreeRight(buf, child) != slot.NullAddr {
			parent = child
			child = slot.TreeRight(buf, child)
		}
		repl = child
		if parent != addr {
			// Detach repl from its parent. repl's own left child (if any)
			// is intentionally not reattached here; it becomes unreachable
			// from the tree once repl is promoted below.
			slot.SetTreeRight(buf, parent, slot.NullAddr)
			slot.SetTreeLeft(buf, repl, left)
		}
		slot.SetTreeRight(buf, repl, right)

	case right != slot.NullAddr:
		parent := addr
		child := right
		for slot.TreeLeft(buf, child) != slot.NullAddr {
			parent = child
			child = slot.TreeLeft(buf, child)
		}
		repl = child
		if parent != addr {
			slot.SetTreeLeft(buf, parent, slot.NullAddr)
			slot.SetTreeRight(buf, repl, right)
		}
		slot.SetTreeLeft(buf, repl, left)

	default:
		repl = slot.NullAddr
	}

	ls.Attach(repl)
}
