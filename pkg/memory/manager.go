package memory

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"
)

// Manager owns the ordered block list partitioning [0, total).
// Mutating operations are serialized behind an exclusive lock; Status
// takes a shared lock so concurrent readers see consistent snapshots.
//
// The list invariants held after every operation: blocks are sorted by
// Start, contiguous over the whole space, every Size is positive and
// no two adjacent blocks are both free.
type Manager struct {
	mu     sync.RWMutex
	total  int
	blocks []Block
}

// NewManager creates a store covering [0, total) with a single hole.
func NewManager(total int) (*Manager, error) {
	if total <= 0 {
		return nil, ErrInvalidConfiguration
	}

	return &Manager{
		total:  total,
		blocks: []Block{{Start: 0, Size: total}},
	}, nil
}

// TotalSize returns the configured size of the address space.
func (m *Manager) TotalSize() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total
}

// Placement is the address range assigned by a successful allocation.
type Placement struct {
	Start int
	Size  int
}

// Allocate carves a block of the requested size out of the hole chosen
// by the strategy and assigns it to owner. On failure the store is
// left unchanged.
func (m *Manager) Allocate(owner string, size int, strategy Strategy) (Placement, error) {
	if owner == "" {
		return Placement{}, ErrInvalidOwner
	}
	if size <= 0 {
		return Placement{}, ErrInvalidSize
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOfOwner(owner) != -1 {
		return Placement{}, ErrOwnerInUse
	}

	idx := m.findCandidate(size, strategy)
	if idx == -1 {
		return Placement{}, ErrOutOfMemory
	}

	candidate := &m.blocks[idx]
	remaining := candidate.Size - size
	if remaining < 0 {
		panic(fmt.Sprintf(
			"memory: candidate [%d:%d) smaller than requested size %d",
			candidate.Start, candidate.End(), size,
		))
	}

	candidate.Owner = owner
	if remaining > 0 {
		candidate.Size = size
		hole := Block{Start: candidate.End(), Size: remaining}
		m.blocks = slices.Insert(m.blocks, idx+1, hole)
	}

	return Placement{Start: m.blocks[idx].Start, Size: size}, nil
}

// findCandidate returns the index of the hole the strategy picks for
// the requested size, or -1 when no hole qualifies. Blocks are kept in
// address order, so scanning forward and replacing the pick only on a
// strict improvement breaks size ties toward the lower address.
func (m *Manager) findCandidate(size int, strategy Strategy) int {
	pick := -1
	for i := range m.blocks {
		b := m.blocks[i]
		if !b.IsFree() || b.Size < size {
			continue
		}

		switch strategy {
		case FirstFit:
			return i
		case BestFit:
			if pick == -1 || b.Size < m.blocks[pick].Size {
				pick = i
			}
		case WorstFit:
			if pick == -1 || b.Size > m.blocks[pick].Size {
				pick = i
			}
		}
	}
	return pick
}

func (m *Manager) indexOfOwner(owner string) int {
	for i := range m.blocks {
		if m.blocks[i].Owner == owner {
			return i
		}
	}
	return -1
}

// Release frees the block held by owner and merges the resulting hole
// with free neighbors on both sides.
func (m *Manager) Release(owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOfOwner(owner)
	if idx == -1 {
		return ErrProcessNotFound
	}

	m.blocks[idx].Owner = ""
	m.blocks = mergeHoles(m.blocks)
	return nil
}

// mergeHoles folds the ordered block list into a fresh one, collapsing
// every run of adjacent holes into a single hole. Applying it again on
// its own output is a no-op.
func mergeHoles(blocks []Block) []Block {
	if len(blocks) < 2 {
		return blocks
	}

	merged := make([]Block, 0, len(blocks))
	current := blocks[0]
	for _, next := range blocks[1:] {
		if current.IsFree() && next.IsFree() && current.End() == next.Start {
			current.Size += next.Size
			continue
		}
		merged = append(merged, current)
		current = next
	}
	return append(merged, current)
}

// Compact slides every allocated block toward address zero, keeping
// their relative order, and leaves at most one trailing hole. All
// previously reported addresses are invalid afterwards; callers must
// re-query Status.
func (m *Manager) Compact() {
	m.mu.Lock()
	defer m.mu.Unlock()

	compacted := make([]Block, 0, len(m.blocks))
	offset := 0
	for _, b := range m.blocks {
		if b.IsFree() {
			continue
		}
		b.Start = offset
		offset += b.Size
		compacted = append(compacted, b)
	}

	if offset > m.total {
		panic(fmt.Sprintf(
			"memory: compaction overran the address space: offset %d, total %d",
			offset, m.total,
		))
	}
	if offset < m.total {
		compacted = append(compacted, Block{Start: offset, Size: m.total - offset})
	}

	m.blocks = compacted
}

// Reset discards all state and recreates the single hole [0, total).
func (m *Manager) Reset(total int) error {
	if total <= 0 {
		return ErrInvalidConfiguration
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.total = total
	m.blocks = []Block{{Start: 0, Size: total}}
	return nil
}
