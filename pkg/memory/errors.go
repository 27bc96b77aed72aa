// Package memory implements a variable-partition model of a fixed
// address space with first-fit, best-fit and worst-fit placement,
// hole coalescing on release and defragmentation via compaction.
package memory

import (
	"errors"
)

var (
	// ErrInvalidSize is returned when an allocation is requested with
	// a non-positive size.
	ErrInvalidSize = errors.New("requested size must be positive")

	// ErrInvalidOwner is returned when an allocation names an empty
	// process id.
	ErrInvalidOwner = errors.New("empty process id")

	// ErrOwnerInUse is returned when an allocation names a process
	// that already holds a block. A process holds at most one block
	// at a time.
	ErrOwnerInUse = errors.New("process already holds a block")

	// ErrOutOfMemory is returned when no hole is large enough for the
	// requested size. The store is left untouched; callers may retry
	// after releasing blocks or compacting.
	ErrOutOfMemory = errors.New("insufficient contiguous memory")

	// ErrProcessNotFound is returned when a release names a process
	// that holds no block.
	ErrProcessNotFound = errors.New("process not found")

	// ErrInvalidConfiguration is returned when the store is created
	// or reset with a non-positive total size.
	ErrInvalidConfiguration = errors.New("total memory size must be positive")
)
