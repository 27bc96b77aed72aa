package memory

import (
	"golang.org/x/exp/slices"
)

// BlockView is the read-only snapshot of one block exposed by Status.
// Label is a display convenience ("Process <id>" or "Unused"); Owner
// is empty for holes.
type BlockView struct {
	Start int
	End   int
	Size  int
	Owner string
	Label string
}

// Status returns a consistent snapshot of every block in address
// order. The store itself is not modified.
func (m *Manager) Status() []BlockView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blocks := slices.Clone(m.blocks)
	slices.SortFunc(blocks, func(a, b Block) int {
		return a.Start - b.Start
	})

	views := make([]BlockView, len(blocks))
	for i, b := range blocks {
		label := "Unused"
		if !b.IsFree() {
			label = "Process " + b.Owner
		}
		views[i] = BlockView{
			Start: b.Start,
			End:   b.End(),
			Size:  b.Size,
			Owner: b.Owner,
			Label: label,
		}
	}
	return views
}
