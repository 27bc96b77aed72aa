package memory

// Block is a contiguous run of addresses inside the managed space.
// It either belongs to the process named by Owner or is a hole
// (Owner == "").
type Block struct {
	Start int
	Size  int
	Owner string
}

// End is the exclusive upper bound of the block.
func (b Block) End() int {
	return b.Start + b.Size
}

// IsFree reports whether the block is a hole.
func (b Block) IsFree() bool {
	return b.Owner == ""
}
