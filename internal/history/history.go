package history

import "github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"

// DefaultDepth is how many moves of a match can be undone.
const DefaultDepth = 10

// Stack is a bounded LIFO of snapshots; pushing past capacity drops the oldest entry.
type Stack struct {
	depth   int
	entries []entity.Snapshot
}

func New(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}

	return &Stack{
		depth:   depth,
		entries: make([]entity.Snapshot, 0, depth),
	}
}

func (that *Stack) Push(snapshot entity.Snapshot) {
	if len(that.entries) == that.depth {
		copy(that.entries, that.entries[1:])
		that.entries = that.entries[:that.depth-1]
	}

	that.entries = append(that.entries, snapshot)
}

func (that *Stack) Pop() (entity.Snapshot, bool) {
	if len(that.entries) == 0 {
		return entity.Snapshot{}, false
	}

	last := that.entries[len(that.entries)-1]
	that.entries = that.entries[:len(that.entries)-1]

	return last, true
}

func (that *Stack) Len() int {
	return len(that.entries)
}

func (that *Stack) Clear() {
	that.entries = that.entries[:0]
}
