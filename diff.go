package quadtree

// Change classifies a quadrant slot compared by Diff.
type Change int

const (
	// Unchanged means the slot is present in both trees; Diff recurses into it.
	Unchanged Change = iota
	// Added means the slot is absent in the old tree and present in the new.
	Added
	// Removed means the slot is present in the old tree and absent in the new.
	Removed
)

func (c Change) String() string {
	switch c {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	}
	return "change(?)"
}

// Delta is one slot reported by Diff. Old is nil for Added, New is nil for
// Removed.
type Delta struct {
	Quadrant Quadrant
	Change   Change
	Old      *Quadtree
	New      *Quadtree
}

// Node returns the subtree the delta refers to: the old child when it was
// removed, the new child otherwise.
func (d Delta) Node() *Quadtree {
	if d.Change == Removed {
		return d.Old
	}
	return d.New
}

// DiffFunc receives each delta found by Diff.
type DiffFunc func(d Delta)

// Diff compares the children of old and next slot by slot, NW with NW, NE with
// NE and so on. An added or removed slot is reported once as a whole subtree
// and not descended into; a slot present on both sides is reported as
// Unchanged and then compared recursively. Slots absent on both sides are
// skipped. A nil tree behaves like a node without children.
func Diff(old, next *Quadtree, visit DiffFunc) {
	oldChildren, newChildren := old.Children(), next.Children()
	for _, quad := range Quadrants {
		o, n := oldChildren[quad], newChildren[quad]
		switch {
		case o != nil && n == nil:
			visit(Delta{Quadrant: quad, Change: Removed, Old: o})
		case o == nil && n != nil:
			visit(Delta{Quadrant: quad, Change: Added, New: n})
		case o != nil && n != nil:
			visit(Delta{Quadrant: quad, Change: Unchanged, Old: o, New: n})
			Diff(o, n, visit)
		}
	}
}

// Changes returns the added and removed subtrees between old and next, in the
// order Diff finds them.
func Changes(old, next *Quadtree) []Delta {
	var deltas []Delta
	Diff(old, next, func(d Delta) {
		if d.Change != Unchanged {
			deltas = append(deltas, d)
		}
	})
	return deltas
}
