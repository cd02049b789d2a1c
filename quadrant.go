package quadtree

// Quadrant names one of the four regions produced by splitting a box at its
// center.
type Quadrant int

const (
	NW Quadrant = iota
	NE
	SE
	SW
)

// Quadrants lists every quadrant in the order the tree is built, walked and
// diffed.
var Quadrants = [...]Quadrant{NW, NE, SE, SW}

func (q Quadrant) String() string {
	switch q {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SE:
		return "se"
	case SW:
		return "sw"
	}
	return "quadrant(?)"
}
