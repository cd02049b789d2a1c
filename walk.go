package quadtree

// Visitor is called once per node visited by Walk or WalkLeaves.
type Visitor interface {
	Visit(n *Quadtree)
}

// VisitorFunc adapts a plain function to a Visitor.
type VisitorFunc func(n *Quadtree)

func (f VisitorFunc) Visit(n *Quadtree) {
	f(n)
}

// Walk visits n and every descendant, parents before children, children in
// NW, NE, SE, SW order. A nil n visits nothing.
func Walk(n *Quadtree, v Visitor) {
	if n == nil {
		return
	}
	v.Visit(n)
	for _, child := range n.Children() {
		Walk(child, v)
	}
}

// WalkLeaves visits only the nodes of n's subtree that have no children.
func WalkLeaves(n *Quadtree, v Visitor) {
	if n == nil {
		return
	}
	if n.IsLeaf() {
		v.Visit(n)
		return
	}
	for _, child := range n.Children() {
		WalkLeaves(child, v)
	}
}

// Mode selects how a subtree is presented: every node, or only its leaves.
type Mode int

const (
	Whole Mode = iota
	Leaves
)

func (m Mode) String() string {
	if m == Leaves {
		return "leaves"
	}
	return "whole"
}

// Walk walks n according to m.
func (m Mode) Walk(n *Quadtree, v Visitor) {
	if m == Leaves {
		WalkLeaves(n, v)
		return
	}
	Walk(n, v)
}
