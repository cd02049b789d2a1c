package quadtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestDiffSuite(t *testing.T) {
	suite.Run(t, &DiffSuite{})
}

type DiffSuite struct {
	suite.Suite
}

func (suite *DiffSuite) build(depth int, points ...Point) *Quadtree {
	qt, err := New(points, depth, &square)
	suite.Require().NoError(err)
	return qt
}

func (suite *DiffSuite) TestDisjointQuadrants() {
	old := suite.build(2, Point{1, 1})
	next := suite.build(2, Point{9, 9})

	changes := Changes(old, next)
	suite.Require().Len(changes, 2)
	suite.Equal(Delta{Quadrant: NW, Change: Removed, Old: old.Nw}, changes[0])
	suite.Equal(Delta{Quadrant: SE, Change: Added, New: next.Se}, changes[1])
	suite.Same(old.Nw, changes[0].Node())
	suite.Same(next.Se, changes[1].Node())
}

func (suite *DiffSuite) TestIdenticalTrees() {
	points := randomPoints(rand.New(rand.NewSource(9)), 300, square)
	a := suite.build(6, points...)
	b := suite.build(6, points...)

	unchanged := 0
	Diff(a, b, func(d Delta) {
		suite.Equal(Unchanged, d.Change)
		suite.NotNil(d.Old)
		suite.NotNil(d.New)
		unchanged++
	})
	suite.Equal(a.Nodes()-1, unchanged)
	suite.Empty(Changes(a, b))
}

func (suite *DiffSuite) TestNestedChange() {
	old := suite.build(3, Point{1, 1}, Point{9, 9})
	next := suite.build(3, Point{1, 1}, Point{6, 6})

	var seen []Delta
	Diff(old, next, func(d Delta) {
		seen = append(seen, d)
	})

	suite.Equal([]Delta{
		{Quadrant: NW, Change: Unchanged, Old: old.Nw, New: next.Nw},
		{Quadrant: NW, Change: Unchanged, Old: old.Nw.Nw, New: next.Nw.Nw},
		{Quadrant: SE, Change: Unchanged, Old: old.Se, New: next.Se},
		{Quadrant: NW, Change: Added, New: next.Se.Nw},
		{Quadrant: SE, Change: Removed, Old: old.Se.Se},
	}, seen)
}

func (suite *DiffSuite) TestRemovedSubtreeReportedOnce() {
	old := suite.build(5, Point{1, 1}, Point{2, 2}, Point{4, 1}, Point{9, 9})
	next := suite.build(5, Point{9, 9})

	changes := Changes(old, next)
	suite.Require().Len(changes, 1)
	suite.Equal(Removed, changes[0].Change)
	suite.Same(old.Nw, changes[0].Old)
	suite.False(changes[0].Old.IsLeaf())
}

func (suite *DiffSuite) TestNilRoots() {
	t := suite.build(3, Point{1, 1}, Point{9, 1}, Point{9, 9})

	added := Changes(nil, t)
	suite.Len(added, 3)
	for _, d := range added {
		suite.Equal(Added, d.Change)
		suite.Same(t.Child(d.Quadrant), d.New)
	}

	removed := Changes(t, nil)
	suite.Len(removed, 3)
	for _, d := range removed {
		suite.Equal(Removed, d.Change)
	}

	suite.Empty(Changes(nil, nil))
}

func (suite *DiffSuite) TestSymmetry() {
	r := rand.New(rand.NewSource(21))
	for i := 0; i < 20; i++ {
		a := suite.build(7, randomPoints(r, 1+r.Intn(40), square)...)
		b := suite.build(7, randomPoints(r, 1+r.Intn(40), square)...)

		forward := Changes(a, b)
		backward := Changes(b, a)
		suite.Require().Len(backward, len(forward))
		for j := range forward {
			f, g := forward[j], backward[j]
			suite.Equal(f.Quadrant, g.Quadrant)
			suite.Same(f.Node(), g.Node())
			switch f.Change {
			case Added:
				suite.Equal(Removed, g.Change)
			case Removed:
				suite.Equal(Added, g.Change)
			default:
				suite.Fail("unexpected change", f.Change.String())
			}
		}
	}
}

func TestChangeString(t *testing.T) {
	require.Equal(t, "unchanged", Unchanged.String())
	require.Equal(t, "added", Added.String())
	require.Equal(t, "removed", Removed.String())
}
