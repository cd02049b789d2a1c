package quadtree

import (
	"math/rand"
	"testing"
)

var benchBounds = BoundingBox{Left: 0, Top: 0, Right: 900, Bottom: 900}

func benchPoints(seed int64, n int) []Point {
	return randomPoints(rand.New(rand.NewSource(seed)), n, benchBounds)
}

func BenchmarkNew(b *testing.B) {
	points := benchPoints(1, 10000)
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		if _, err := New(points, 9, &benchBounds); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDiff(b *testing.B) {
	old, err := New(benchPoints(1, 10000), 9, &benchBounds)
	if err != nil {
		b.Fatal(err)
	}
	next, err := New(benchPoints(2, 10000), 9, &benchBounds)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		changed := 0
		Diff(old, next, func(d Delta) {
			if d.Change != Unchanged {
				changed++
			}
		})
		if changed == 0 {
			b.Fatal("no changes between unrelated trees")
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	qt, err := New(benchPoints(1, 100000), 9, &benchBounds)
	if err != nil {
		b.Fatal(err)
	}
	r := rand.New(rand.NewSource(3))
	b.ResetTimer()
	for i := 0; i != b.N; i++ {
		c := Point{r.Float64() * 900, r.Float64() * 900}
		qt.Query(BoundingBox{Left: c.X - 5, Top: c.Y - 5, Right: c.X + 5, Bottom: c.Y + 5})
	}
}
