package astar_test

import (
	"context"
	"testing"

	"github.com/velmar/navkit/astar"
	"github.com/velmar/navkit/grid"
)

// benchWorld is a 64×64 unobstructed grid shared by the bounded-world
// benchmarks.
func benchWorld(b *testing.B, opts ...grid.Option) *grid.World {
	b.Helper()
	cells := make([][]int, 64)
	for y := range cells {
		cells[y] = make([]int, 64)
	}
	w, err := grid.NewWorld(cells, opts...)
	if err != nil {
		b.Fatal(err)
	}

	return w
}

func BenchmarkAStar_OpenGrid(b *testing.B) {
	w := benchWorld(b, grid.WithDiagonalMoves())
	nav, err := astar.New(w.NeighborFunc(), grid.Euclidean)
	if err != nil {
		b.Fatal(err)
	}
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 63, Y: 63}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nav.GetPath(context.Background(), start, goal)
	}
}

func BenchmarkBidirAStar_OpenGrid(b *testing.B) {
	w := benchWorld(b, grid.WithDiagonalMoves())
	nav, err := astar.NewBidir(w.NeighborFunc(), grid.Euclidean)
	if err != nil {
		b.Fatal(err)
	}
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 63, Y: 63}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nav.GetPath(context.Background(), start, goal)
	}
}

// The random-world benchmarks search an unbounded procedural field, so
// a step budget keeps unreachable goals from exhausting memory.
func BenchmarkAStar_RandomWorld(b *testing.B) {
	w, err := grid.NewRandomWorld(42, 0.3, 3, grid.WithDiagonalMoves())
	if err != nil {
		b.Fatal(err)
	}
	nav, err := astar.New(w.NeighborFunc(), grid.Euclidean, astar.WithMaxSteps(50_000))
	if err != nil {
		b.Fatal(err)
	}
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 120, Y: 120}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nav.GetPath(context.Background(), start, goal)
	}
}

func BenchmarkBidirAStar_RandomWorld(b *testing.B) {
	w, err := grid.NewRandomWorld(42, 0.3, 3, grid.WithDiagonalMoves())
	if err != nil {
		b.Fatal(err)
	}
	nav, err := astar.NewBidir(w.NeighborFunc(), grid.Euclidean,
		astar.WithMaxSteps(50_000), astar.WithStopIfNoPath())
	if err != nil {
		b.Fatal(err)
	}
	start, goal := grid.Cell{X: 0, Y: 0}, grid.Cell{X: 120, Y: 120}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nav.GetPath(context.Background(), start, goal)
	}
}
