package solver_test

import (
	"testing"

	"github.com/katalvlaran/livewire/solver"
	"github.com/katalvlaran/livewire/weightfield"
)

// BenchmarkPrepareForTarget_SweepingCursor models the interactive hot path: a
// cursor sweeping across a 512x512 image with a 128-window, forcing periodic
// window replacement and re-solving. After warm-up the solver's buffers stay
// at their high-water mark, so steady-state allocations should be near zero.
func BenchmarkPrepareForTarget_SweepingCursor(b *testing.B) {
	field, err := weightfield.New(uniformEnergy(1), 512, 512)
	if err != nil {
		b.Fatal(err)
	}
	s := solver.New(solver.WithWindowSize(128))
	if err = s.SetImage(field); err != nil {
		b.Fatal(err)
	}
	if err = s.SetAnchor(256, 256); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		x := (i * 7) % 512 // strides across the grid, in and out of the window
		if _, err = s.PrepareForTarget(x, 256); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPathToAnchor_InsideWindow measures the query cost when the window
// and tree are already valid: pure parent-chain backtracking.
func BenchmarkPathToAnchor_InsideWindow(b *testing.B) {
	field, err := weightfield.New(uniformEnergy(1), 256, 256)
	if err != nil {
		b.Fatal(err)
	}
	s := solver.New(solver.WithWindowSize(128))
	if err = s.SetImage(field); err != nil {
		b.Fatal(err)
	}
	if err = s.SetAnchor(64, 64); err != nil {
		b.Fatal(err)
	}
	if _, err = s.PrepareForTarget(120, 120); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		points, _ := s.PathToAnchor(120, 120)
		if len(points) == 0 {
			b.Fatal("empty path")
		}
	}
}
