package hull

import "github.com/go-gl/mathgl/mgl64"

const DefaultWorkers = 1

// HullAll computes the hull of every point set with Compute, spreading the
// sets over workers goroutines. The result at index i belongs to sets[i];
// degenerate sets yield nil.
func HullAll(sets [][]mgl64.Vec3, workers int) [][]Triangle {
	workers = max(DefaultWorkers, workers)

	results := make([][]Triangle, len(sets))
	task(workers, sets, func(i int, points []mgl64.Vec3) {
		results[i] = Compute(points)
	})
	return results
}
