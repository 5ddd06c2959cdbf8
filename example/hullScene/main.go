package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/akmonengine/hull"
	"github.com/akmonengine/hull/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// SetupScene builds a rotated box of half extents 1.5 at (-5, 5, -5), with a
// cloud of points scattered inside it.
func SetupScene(rng *rand.Rand) []mgl64.Vec3 {
	position := mgl64.Vec3{-5.0, 5.0, -5.0}
	rotation := mgl64.QuatRotate(mgl64.DegToRad(70), mgl64.Vec3{0, 0, 1})
	halfExtents := mgl64.Vec3{1.5, 1.5, 1.5}

	var points []mgl64.Vec3
	for _, sx := range []float64{-1, 1} {
		for _, sy := range []float64{-1, 1} {
			for _, sz := range []float64{-1, 1} {
				corner := mgl64.Vec3{sx * halfExtents.X(), sy * halfExtents.Y(), sz * halfExtents.Z()}
				points = append(points, rotation.Rotate(corner).Add(position))
			}
		}
	}

	for i := 0; i < 64; i++ {
		local := mgl64.Vec3{
			(rng.Float64()*2 - 1) * halfExtents.X() * 0.9,
			(rng.Float64()*2 - 1) * halfExtents.Y() * 0.9,
			(rng.Float64()*2 - 1) * halfExtents.Z() * 0.9,
		}
		points = append(points, rotation.Rotate(local).Add(position))
	}

	return points
}

// PrintHull dumps each face with its outward normal.
func PrintHull(points []mgl64.Vec3, tris []hull.Triangle) {
	planes := hull.Planes(points, tris)
	for i, tri := range tris {
		fmt.Printf("  Face %2d: %v normal=%v offset=%.3f\n", i, tri, planes[i].Normal, planes[i].Offset)
	}
}

func main() {
	rng := rand.New(rand.NewSource(1))
	points := SetupScene(rng)

	fmt.Println("Rotated box with interior points")
	fmt.Println("================================")
	fmt.Printf("  Points: %d\n", len(points))
	fmt.Printf("  Tolerance: %g\n", hull.EstimateTolerance(points))

	logger := log.New(os.Stdout, "  ", 0)
	tris, err := hull.Build(points, hull.Config{
		Tolerance: geom.Uniform(hull.EstimateTolerance(points)),
		Logger:    logger,
	})
	if err != nil {
		fmt.Printf("  No hull: %v\n", err)
		return
	}
	PrintHull(points, tris)

	if err := hull.Validate(points, tris, hull.EstimateTolerance(points)); err != nil {
		fmt.Printf("  Invalid hull: %v\n", err)
	}
	fmt.Println()

	fmt.Println("Degenerate inputs")
	fmt.Println("=================")
	flat := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}
	if _, err := hull.Build(flat, hull.Config{Tolerance: geom.Uniform(1e-9)}); err != nil {
		fmt.Printf("  Square: %v\n", err)
	}
	fmt.Println()

	fmt.Println("Batch")
	fmt.Println("=====")
	sets := make([][]mgl64.Vec3, 8)
	for i := range sets {
		sets[i] = SetupScene(rng)
	}
	for i, result := range hull.HullAll(sets, 4) {
		fmt.Printf("  Set %d: %d faces\n", i, len(result))
	}
}
