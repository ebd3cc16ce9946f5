// Package spheremap renders a parabolic sphere-map image from a
// cubemap by inverse-mapping every output pixel to a direction vector
// and point-sampling the face it hits.
package spheremap

import (
	gomath "math"
	"runtime"
	"sync"

	"github.com/Faultbox/spheremap/internal/cubemap"
	"github.com/Faultbox/spheremap/internal/imageio"
	"github.com/Faultbox/spheremap/pkg/math"
)

// backPole is where pixels outside the parabolic disk collapse to,
// filling the square instead of leaving a circular cutout.
var backPole = math.Vec3{X: 0, Y: 0, Z: -1}

// direction inverts the paraboloid parameterization at unit-square
// coordinates (s, t).
func direction(s, t float32) math.Vec3 {
	p := s - s*s + t - t*t
	revP := 16*p - 4
	if revP < 0 {
		return backPole
	}

	r := float32(gomath.Sqrt(float64(revP)))
	return math.Vec3{
		X: r * (2*s - 1),
		Y: -r * (2*t - 1),
		Z: 8*p - 3,
	}
}

// unlerp maps a texel index to the normalized coordinate of its center.
func unlerp(v, max int) float32 {
	return (float32(v) + 0.5) / float32(max)
}

// renderRows fills output rows [yFrom, yTo).
func renderRows(cm *cubemap.Cubemap, out *imageio.Image, size, yFrom, yTo int) {
	for y := yFrom; y < yTo; y++ {
		t := unlerp(y, size)
		for x := 0; x < size; x++ {
			s := unlerp(x, size)
			out.SetTexel(x, y, cm.Sample(direction(s, t)))
		}
	}
}

// Generate renders a size x size sphere map in a single pass. The
// result is fully deterministic given the cubemap contents.
func Generate(cm *cubemap.Cubemap, size int) *imageio.Image {
	out := imageio.NewImage(size, size)
	renderRows(cm, out, size, 0, size)
	return out
}

// GenerateParallel renders the same image sharded across workers. Each
// pixel is independent and the cubemap is read-only during generation,
// so rows split across goroutines with no coordination beyond the
// final join. workers <= 1 takes the sequential path; workers == 0
// means one per CPU. Output is identical to Generate for any worker
// count.
func GenerateParallel(cm *cubemap.Cubemap, size, workers int) *imageio.Image {
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers <= 1 || size < workers {
		return Generate(cm, size)
	}

	out := imageio.NewImage(size, size)
	rowsPer := (size + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		yFrom := w * rowsPer
		yTo := yFrom + rowsPer
		if yTo > size {
			yTo = size
		}
		if yFrom >= yTo {
			break
		}

		wg.Add(1)
		go func(from, to int) {
			defer wg.Done()
			renderRows(cm, out, size, from, to)
		}(yFrom, yTo)
	}
	wg.Wait()

	return out
}
