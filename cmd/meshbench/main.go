// Command meshbench measures the vertex cost of the legal-move marker
// generators across a zoom sweep, headless. It answers the tuning
// question behind adaptive tessellation: how many triangles does a
// board full of markers cost at each zoom band, and how much does the
// resolution clamp save at the extremes.
package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/schollz/progressbar/v3"

	"fianchetto/internal/mesh"
)

type stepStats struct {
	zoom      float64
	slices    int // dot fan slices chosen at this zoom
	triangles int
	vertices  int
	bytes     int // buffer payload: 4 bytes per float
}

func main() {
	var zoomLo float64
	var zoomHi float64
	var steps int
	var tiles int
	var captures int
	var perspective bool
	var offset float64

	flag.Float64Var(&zoomLo, "zoom-min", 0.01, "sweep start zoom")
	flag.Float64Var(&zoomHi, "zoom-max", 14.0, "sweep end zoom")
	flag.IntVar(&steps, "steps", 24, "zoom steps (geometric spacing)")
	flag.IntVar(&tiles, "tiles", 2048, "marked tiles per step")
	flag.IntVar(&captures, "captures", 128, "tiles marked with corner triangles instead of dots")
	flag.BoolVar(&perspective, "perspective", false, "force perspective tessellation")
	flag.Float64Var(&offset, "offset", 0.5, "square-centre offset fed to the generators")
	flag.Parse()

	if steps <= 0 || tiles <= 0 || captures < 0 || captures > tiles {
		fmt.Println("error: need steps > 0 and 0 <= captures <= tiles")
		return
	}
	if zoomLo <= 0 || zoomHi < zoomLo {
		fmt.Println("error: need 0 < zoom-min <= zoom-max")
		return
	}

	fmt.Printf("=== Marker Mesh Sweep ===\n")
	fmt.Printf("zoom=%g..%g steps=%d tiles=%d captures=%d perspective=%v\n\n",
		zoomLo, zoomHi, steps, tiles, captures, perspective)

	gen := mesh.NewMarkerGen(mesh.DefaultMarkerConfig(), mesh.FixedOffset(offset))
	zooms := sweepZooms(zoomLo, zoomHi, steps)

	bar := progressbar.Default(int64(steps), "sweeping")
	all := make([]stepStats, 0, steps)
	for _, z := range zooms {
		all = append(all, measureStep(gen, z, tiles, captures, perspective))
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	fmt.Printf("\n%10s %8s %12s %12s %12s\n", "zoom", "slices", "triangles", "vertices", "kbytes")
	for _, s := range all {
		fmt.Printf("%10.4f %8d %12d %12d %12.1f\n", s.zoom, s.slices, s.triangles, s.vertices, float64(s.bytes)/1024)
	}
	printAggregate(all)
}

// sweepZooms returns geometrically spaced zoom values from lo to hi
// inclusive. A single step collapses to lo.
func sweepZooms(lo, hi float64, steps int) []float64 {
	out := make([]float64, 0, steps)
	if steps == 1 {
		return append(out, lo)
	}
	ratio := math.Pow(hi/lo, 1/float64(steps-1))
	z := lo
	for i := 0; i < steps; i++ {
		out = append(out, z)
		z *= ratio
	}
	// Pin the last step to hi exactly; the running product drifts.
	out[steps-1] = hi
	return out
}

// measureStep generates the full marker set for one zoom band and
// tallies its cost. Tiles are laid out in a square-ish spiral of
// coordinates purely so every buffer gets distinct input.
func measureStep(gen *mesh.MarkerGen, zoom float64, tiles, captures int, perspective bool) stepStats {
	dotCol := mesh.RGBA{R: 0.15, G: 0.55, B: 0.25, A: 0.5}
	capCol := mesh.RGBA{R: 0.75, G: 0.15, B: 0.10, A: 0.5}

	s := stepStats{
		zoom:   zoom,
		slices: gen.DotSlices(float32(zoom), perspective),
	}
	side := int(math.Ceil(math.Sqrt(float64(tiles))))
	for i := 0; i < tiles; i++ {
		t := mesh.Tile{X: i % side, Y: i / side}
		var buf mesh.Buffer
		if i < captures {
			buf = gen.LegalMoveCornerTriangles(t, capCol)
		} else {
			buf = gen.LegalMoveDot(t, dotCol, float32(zoom), perspective)
		}
		s.triangles += buf.TriangleCount()
		s.vertices += buf.VertexCount()
		s.bytes += len(buf) * 4
	}
	return s
}

func printAggregate(all []stepStats) {
	if len(all) == 0 {
		return
	}
	minTri, maxTri := all[0].triangles, all[0].triangles
	total := 0
	for _, s := range all {
		total += s.triangles
		if s.triangles < minTri {
			minTri = s.triangles
		}
		if s.triangles > maxTri {
			maxTri = s.triangles
		}
	}
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("steps=%d total_triangles=%d min_step=%d max_step=%d clamp_ratio=%.2fx\n",
		len(all), total, minTri, maxTri, float64(maxTri)/float64(minTri))
}
