package gridgraph

import "github.com/katalvlaran/pipemaze/tile"

// Regions finds all 4-connected groups of inner cells for which keep
// returns true. Each region is a slice of row-major indices in BFS order;
// regions are ordered by the scan position of their first cell.
//
// To convert an index back to a Point, use Coordinate(idx).
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(keep func(Point) bool) [][]int {
	seen := make([]bool, g.Cells())
	var regions [][]int

	for y := 1; y < g.Height-1; y++ {
		for x := 1; x < g.Width-1; x++ {
			p := Point{X: x, Y: y}
			i0 := g.Index(p)
			if seen[i0] || !keep(p) {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var region []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				region = append(region, u)
				up := g.Coordinate(u)
				for _, d := range tile.Directions {
					v := up.Step(d)
					if !g.Inner(v) {
						continue
					}
					vi := g.Index(v)
					if seen[vi] || !keep(v) {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}
