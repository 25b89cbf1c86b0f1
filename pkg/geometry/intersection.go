package geometry

import "sort"

// Intersection records where a ray meets a shape: the t value along the ray
// and the shape that was hit.
type Intersection struct {
	T      float64
	Object Shape
}

// SortIntersections orders intersections by ascending t in place
func SortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the visible intersection: the one with the smallest
// non-negative t. Intersections behind the ray origin are ignored.
// ok is false when every intersection has a negative t.
func Hit(xs []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
