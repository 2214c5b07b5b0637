package types

// PointSet is an unordered set of cells.
type PointSet map[Point]struct{}

// OccupiedSet builds the set of cells covered by body.
func OccupiedSet(body []Point) PointSet {
	set := make(PointSet, len(body))
	for _, p := range body {
		set[p] = struct{}{}
	}
	return set
}

func (s PointSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s PointSet) Len() int {
	return len(s)
}
