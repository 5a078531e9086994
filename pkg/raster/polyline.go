package raster

// Polyline is an ordered, non-empty sequence of Points representing a
// connected fragment of the skeleton. It is backed by a plain slice rather
// than the doubly-linked node chain the original implementation uses — the
// design notes in spec.md explicitly sanction this simplification. A slice
// supports the reverse/splice/concat operations the stitcher needs without
// the raw-pointer bookkeeping a linked list requires; unlike a linked-list
// splice, Append and Prepend copy points, in time linear in the lengths.
type Polyline struct {
	pts []Point
}

// NewPolyline builds a Polyline from the given points in order.
func NewPolyline(pts ...Point) *Polyline {
	cp := make([]Point, len(pts))
	copy(cp, pts)
	return &Polyline{pts: cp}
}

// Len returns the number of points in the polyline.
func (p *Polyline) Len() int { return len(p.pts) }

// Head returns the first point.
func (p *Polyline) Head() Point { return p.pts[0] }

// Tail returns the last point.
func (p *Polyline) Tail() Point { return p.pts[len(p.pts)-1] }

// Points returns the polyline's points in order. The returned slice is
// shared with the polyline's internal storage, so writing an element through
// it changes the polyline; the fragmenter re-anchors a fragment's tail this way.
func (p *Polyline) Points() []Point { return p.pts }

// SetHead replaces the first point, used by the fragmenter to move a
// fragment's border endpoint onto the midpoint of its stroke crossing.
func (p *Polyline) SetHead(pt Point) { p.pts[0] = pt }

// Reverse flips the polyline's direction in place so Head/Tail swap roles.
func (p *Polyline) Reverse() {
	for i, j := 0, len(p.pts)-1; i < j; i, j = i+1, j-1 {
		p.pts[i], p.pts[j] = p.pts[j], p.pts[i]
	}
}

// Append concatenates other onto the end of p, consuming other: p's tail
// becomes adjacent to other's head. Callers that need other's tail adjacent
// instead must Reverse it first.
func (p *Polyline) Append(other *Polyline) {
	p.pts = append(p.pts, other.pts...)
}

// Prepend concatenates other onto the front of p, consuming other: other's
// tail becomes adjacent to p's head.
func (p *Polyline) Prepend(other *Polyline) {
	merged := make([]Point, 0, len(p.pts)+len(other.pts))
	merged = append(merged, other.pts...)
	merged = append(merged, p.pts...)
	p.pts = merged
}

// PolylineSet is an unordered collection of Polylines. Two polylines in a
// set never share endpoints by identity but may share coordinates where
// skeleton branches cross at a junction.
type PolylineSet struct {
	items []*Polyline
}

// NewPolylineSet builds an empty set, optionally seeded with initial items.
func NewPolylineSet(items ...*Polyline) *PolylineSet {
	return &PolylineSet{items: append([]*Polyline(nil), items...)}
}

// Add appends a polyline to the set.
func (s *PolylineSet) Add(p *Polyline) {
	s.items = append(s.items, p)
}

// All returns the set's polylines. The returned slice is shared with the
// set's internal storage and must not be retained across further mutation.
func (s *PolylineSet) All() []*Polyline { return s.items }

// Len returns the number of polylines in the set.
func (s *PolylineSet) Len() int { return len(s.items) }

// RemoveAt removes and returns the polyline at index i, preserving the
// relative order of the remaining items.
func (s *PolylineSet) RemoveAt(i int) *Polyline {
	p := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return p
}

// Merge appends every polyline from other into s.
func (s *PolylineSet) Merge(other *PolylineSet) {
	s.items = append(s.items, other.items...)
}
