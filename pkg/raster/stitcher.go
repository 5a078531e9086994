package raster

// stitch merges right into left across seam, returning the augmented left
// set. For each polyline in right it looks for a polyline in left whose
// endpoint lies near the seam and within matching distance, tries four
// fixed endpoint combinations in order, and splices on the first accepted
// match; unmatched polylines are transferred into the set unchanged.
func stitch(left, right *PolylineSet, seam Seam) *PolylineSet {
	if left.Len() == 0 {
		left.Merge(right)
		return left
	}

	along := func(p Point) int {
		if seam.Dir == axisHorizontal {
			return p.X
		}
		return p.Y
	}
	across := func(p Point) int {
		if seam.Dir == axisHorizontal {
			return p.Y
		}
		return p.X
	}
	onSeamQ := func(p Point) bool { return absInt(across(p)-seam.Coord) <= 1 }
	onSeamP := func(p Point) bool { return across(p)-seam.Coord == 0 }

	// (Qhead,Ptail), (Qtail,Ptail), (Qhead,Phead), (Qtail,Phead)
	combos := [4]struct{ qHead, pHead bool }{
		{qHead: true, pHead: false},
		{qHead: false, pHead: false},
		{qHead: true, pHead: true},
		{qHead: false, pHead: true},
	}

	for right.Len() > 0 {
		p := right.RemoveAt(0)
		matched := false
		for _, c := range combos {
			var pEnd Point
			if c.pHead {
				pEnd = p.Head()
			} else {
				pEnd = p.Tail()
			}
			if !onSeamP(pEnd) {
				continue
			}

			bestIdx := -1
			bestDist := 0
			for qi, q := range left.All() {
				var qEnd Point
				if c.qHead {
					qEnd = q.Head()
				} else {
					qEnd = q.Tail()
				}
				if !onSeamQ(qEnd) {
					continue
				}
				d := absInt(along(pEnd) - along(qEnd))
				if d < 4 && (bestIdx == -1 || d < bestDist) {
					bestIdx, bestDist = qi, d
				}
			}
			if bestIdx == -1 {
				continue
			}
			spliceEndpoints(left.All()[bestIdx], p, c.qHead, c.pHead)
			matched = true
			break
		}
		if !matched {
			left.Add(p)
		}
	}
	return left
}

// spliceEndpoints joins q and p so their matched endpoints (identified by
// qHead/pHead) abut, mutating q in place into the merged polyline.
func spliceEndpoints(q, p *Polyline, qHead, pHead bool) {
	switch {
	case qHead && !pHead: // Qhead, Ptail: P already reads ..->Ptail==Qhead->..
		q.Prepend(p)
	case !qHead && !pHead: // Qtail, Ptail: reverse P so its head abuts Q's tail
		p.Reverse()
		q.Append(p)
	case qHead && pHead: // Qhead, Phead: reverse Q so its tail abuts P's head
		q.Reverse()
		q.Append(p)
	default: // Qtail, Phead: already adjacent in order
		q.Append(p)
	}
}
