package vgpath

// updateLength rebuilds the arc length index. lengths[i] holds the length of the segment arriving at vertex i, zero for the first vertex and for any interior move command. A closed path carries one extra entry for the wrap segment back to the first vertex, so the index spans the full drawn contour.
func (p *Path) updateLength() {
	n := len(p.vertices)
	count := n
	if p.closed && 0 < n {
		count = n + 1
	}

	if cap(p.lengths) < count {
		p.lengths = make([]float64, count)
	} else {
		p.lengths = p.lengths[:count]
	}
	p.length = 0.0
	if n == 0 {
		return
	}

	p.lengths[0] = 0.0
	for i := 1; i < count; i++ {
		to := p.vertices[i%n]
		if to.Command == MoveCmd && i < n {
			// an interior move starts a new subpath, the wrap entry still measures back to the first vertex
			p.lengths[i] = 0.0
			continue
		}
		p.lengths[i] = p.segmentLength(p.vertices[i-1], to)
		p.length += p.lengths[i]
	}
}

// segmentLength returns the arc length of the segment between two anchors: the exact Euclidean distance when neither side carries an active handle, the integrated bezier length otherwise.
func (p *Path) segmentLength(from, to *Anchor) float64 {
	if !from.HasRight() && !to.HasLeft() {
		return to.Position.Sub(from.Position).Length()
	}
	return cubicBezierLength(from.Position, from.AbsRight(), to.AbsLeft(), to.Position, p.resolution())
}

// parameterAtLength maps an absolute arc length to a fractional vertex index: the integer part addresses the vertex opening the enclosing segment and the fraction the portion of that segment already walked. Targets at or below zero clamp to 0 and targets at or beyond the total length clamp to the last index.
func (p *Path) parameterAtLength(target float64) float64 {
	if len(p.lengths) == 0 {
		return 0.0
	}
	last := float64(len(p.lengths) - 1)
	if target <= 0.0 {
		return 0.0
	} else if p.length <= target {
		return last
	}

	sum := 0.0
	for i := 1; i < len(p.lengths); i++ {
		l := p.lengths[i]
		if target <= sum+l {
			if l == 0.0 {
				return float64(i - 1)
			}
			return float64(i-1) + (target-sum)/l
		}
		sum += l
	}
	return last
}

// containsLength reports whether the normalized arc length t lands exactly on a vertex. The comparison against the running cumulative sum is exact, it succeeds only at segment boundaries hit precisely by construction.
func (p *Path) containsLength(t float64) bool {
	if t == 0.0 || t == 1.0 {
		return true
	}
	target := t * p.length
	sum := 0.0
	for _, l := range p.lengths {
		if target <= sum {
			return sum == target
		}
		sum += l
	}
	return false
}

// PointAt returns the anchor on the path at normalized arc length t, clamped to [0,1]. The anchor's handles are derived by splitting the enclosing bezier at the resolved parameter, so a trimmed boundary placed there retains proper tangency, and its T field records that parameter. When dst is non-nil the result is written into it, avoiding the allocation in hot loops; its Relative convention is respected. Returns nil when the path has no geometry.
func (p *Path) PointAt(t float64, dst *Anchor) *Anchor {
	p.update()
	return p.pointAt(t, dst)
}

func (p *Path) pointAt(t float64, dst *Anchor) *Anchor {
	n := len(p.vertices)
	if n == 0 {
		return nil
	}
	if t < 0.0 {
		t = 0.0
	} else if 1.0 < t {
		t = 1.0
	}
	target := p.length * t

	ia, ib := n-1, n-1
	u := 0.0
	sum := 0.0
	for i, l := range p.lengths {
		if target <= sum+l {
			if p.closed {
				ia = i % n
				ib = (i - 1 + n) % n
			} else {
				ia = i
				ib = i - 1
				if ib < 0 {
					ib = 0
				}
			}
			if l == 0.0 {
				// a zero length entry resolves to its own vertex
				ib = ia
			} else {
				u = (target - sum) / l
			}
			break
		}
		sum += l
	}

	from, to := p.vertices[ib], p.vertices[ia]
	if dst == nil {
		dst = &Anchor{Relative: true}
	}
	dst.T = u

	if !from.HasRight() && !to.HasLeft() {
		dst.Position = from.Position.Interpolate(to.Position, u)
		dst.Command = LineCmd
		dst.ClearLeft()
		dst.ClearRight()
		return dst
	}

	p0, p1 := from.Position, from.AbsRight()
	p2, p3 := to.AbsLeft(), to.Position
	_, _, left, pos, _, right, _, _ := splitCubicBezier(p0, p1, p2, p3, u)
	dst.Position = pos
	dst.Command = CurveCmd
	dst.SetAbsLeft(left)
	dst.SetAbsRight(right)
	return dst
}
