package vgpath

import "math"

// DefaultResolution is the subdivision limit used for arc length integration when a path has none set.
const DefaultResolution = 12

// Path is an editable sequence of anchors describing a single contour, possibly closed. Segments between consecutive anchors are cubic beziers when control handles are active and straight lines otherwise. Derived state such as the arc length index and the trimmed render buffer is recomputed lazily when read, driven by dirty flags that every mutation sets.
//
// The beginning and ending properties select a normalized arc length window of the contour to render. The render buffer reflects that window and may contain up to two synthetic boundary anchors not present in the authored vertices.
type Path struct {
	Style

	vertices  []*Anchor
	closed    bool
	curved    bool
	automatic bool
	beginning float64
	ending    float64
	limit     int

	verticesDirty bool
	lengthDirty   bool

	lengths        []float64
	length         float64
	renderVertices []*Anchor

	onChange func()
}

// NewPath returns an open path through the given anchors with caller-authored commands and handles.
func NewPath(anchors ...*Anchor) *Path {
	p := &Path{
		Style:    DefaultStyle,
		vertices: append([]*Anchor{}, anchors...),
		ending:   1.0,
	}
	p.verticesDirty = true
	p.lengthDirty = true
	return p
}

// Empty returns true if the path has no vertices.
func (p *Path) Empty() bool {
	return len(p.vertices) == 0
}

// Len returns the number of authored vertices.
func (p *Path) Len() int {
	return len(p.vertices)
}

// Vertex returns the anchor at index i. After mutating it directly, call Touch.
func (p *Path) Vertex(i int) *Anchor {
	return p.vertices[i]
}

// Vertices returns the authored vertex sequence. The slice is owned by the path; mutate anchors through it only if followed by Touch.
func (p *Path) Vertices() []*Anchor {
	return p.vertices
}

// SetVertex replaces the anchor at index i.
func (p *Path) SetVertex(i int, a *Anchor) {
	p.vertices[i] = a
	p.markDirty(true)
}

// Append adds anchors to the end of the vertex sequence.
func (p *Path) Append(anchors ...*Anchor) {
	p.vertices = append(p.vertices, anchors...)
	p.markDirty(true)
}

// Insert inserts anchors before index i.
func (p *Path) Insert(i int, anchors ...*Anchor) {
	verts := make([]*Anchor, 0, len(p.vertices)+len(anchors))
	verts = append(verts, p.vertices[:i]...)
	verts = append(verts, anchors...)
	verts = append(verts, p.vertices[i:]...)
	p.vertices = verts
	p.markDirty(true)
}

// Remove removes and returns the anchor at index i.
func (p *Path) Remove(i int) *Anchor {
	v := p.vertices[i]
	p.vertices = append(p.vertices[:i], p.vertices[i+1:]...)
	p.markDirty(true)
	return v
}

// Touch marks the path dirty after anchors were mutated directly. When the path is automatic, edited handles are overwritten by the next recompute.
func (p *Path) Touch() {
	p.markDirty(true)
}

// Closed returns whether an implicit final segment connects the last vertex back to the first.
func (p *Path) Closed() bool {
	return p.closed
}

// SetClosed sets whether the path wraps back to its first vertex.
func (p *Path) SetClosed(closed bool) {
	if p.closed != closed {
		p.closed = closed
		p.markDirty(true)
	}
}

// Curved returns whether automatic derivation computes smooth handles through all points.
func (p *Path) Curved() bool {
	return p.curved
}

// SetCurved sets whether automatic derivation smooths the path through its points.
func (p *Path) SetCurved(curved bool) {
	if p.curved != curved {
		p.curved = curved
		p.markDirty(true)
	}
}

// Automatic returns whether commands and handles are engine-derived on every recompute.
func (p *Path) Automatic() bool {
	return p.automatic
}

// SetAutomatic sets whether the engine derives commands and handles, ignoring user edits to them.
func (p *Path) SetAutomatic(automatic bool) {
	if p.automatic != automatic {
		p.automatic = automatic
		p.markDirty(true)
	}
}

// Window returns the normalized arc length window selecting the rendered part of the path.
func (p *Path) Window() (float64, float64) {
	return p.beginning, p.ending
}

// SetWindow sets the normalized arc length window to render. The bounds are stored as given; beginning may exceed ending, in which case they are swapped before use.
func (p *Path) SetWindow(beginning, ending float64) {
	if p.beginning != beginning || p.ending != ending {
		p.beginning = beginning
		p.ending = ending
		p.markDirty(false)
	}
}

// Resolution returns the subdivision limit used for arc length integration.
func (p *Path) Resolution() int {
	return p.resolution()
}

// SetResolution sets the subdivision limit used for arc length integration. Zero or negative restores the default.
func (p *Path) SetResolution(limit int) {
	if p.limit != limit {
		p.limit = limit
		p.markDirty(true)
	}
}

func (p *Path) resolution() int {
	if p.limit <= 0 {
		return DefaultResolution
	}
	return p.limit
}

// OnChange registers fn to be called on every mutation. An owning container can use it to propagate redraw signals upward; the path itself never reaches outside its own state.
func (p *Path) OnChange(fn func()) {
	p.onChange = fn
}

func (p *Path) markDirty(length bool) {
	p.verticesDirty = true
	if length {
		p.lengthDirty = true
	}
	if p.onChange != nil {
		p.onChange()
	}
}

// Length returns the arc length of the full path, including the wrap segment when closed. The value is cached and recomputed lazily.
func (p *Path) Length() float64 {
	p.update()
	return p.length
}

// RenderVertices returns the trimmed, ready to draw vertex buffer, beginning with a move command. The anchors are owned by the path and are valid as a read-only snapshot until the next mutation.
func (p *Path) RenderVertices() []*Anchor {
	p.update()
	return p.renderVertices
}

// RenderClosed reports whether the render buffer should be drawn closed. A closed path trimmed to a partial window renders open.
func (p *Path) RenderClosed() bool {
	lo := math.Min(p.beginning, p.ending)
	hi := math.Max(p.beginning, p.ending)
	return p.closed && lo <= 0.0 && 1.0 <= hi
}

// update runs the recompute pipeline if any dirty flag is set: derive automatic commands and handles, rebuild the arc length index, and reconstruct the render buffer. A second call without intervening mutation is a no-op.
func (p *Path) update() {
	if !p.verticesDirty && !p.lengthDirty {
		return
	}
	p.plot()
	if p.lengthDirty {
		p.updateLength()
		p.lengthDirty = false
	}
	p.trim()
	p.verticesDirty = false
}

// plot derives the segment commands when the path is automatic: smooth control handles through all points when curved, plain lines otherwise. Manual paths keep their authored commands and handles verbatim.
func (p *Path) plot() {
	if !p.automatic {
		return
	}
	if p.curved {
		smooth(p.vertices, p.closed)
		return
	}
	for i, v := range p.vertices {
		if i == 0 {
			v.Command = MoveCmd
		} else {
			v.Command = LineCmd
		}
		v.ClearLeft()
		v.ClearRight()
	}
}

// smooth derives control handles so the contour passes smoothly through every vertex, estimating each tangent from the vertex's neighbours. Open contours clamp the neighbour indices, leaving the end vertices with inactive handles.
func smooth(vertices []*Anchor, closed bool) {
	n := len(vertices)
	for i, v := range vertices {
		prev, next := i-1, i+1
		if closed {
			prev = (i - 1 + n) % n
			next = (i + 1) % n
		} else {
			if prev < 0 {
				prev = 0
			}
			if n <= next {
				next = n - 1
			}
		}
		smoothAnchor(vertices[prev], v, vertices[next])
		if i == 0 {
			v.Command = MoveCmd
		} else {
			v.Command = CurveCmd
		}
	}
}

func smoothAnchor(a, b, c *Anchor) {
	d1 := a.Position.Sub(b.Position).Length()
	d2 := c.Position.Sub(b.Position).Length()
	if d1 < 0.0001 || d2 < 0.0001 {
		b.ClearLeft()
		b.ClearRight()
		return
	}

	a1 := a.Position.Sub(b.Position).Angle()
	a2 := c.Position.Sub(b.Position).Angle()
	mid := (a1 + a2) / 2.0
	d1 *= 0.33
	d2 *= 0.33
	if a2 < a1 {
		mid += math.Pi / 2.0
	} else {
		mid -= math.Pi / 2.0
	}

	left := Point{math.Cos(mid) * d1, math.Sin(mid) * d1}
	mid -= math.Pi
	right := Point{math.Cos(mid) * d2, math.Sin(mid) * d2}
	if b.Relative {
		b.Left = left
		b.Right = right
	} else {
		b.Left = b.Position.Add(left)
		b.Right = b.Position.Add(right)
	}
}

// trim rebuilds the render buffer, restricting it to the normalized arc length window. Boundary anchors are synthesized by pointAt when the window does not land exactly on authored vertices, with the adjacent handles blended so the truncated segments keep their tangents.
func (p *Path) trim() {
	p.renderVertices = p.renderVertices[:0]
	n := len(p.vertices)
	if n == 0 {
		return
	}

	lo := math.Min(p.beginning, p.ending)
	hi := math.Max(p.beginning, p.ending)

	bid := p.parameterAtLength(lo * p.length)
	eid := p.parameterAtLength(hi * p.length)
	low := int(math.Ceil(bid))
	high := int(math.Floor(eid))

	startEmitted := false
	endEmitted := false
	for i := 0; i < n && !endEmitted; i++ {
		v := p.vertices[i]
		switch {
		case high < i:
			// the window ends inside the segment arriving at this vertex
			end := p.pointAt(hi, nil)
			end.Command = v.Command
			endEmitted = true
			if last := len(p.renderVertices); 0 < last {
				blendOutgoing(p.renderVertices[last-1], end.T)
			}
			p.renderVertices = append(p.renderVertices, end)
		case low <= i:
			a := v.Copy()
			if i == high && p.containsLength(hi) {
				endEmitted = true
				if !p.closed {
					a.ClearRight()
				}
			}
			if i == low && p.containsLength(lo) {
				startEmitted = true
				a.Command = MoveCmd
				if !p.closed {
					a.ClearLeft()
				}
			}
			p.renderVertices = append(p.renderVertices, a)
		}
	}

	if !endEmitted && p.closed && !p.RenderClosed() {
		// the window ends inside the wrap segment
		end := p.pointAt(hi, nil)
		if last := len(p.renderVertices); 0 < last {
			blendOutgoing(p.renderVertices[last-1], end.T)
		}
		p.renderVertices = append(p.renderVertices, end)
	}

	if 0 < low && !startEmitted {
		start := p.pointAt(lo, nil)
		start.Command = MoveCmd
		if 0 < len(p.renderVertices) {
			blendIncoming(p.renderVertices[0], start.T)
		}
		p.renderVertices = append([]*Anchor{start}, p.renderVertices...)
	}
}

// blendOutgoing truncates the right handle of the anchor before a synthetic end to the cut parameter u, keeping the tangent of the shortened segment.
func blendOutgoing(a *Anchor, u float64) {
	if !a.HasRight() {
		return
	}
	if a.Relative {
		a.Right = a.Right.Mul(u)
	} else {
		a.Right = a.Position.Interpolate(a.Right, u)
	}
}

// blendIncoming shortens the left handle of the anchor after a synthetic start by the remaining span 1-u.
func blendIncoming(a *Anchor, u float64) {
	if !a.HasLeft() {
		return
	}
	if a.Relative {
		a.Left = a.Left.Mul(1.0 - u)
	} else {
		a.Left = a.Left.Interpolate(a.Position, u)
	}
}

// Bounds returns the axis aligned bounding rectangle of the render buffer transformed by m, expanded by half the stroke width when a stroke is set. The four rectangle corners are mapped through m and the bounding box of the mapped corners is returned, so rotations report correct axis aligned extents. Pass Identity for local coordinates.
func (p *Path) Bounds(m Matrix) Rect {
	p.update()
	vs := p.renderVertices
	if len(vs) == 0 {
		return Rect{}
	}

	r := Rect{vs[0].Position.X, vs[0].Position.Y, 0.0, 0.0}
	segment := func(from, to *Anchor) {
		if from.HasRight() || to.HasLeft() {
			q := cubicBezierBounds(from.Position, from.AbsRight(), to.AbsLeft(), to.Position)
			r = r.AddPoint(Point{q.X, q.Y}).AddPoint(Point{q.X + q.W, q.Y + q.H})
		} else {
			r = r.AddPoint(from.Position).AddPoint(to.Position)
		}
	}
	for i := 1; i < len(vs); i++ {
		segment(vs[i-1], vs[i])
	}
	if p.RenderClosed() && 1 < len(vs) {
		segment(vs[len(vs)-1], vs[0])
	}

	if p.HasStroke() {
		w := p.StrokeWidth / 2.0
		r.X -= w
		r.Y -= w
		r.W += p.StrokeWidth
		r.H += p.StrokeWidth
	}
	return r.Transform(m)
}

// Subdivide flattens the path in place, sampling every curved segment into limit straight spans and wrapping when closed. Automatic and curved are disabled afterwards, so the path stays a fixed polyline under further edits.
func (p *Path) Subdivide(limit int) {
	p.update()
	n := len(p.vertices)
	if n == 0 {
		return
	}

	first := p.vertices[0].Copy()
	first.Command = MoveCmd
	first.ClearLeft()
	first.ClearRight()
	verts := []*Anchor{first}

	flatten := func(from, to *Anchor, wrap bool) {
		if !from.HasRight() && !to.HasLeft() {
			if !wrap {
				a := to.Copy()
				a.Command = LineCmd
				a.ClearLeft()
				a.ClearRight()
				verts = append(verts, a)
			}
			return
		}
		points := subdivideCubicBezier(from.Position, from.AbsRight(), to.AbsLeft(), to.Position, limit)
		last := len(points)
		if wrap {
			// the wrap target is already the first vertex
			last--
		}
		for _, q := range points[1:last] {
			verts = append(verts, NewAnchor(q.X, q.Y))
		}
	}
	for i := 1; i < n; i++ {
		flatten(p.vertices[i-1], p.vertices[i], false)
	}
	if p.closed && 1 < n {
		flatten(p.vertices[n-1], p.vertices[0], true)
	}

	p.vertices = verts
	p.automatic = false
	p.curved = false
	p.markDirty(true)
}

// Transform applies an affine transformation to all vertices, handles included.
func (p *Path) Transform(m Matrix) *Path {
	for _, v := range p.vertices {
		v.Transform(m)
	}
	p.markDirty(true)
	return p
}

// Translate translates the path by (x,y).
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Scale scales the path by (x,y) around the origin.
func (p *Path) Scale(x, y float64) *Path {
	return p.Transform(Identity.Scale(x, y))
}

// Rotate rotates the path by rot degrees counter clockwise around the origin.
func (p *Path) Rotate(rot float64) *Path {
	return p.Transform(Identity.Rotate(rot))
}

// Center translates the path so the center of its bounding box lies at the origin.
func (p *Path) Center() *Path {
	c := p.Bounds(Identity).Center()
	return p.Translate(-c.X, -c.Y)
}

// Corner translates the path so the lower left corner of its bounding box lies at the origin.
func (p *Path) Corner() *Path {
	r := p.Bounds(Identity)
	return p.Translate(-r.X, -r.Y)
}

// Pos returns the position of the last vertex, or the origin for an empty path.
func (p *Path) Pos() Point {
	if len(p.vertices) == 0 {
		return Point{}
	}
	return p.vertices[len(p.vertices)-1].Position
}

// MoveTo starts a subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	a := NewAnchor(x, y)
	a.Command = MoveCmd
	p.Append(a)
}

// LineTo adds a straight segment to (x,y).
func (p *Path) LineTo(x, y float64) {
	p.Append(NewAnchor(x, y))
}

// QuadTo adds a quadratic bezier segment with control point (cpx,cpy) towards (x,y).
func (p *Path) QuadTo(cpx, cpy, x, y float64) {
	cp1, cp2 := quadraticToCubicBezier(p.Pos(), Point{cpx, cpy}, Point{x, y})
	p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, x, y)
}

// CubeTo adds a cubic bezier segment with control points (cpx1,cpy1) and (cpx2,cpy2) towards (x,y). The first control point becomes the right handle of the previous vertex. The path must have been started with MoveTo.
func (p *Path) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	prev := p.vertices[len(p.vertices)-1]
	prev.Right = Point{cpx1, cpy1}
	if prev.Relative {
		prev.Right = prev.Right.Sub(prev.Position)
	}

	a := NewAnchor(x, y)
	a.Command = CurveCmd
	a.SetAbsLeft(Point{cpx2, cpy2})
	p.Append(a)
}

// ArcTo adds an elliptical arc with radii rx and ry, rotated by rot degrees, towards (x,y). The large and sweep flags select among the four candidate arcs as in SVG path data. The arc is approximated by cubic bezier segments of at most a quarter turn each.
func (p *Path) ArcTo(rx, ry, rot float64, large, sweep bool, x, y float64) {
	rx, ry = math.Abs(rx), math.Abs(ry)
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		p.LineTo(x, y)
		return
	}

	start := p.Pos()
	phi := rot * math.Pi / 180.0
	beziers := ellipseToCubicBeziers(start.X, start.Y, rx, ry, phi, large, sweep, x, y)
	if len(beziers) == 0 {
		p.LineTo(x, y)
		return
	}
	for _, b := range beziers {
		p.CubeTo(b[0].X, b[0].Y, b[1].X, b[1].Y, b[2].X, b[2].Y)
	}
}

// Arc adds an elliptical arc with radii rx and ry, rotated by rot degrees, running from angle theta0 to theta1 in degrees. When theta0 < theta1 the arc runs counter clockwise. Sweeps beyond a full turn draw a full ellipse followed by the remainder. The arc starts at the current position, which must have been set with MoveTo.
func (p *Path) Arc(rx, ry, rot, theta0, theta1 float64) {
	phi := rot * math.Pi / 180.0
	theta0 *= math.Pi / 180.0
	theta1 *= math.Pi / 180.0
	dtheta := math.Abs(theta1 - theta0)

	sweep := theta0 < theta1
	large := math.Pi < math.Mod(dtheta, 2.0*math.Pi)
	p0 := ellipsePos(rx, ry, phi, 0.0, 0.0, theta0)
	p1 := ellipsePos(rx, ry, phi, 0.0, 0.0, theta1)

	start := p.Pos()
	center := start.Sub(p0)
	if 2.0*math.Pi <= dtheta {
		// start and end point coincide for full turns, so draw them as two halves
		startOpposite := center.Sub(p0)
		p.ArcTo(rx, ry, rot, large, sweep, startOpposite.X, startOpposite.Y)
		p.ArcTo(rx, ry, rot, large, sweep, start.X, start.Y)
		if Equal(math.Mod(dtheta, 2.0*math.Pi), 0.0) {
			return
		}
	}
	end := center.Add(p1)
	p.ArcTo(rx, ry, rot, large, sweep, end.X, end.Y)
}

// Close closes the path, connecting the last vertex back to the first.
func (p *Path) Close() {
	p.SetClosed(true)
}

// Equals returns true if both paths describe the same contour: pairwise equal vertices, the same closed state and the same render window.
func (p *Path) Equals(q *Path) bool {
	if len(p.vertices) != len(q.vertices) {
		return false
	}
	for i := range p.vertices {
		if !p.vertices[i].Equals(q.vertices[i]) {
			return false
		}
	}
	return p.closed == q.closed && Equal(p.beginning, q.beginning) && Equal(p.ending, q.ending)
}

// Copy returns a deep copy of the path with fresh derived state.
func (p *Path) Copy() *Path {
	q := &Path{
		Style:     p.Style.copy(),
		closed:    p.closed,
		curved:    p.curved,
		automatic: p.automatic,
		beginning: p.beginning,
		ending:    p.ending,
		limit:     p.limit,
	}
	q.vertices = make([]*Anchor, len(p.vertices))
	for i, v := range p.vertices {
		q.vertices[i] = v.Copy()
	}
	q.verticesDirty = true
	q.lengthDirty = true
	return q
}
