package vgpath

import (
	"math"
	"math/rand/v2"
)

func RandomPath(n int, closed bool) *Path {
	p := NewPath()
	p.MoveTo(rand.NormFloat64(), rand.NormFloat64())
	for i := 1; i < n; i++ {
		switch rand.IntN(4) {
		case 0:
			p.LineTo(rand.NormFloat64(), rand.NormFloat64())
		case 1:
			p.QuadTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
		case 2:
			p.CubeTo(rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64(), rand.NormFloat64())
		case 3:
			large, sweep := rand.IntN(2) == 0, rand.IntN(2) == 0
			p.ArcTo(math.Abs(rand.NormFloat64()), math.Abs(rand.NormFloat64()), 0.0, large, sweep, rand.NormFloat64(), rand.NormFloat64())
		}
	}
	if closed {
		p.Close()
	}
	return p
}
