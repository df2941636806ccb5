package polyphys

import (
	"math"

	"github.com/chewxy/math32"
)

// contactEpsilon is the depth below which a clipped point is not a contact.
const contactEpsilon = 1e-4

// support returns the vertex of p furthest along dir. Ties keep the first
// vertex found.
func support(p *Polygon, dir Vec2) Vec2 {
	if p.Count == 0 {
		panic("polyphys: support point of empty polygon")
	}
	best := p.Vertices[0]
	bestProj := best.Dot(dir)
	for i := 1; i < p.Count; i++ {
		if proj := p.Vertices[i].Dot(dir); proj > bestProj {
			best, bestProj = p.Vertices[i], proj
		}
	}
	return best
}

// maxSeparation tests every edge normal of p against q and returns the
// largest signed separation with its edge index. Positive means the normal is
// a separating axis. The work happens in q's local frame.
func maxSeparation(p, q *Body) (float32, int) {
	qT := q.Transform().Transpose()
	rel := qT.Mul(p.Transform())
	best, bestIdx := float32(-math.MaxFloat32), -1
	for i := 0; i < p.Shape.Count; i++ {
		n := rel.MulVec(p.Shape.Normal(i))
		s := support(&q.Shape, n.Neg())
		v := qT.MulVec(p.WorldVertex(i).Sub(q.Position))
		if d := s.Sub(v).Dot(n); d > best {
			best, bestIdx = d, i
		}
	}
	return best, bestIdx
}

// incidentFace returns, in world space, the edge of inc whose normal is most
// anti-parallel to face refFace of ref.
func incidentFace(inc, ref *Body, refFace int) [2]Vec2 {
	irot := inc.Transform()
	refN := irot.Transpose().MulVec(ref.Transform().MulVec(ref.Shape.Normal(refFace)))
	face, minProj := 0, float32(math.MaxFloat32)
	for i := 0; i < inc.Shape.Count; i++ {
		if proj := inc.Shape.Normal(i).Dot(refN); proj < minProj {
			face, minProj = i, proj
		}
	}
	return [2]Vec2{inc.WorldVertex(face), inc.WorldVertex(face + 1)}
}

type clipped struct {
	p [2]Vec2
	n int
}

func (c *clipped) add(v Vec2) {
	c.p[c.n] = v
	c.n++
}

// clip keeps the part of segment in that lies on the negative side of the
// plane dot(x, n) = off.
func clip(in [2]Vec2, n Vec2, off float32) clipped {
	var out clipped
	d0 := in[0].Dot(n) - off
	d1 := in[1].Dot(n) - off
	if d0 < 0 {
		out.add(in[0])
	}
	if d1 < 0 {
		out.add(in[1])
	}
	// Signs are compared directly: d0*d1 can underflow to zero.
	crosses := (d0 <= 0 && d1 >= 0) || (d0 >= 0 && d1 <= 0)
	if crosses && d0 != d1 {
		k := d1 / (d1 - d0)
		out.add(in[1].Add(in[0].Sub(in[1]).Scale(k)))
	}
	return out
}

// clipFace clips the incident edge against both side planes of the reference
// edge and then against the reference face itself.
func clipFace(inc, ref [2]Vec2, refN Vec2) clipped {
	side := ref[1].Sub(ref[0])
	cp := clip(inc, side, ref[1].Dot(side))
	if cp.n < 2 {
		return cp
	}
	cp = clip(cp.p, side.Neg(), ref[0].Dot(side.Neg()))
	if cp.n < 2 {
		return cp
	}
	return clip(cp.p, refN, ref[0].Dot(refN))
}

// collide runs the separating axis test on bodies a and b and, when they
// overlap, clips the incident face against the reference face. The returned
// manifold names the reference body as A and its normal points from A to B.
// When both candidates are equally deep the lower slot index is the reference,
// so collide(a, b) and collide(b, a) agree.
func collide(bodies []Body, a, b BodyID) Manifold {
	m := Manifold{A: a, B: b}
	ba, bb := &bodies[a.index], &bodies[b.index]

	apen, adx := maxSeparation(ba, bb)
	if apen >= 0 {
		return m
	}
	bpen, bdx := maxSeparation(bb, ba)
	if bpen >= 0 {
		return m
	}

	if apen < bpen || (apen == bpen && b.index < a.index) {
		m.A, m.B = m.B, m.A
		ba, bb = bb, ba
		adx = bdx
	}

	ref := [2]Vec2{ba.WorldVertex(adx), ba.WorldVertex(adx + 1)}
	refN := ba.Transform().MulVec(ba.Shape.Normal(adx))
	inc := incidentFace(bb, ba, adx)

	cp := clipFace(inc, ref, refN)
	if cp.n < 2 {
		return m
	}

	off := ref[0].Dot(refN)
	pen0 := off - cp.p[0].Dot(refN)
	pen1 := off - cp.p[1].Dot(refN)

	m.Penetration = (pen0 + pen1) / 2
	if math32.Abs(pen0) > contactEpsilon {
		m.addContact(cp.p[0])
	}
	if math32.Abs(pen1) > contactEpsilon {
		m.addContact(cp.p[1])
	}
	m.Normal = refN
	return m
}
