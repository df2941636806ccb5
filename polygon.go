package polyphys

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// MaxVertices bounds the vertex count of a Polygon.
const MaxVertices = 16

// Polygon is a convex vertex loop in body local space. Vertices run
// counter-clockwise on a y-down screen, so the left-hand perpendicular
// (-dy, dx) of every edge points outward.
type Polygon struct {
	Vertices [MaxVertices]Vec2
	Count    int
}

// NewPolygon copies vertices into a Polygon. It panics when more than
// MaxVertices are given.
func NewPolygon(vertices ...Vec2) Polygon {
	if len(vertices) > MaxVertices {
		panic(fmt.Sprintf("polyphys: polygon has %d vertices, max is %d", len(vertices), MaxVertices))
	}
	var p Polygon
	p.Count = copy(p.Vertices[:], vertices)
	return p
}

// NewRectangle returns a w by h box centered on the origin.
func NewRectangle(w, h float32) Polygon {
	hw, hh := w/2, h/2
	return NewPolygon(
		Vec2{hw, -hh},
		Vec2{-hw, -hh},
		Vec2{-hw, hh},
		Vec2{hw, hh},
	)
}

// NewRegularPolygon returns an n-gon inscribed in a circle of radius r.
func NewRegularPolygon(n int, r float32) Polygon {
	if n < 3 || n > MaxVertices {
		panic(fmt.Sprintf("polyphys: regular polygon needs 3..%d sides, got %d", MaxVertices, n))
	}
	var p Polygon
	p.Count = n
	step := 2 * math.Pi / float32(n)
	for i := 0; i < n; i++ {
		a := float32(i) * step
		p.Vertices[i] = Vec2{r * math32.Cos(a), -r * math32.Sin(a)}
	}
	return p
}

// Vertex returns vertex i modulo Count.
func (p *Polygon) Vertex(i int) Vec2 {
	return p.Vertices[i%p.Count]
}

// Normal returns the unit outward normal of edge i, which runs from vertex i
// to vertex i+1.
func (p *Polygon) Normal(i int) Vec2 {
	if p.Count < 2 || i < 0 || i >= p.Count {
		panic(fmt.Sprintf("polyphys: normal %d of polygon with %d vertices", i, p.Count))
	}
	e := p.Vertex(i + 1).Sub(p.Vertices[i])
	n := Vec2{-e.Y, e.X}
	n.Normalize()
	return n
}

// MassProperties integrates the polygon as a fan of triangles around the
// local origin and returns its mass and moment of inertia for the given
// density. Degenerate polygons yield zero for both.
func MassProperties(p Polygon, density float32) (mass, inertia float32) {
	var area, moment float32
	for i := 0; i < p.Count; i++ {
		p1, p2 := p.Vertices[i], p.Vertex(i+1)
		d := p1.Cross(p2)
		area += d / 2
		intx2 := p1.X*p1.X + p2.X*p1.X + p2.X*p2.X
		inty2 := p1.Y*p1.Y + p2.Y*p1.Y + p2.Y*p2.Y
		moment += d * (0.25 / 3) * (intx2 + inty2)
	}
	// Winding is clockwise in y-up terms, so the signed area comes out negative.
	return density * math32.Abs(area), density * math32.Abs(moment)
}
