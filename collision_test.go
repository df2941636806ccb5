package polyphys

import (
	"math"
	"testing"
)

func pair(a, b Body) ([]Body, BodyID, BodyID) {
	return []Body{a, b}, BodyID{index: 0, gen: 1}, BodyID{index: 1, gen: 1}
}

func TestCollide_Disjoint(t *testing.T) {
	pentagon := Body{Position: Vec2{1.6, 1.6}, Angle: 1, Shape: NewRegularPolygon(5, 1)}
	tilted := box(2, 2, Vec2{}, 1, 1)
	tilted.Angle = 0.3

	tests := []struct {
		name string
		a, b Body
	}{
		{"apart on x", box(2, 2, Vec2{}, 1, 1), box(2, 2, Vec2{5, 0}, 1, 1)},
		{"apart on y", box(2, 2, Vec2{}, 1, 1), box(2, 2, Vec2{0, -2.5}, 1, 1)},
		{"touching edges", box(2, 2, Vec2{}, 1, 1), box(2, 2, Vec2{2, 0}, 1, 1)},
		{"near miss with rotation", tilted, pentagon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bodies, a, b := pair(tt.a, tt.b)
			if m := collide(bodies, a, b); m.ContactCount != 0 {
				t.Errorf("expected no contacts, got %+v", m)
			}
			if m := collide(bodies, b, a); m.ContactCount != 0 {
				t.Errorf("expected no contacts in reverse order, got %+v", m)
			}
		})
	}
}

func TestCollide_CoincidingSquares(t *testing.T) {
	bodies, a, b := pair(box(2, 2, Vec2{}, 1, 1), box(2, 2, Vec2{}, 1, 1))
	m := collide(bodies, a, b)
	if m.ContactCount != 2 {
		t.Fatalf("expected 2 contacts, got %d", m.ContactCount)
	}
	aligned := false
	for i := 0; i < 4; i++ {
		if nearVec(m.Normal, bodies[0].Shape.Normal(i), tolerance) {
			aligned = true
		}
	}
	if !aligned {
		t.Errorf("normal %v is not an edge normal of the square", m.Normal)
	}
	if !near(m.Penetration, 2, tolerance) {
		t.Errorf("penetration = %v, want 2", m.Penetration)
	}
	if m != collide(bodies, b, a) {
		t.Errorf("manifold depends on argument order")
	}
}

func TestCollide_OrderIndependent(t *testing.T) {
	top := box(2, 2, Vec2{0.5, -1.7}, 1, 1)
	top.Angle = 0.1
	bodies, a, b := pair(box(4, 2, Vec2{}, 1, 1), top)

	ab := collide(bodies, a, b)
	ba := collide(bodies, b, a)
	if ab.ContactCount == 0 || ab.Penetration <= 0 {
		t.Fatalf("expected overlap, got %+v", ab)
	}
	if ab != ba {
		t.Fatalf("manifolds differ:\n%+v\n%+v", ab, ba)
	}

	// Seen from the caller's order the normal flips.
	oriented := func(m Manifold, first BodyID) Vec2 {
		if m.A == first {
			return m.Normal
		}
		return m.Normal.Neg()
	}
	if !nearVec(oriented(ab, a), oriented(ba, b).Neg(), 0) {
		t.Errorf("normals %v and %v are not opposite", oriented(ab, a), oriented(ba, b))
	}
	// The wide box is the reference and its top face points up.
	if ab.A != a || !nearVec(ab.Normal, Vec2{0, -1}, tolerance) {
		t.Errorf("reference %v normal %v", ab.A, ab.Normal)
	}
}

func TestCollide_CornerContact(t *testing.T) {
	diamond := box(2, 2, Vec2{0, -math.Sqrt2 + 0.1}, 1, 1)
	diamond.Angle = math.Pi / 4
	bodies, a, b := pair(box(20, 2, Vec2{0, 1}, 0, 0), diamond)

	m := collide(bodies, a, b)
	if m.ContactCount != 1 {
		t.Fatalf("expected a single contact, got %d", m.ContactCount)
	}
	if !nearVec(m.Contacts[0], Vec2{0, 0.1}, 1e-3) {
		t.Errorf("contact = %v", m.Contacts[0])
	}
	// Averaged with the zero-depth point where the edge leaves the ground.
	if !near(m.Penetration, 0.05, 1e-3) {
		t.Errorf("penetration = %v, want 0.05", m.Penetration)
	}
	if m.A != a || !nearVec(m.Normal, Vec2{0, -1}, tolerance) {
		t.Errorf("reference %v normal %v", m.A, m.Normal)
	}
}

func TestSupport_FirstWins(t *testing.T) {
	p := NewRectangle(2, 2)
	// Vertices 2 and 3 tie along +y; vertex 2 comes first.
	if got := support(&p, Vec2{0, 1}); got != p.Vertices[2] {
		t.Errorf("support = %v, want %v", got, p.Vertices[2])
	}
	if got := support(&p, Vec2{1, 1}); got != p.Vertices[3] {
		t.Errorf("support = %v, want %v", got, p.Vertices[3])
	}
}

func TestClip(t *testing.T) {
	tests := []struct {
		name string
		in   [2]Vec2
		n    int
	}{
		{"both inside", [2]Vec2{{-1, 0}, {-2, 0}}, 2},
		{"crossing", [2]Vec2{{-1, 0}, {1, 0}}, 2},
		{"both outside", [2]Vec2{{1, 0}, {2, 0}}, 0},
		{"one on plane", [2]Vec2{{0, 0}, {-1, 0}}, 2},
		{"lying on plane", [2]Vec2{{0, 1}, {0, -1}}, 0},
		{"tiny depths", [2]Vec2{{-1e-30, 0}, {-1e-30, 1}}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := clip(tt.in, Vec2{1, 0}, 0)
			if cp.n != tt.n {
				t.Fatalf("kept %d points, want %d", cp.n, tt.n)
			}
			for i := 0; i < cp.n; i++ {
				if cp.p[i].X > 0 {
					t.Errorf("point %v is outside the plane", cp.p[i])
				}
			}
		})
	}

	cp := clip([2]Vec2{{-1, 0}, {1, 2}}, Vec2{1, 0}, 0)
	if !nearVec(cp.p[1], Vec2{0, 1}, tolerance) {
		t.Errorf("intersection = %v, want 0,1", cp.p[1])
	}
}
