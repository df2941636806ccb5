package polyphys

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-4

func near(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func nearVec(a, b Vec2, tol float32) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol)
}

func box(w, h float32, pos Vec2, mass, inertia float32) Body {
	b := Body{
		Position:        pos,
		Restitution:     0.5,
		StaticFriction:  0.1,
		DynamicFriction: 0.09,
		Shape:           NewRectangle(w, h),
	}
	b.SetMass(mass)
	b.SetInertia(inertia)
	return b
}

func ground() Body {
	g := box(800, 20, Vec2{400, 590}, 0, 0)
	g.Restitution = 1
	return g
}

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(DefaultConfig())
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
