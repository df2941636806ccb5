package polyphys

import (
	"math"
	"testing"
)

func TestBody_ApplyImpulse(t *testing.T) {
	b := box(1, 1, Vec2{}, 2, 4)
	b.ApplyImpulse(Vec2{2, 0}, Vec2{0, 1})
	if b.Velocity != (Vec2{1, 0}) {
		t.Errorf("velocity = %v", b.Velocity)
	}
	if !near(b.AngularVelocity, -0.5, tolerance) {
		t.Errorf("angular velocity = %v", b.AngularVelocity)
	}
}

func TestBody_StaticIgnoresImpulseAndForce(t *testing.T) {
	b := ground()
	b.ApplyImpulse(Vec2{100, -50}, Vec2{3, 4})
	b.ApplyForce(Vec2{1e6, 1e6})
	b.ApplyTorque(1e6)
	b.integrateForces(Vec2{0, 70}, 1.0/60)
	b.integrateVelocity(Vec2{0, 70}, 1.0/60)
	if b.Velocity != (Vec2{}) || b.AngularVelocity != 0 || b.Position != (Vec2{400, 590}) {
		t.Errorf("static body moved: %+v", b)
	}
}

func TestBody_ApplyForceAccumulates(t *testing.T) {
	var b Body
	b.ApplyForce(Vec2{1, 2})
	b.ApplyForce(Vec2{3, -1})
	b.ApplyTorque(0.5)
	b.ApplyTorque(0.25)
	if b.Force != (Vec2{4, 1}) || b.Torque != 0.75 {
		t.Errorf("force %v torque %v", b.Force, b.Torque)
	}
}

func TestBody_SetMass(t *testing.T) {
	var b Body
	b.SetMass(4)
	b.SetInertia(0.5)
	if b.InvMass != 0.25 || b.InvInertia != 2 {
		t.Errorf("inverse mass %v inverse inertia %v", b.InvMass, b.InvInertia)
	}
	b.SetMass(0)
	b.SetInertia(-1)
	if !b.IsStatic() || b.Mass != 0 || b.InvInertia != 0 {
		t.Errorf("expected static body, got %+v", b)
	}
}

func TestBody_WorldVertex(t *testing.T) {
	b := box(2, 2, Vec2{10, 5}, 1, 1)
	b.Angle = math.Pi / 2
	// (1,-1) rotated a quarter turn is (1,1).
	if got := b.WorldVertex(0); !nearVec(got, Vec2{11, 6}, tolerance) {
		t.Errorf("vertex 0 = %v", got)
	}
	vs := b.WorldVertices(nil)
	if len(vs) != 4 || !nearVec(vs[0], b.WorldVertex(0), tolerance) || !nearVec(vs[3], b.WorldVertex(3), tolerance) {
		t.Errorf("world vertices = %v", vs)
	}
}
