package polyphys

import (
	"github.com/chewxy/math32"
)

const (
	solverEpsilon = 1e-5

	// PenetrationSlop is the overlap positional correction leaves alone.
	PenetrationSlop = 0.05
	// CorrectionPercent is the share of the remaining overlap removed per step.
	CorrectionPercent = 0.4
)

// MaxContacts bounds the contact points of one manifold.
const MaxContacts = 2

// Manifold describes how one pair of bodies touches during a single step.
// Bodies are referenced by handle and resolved against the world's slots, so a
// manifold never keeps a body alive.
type Manifold struct {
	A, B BodyID

	Contacts     [MaxContacts]Vec2
	ContactCount int

	// Normal is the reference face normal of A, pointing towards B.
	Normal      Vec2
	Penetration float32

	Restitution     float32
	StaticFriction  float32
	DynamicFriction float32
}

func (m *Manifold) addContact(p Vec2) {
	m.Contacts[m.ContactCount] = p
	m.ContactCount++
}

// initialize mixes the material constants of both bodies.
func (m *Manifold) initialize(bodies []Body) {
	a, b := &bodies[m.A.index], &bodies[m.B.index]
	m.Restitution = math32.Min(a.Restitution, b.Restitution)
	m.StaticFriction = math32.Sqrt(a.StaticFriction * b.StaticFriction)
	m.DynamicFriction = math32.Sqrt(a.DynamicFriction * b.DynamicFriction)
}

// applyImpulse runs one sequential impulse pass over the contact points.
// A separating contact, or one whose friction impulse is negligible, is
// skipped and the pass moves on to the next point.
func (m *Manifold) applyImpulse(bodies []Body) {
	a, b := &bodies[m.A.index], &bodies[m.B.index]
	if a.InvMass < solverEpsilon && b.InvMass < solverEpsilon {
		return
	}

	count := float32(m.ContactCount)
	for i := 0; i < m.ContactCount; i++ {
		ra := m.Contacts[i].Sub(a.Position)
		rb := m.Contacts[i].Sub(b.Position)

		rv := b.velocityAt(rb).Sub(a.velocityAt(ra))
		contactVel := rv.Dot(m.Normal)
		if contactVel > 0 {
			continue
		}

		raN := ra.Cross(m.Normal)
		rbN := rb.Cross(m.Normal)
		denom := a.InvMass + b.InvMass +
			raN*raN*a.InvInertia +
			rbN*rbN*b.InvInertia

		jn := -(1 + m.Restitution) * contactVel / (denom * count)
		impulse := m.Normal.Scale(jn)
		a.ApplyImpulse(impulse.Neg(), ra)
		b.ApplyImpulse(impulse, rb)

		rv = b.velocityAt(rb).Sub(a.velocityAt(ra))
		t := rv.Sub(m.Normal.Scale(rv.Dot(m.Normal)))
		t.Normalize()

		jt := -rv.Dot(t) / (denom * count)
		if math32.Abs(jt) < solverEpsilon {
			continue
		}

		if math32.Abs(jt) < jn*m.StaticFriction {
			impulse = t.Scale(jt)
		} else {
			impulse = t.Scale(-jn * m.DynamicFriction)
		}
		a.ApplyImpulse(impulse.Neg(), ra)
		b.ApplyImpulse(impulse, rb)
	}
}

// positionalCorrection pushes the bodies apart along the normal by a share of
// the overlap beyond PenetrationSlop, weighted by inverse mass.
func (m *Manifold) positionalCorrection(bodies []Body) {
	a, b := &bodies[m.A.index], &bodies[m.B.index]
	if a.InvMass == 0 && b.InvMass == 0 {
		return
	}
	depth := math32.Max(m.Penetration-PenetrationSlop, 0)
	correction := m.Normal.Scale(depth / (a.InvMass + b.InvMass) * CorrectionPercent)
	a.Position = a.Position.Sub(correction.Scale(a.InvMass))
	b.Position = b.Position.Add(correction.Scale(b.InvMass))
}
