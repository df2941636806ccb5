package polyphys

// Body is a rigid convex polygon. Callers fill in the fields directly before
// handing the body to a World. An InvMass of zero makes the body immovable
// and an InvInertia of zero stops it from rotating.
type Body struct {
	Position Vec2
	Velocity Vec2
	Force    Vec2

	Angle           float32
	AngularVelocity float32
	Torque          float32

	Mass, InvMass       float32
	Inertia, InvInertia float32

	Restitution     float32
	StaticFriction  float32
	DynamicFriction float32

	Shape Polygon
}

// SetMass sets Mass and its reciprocal. A mass of zero or less makes the body
// static.
func (b *Body) SetMass(m float32) {
	if m <= 0 {
		b.Mass, b.InvMass = 0, 0
		return
	}
	b.Mass, b.InvMass = m, 1/m
}

// SetInertia sets Inertia and its reciprocal. Zero or less locks rotation.
func (b *Body) SetInertia(i float32) {
	if i <= 0 {
		b.Inertia, b.InvInertia = 0, 0
		return
	}
	b.Inertia, b.InvInertia = i, 1/i
}

// IsStatic reports whether the body has infinite mass.
func (b *Body) IsStatic() bool {
	return b.InvMass == 0
}

// ApplyForce accumulates f until the end of the next step.
func (b *Body) ApplyForce(f Vec2) {
	b.Force = b.Force.Add(f)
}

// ApplyTorque accumulates t until the end of the next step.
func (b *Body) ApplyTorque(t float32) {
	b.Torque += t
}

// ApplyImpulse changes velocity instantly. r is the world space offset from
// the center of mass to the point the impulse acts on.
func (b *Body) ApplyImpulse(impulse, r Vec2) {
	b.Velocity = b.Velocity.Add(impulse.Scale(b.InvMass))
	b.AngularVelocity += b.InvInertia * r.Cross(impulse)
}

// Transform returns the body's rotation.
func (b *Body) Transform() Mat22 {
	return Mat22Radians(b.Angle)
}

// WorldVertex returns shape vertex i in world space.
func (b *Body) WorldVertex(i int) Vec2 {
	return b.Transform().MulVec(b.Shape.Vertex(i)).Add(b.Position)
}

// WorldVertices appends the shape's world space vertices to dst.
func (b *Body) WorldVertices(dst []Vec2) []Vec2 {
	rot := b.Transform()
	for i := 0; i < b.Shape.Count; i++ {
		dst = append(dst, rot.MulVec(b.Shape.Vertices[i]).Add(b.Position))
	}
	return dst
}

// velocityAt returns the world velocity of the point at offset r.
func (b *Body) velocityAt(r Vec2) Vec2 {
	return b.Velocity.Add(ScalarCross(b.AngularVelocity, r))
}

func (b *Body) integrateForces(gravity Vec2, dt float32) {
	if b.InvMass == 0 {
		return
	}
	b.Velocity = b.Velocity.Add(b.Force.Scale(b.InvMass).Add(gravity).Scale(dt / 2))
	b.AngularVelocity += b.Torque * b.InvInertia * dt / 2
}

func (b *Body) integrateVelocity(gravity Vec2, dt float32) {
	if b.InvMass == 0 {
		return
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Angle += b.AngularVelocity * dt
	b.integrateForces(gravity, dt)
}
