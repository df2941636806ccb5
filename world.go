package polyphys

import (
	"github.com/chewxy/math32"
)

// MaxStepsPerAdvance caps how many fixed steps one Advance call may run.
const MaxStepsPerAdvance = 8

// BodyID is a handle to a body owned by a World. Handles from removed bodies
// go stale and resolve to nil. The zero BodyID is never valid.
type BodyID struct {
	index int32
	gen   uint32
}

// Index returns the slot the handle points at.
func (id BodyID) Index() int {
	return int(id.index)
}

// World owns a set of bodies and advances them with a fixed time step.
// Bodies live in a slot array; removed slots are recycled with a new
// generation. A World is not safe for concurrent use.
type World struct {
	cfg Config

	bodies []Body
	gens   []uint32
	alive  []bool
	free   []int32
	live   int

	contacts    []Manifold
	accumulator float32
}

// NewWorld validates cfg and returns an empty world.
func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &World{cfg: cfg}, nil
}

func (w *World) Config() Config {
	return w.cfg
}

// AddBody copies b into the world and returns its handle. Pointers returned
// by Body are invalidated.
func (w *World) AddBody(b Body) BodyID {
	var idx int32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
		w.bodies[idx] = b
	} else {
		idx = int32(len(w.bodies))
		w.bodies = append(w.bodies, b)
		w.gens = append(w.gens, 1)
		w.alive = append(w.alive, false)
	}
	w.alive[idx] = true
	w.live++
	return BodyID{index: idx, gen: w.gens[idx]}
}

// RemoveBody destroys the body behind id. It reports false for stale handles.
func (w *World) RemoveBody(id BodyID) bool {
	if !w.valid(id) {
		return false
	}
	w.bodies[id.index] = Body{}
	w.alive[id.index] = false
	w.gens[id.index]++
	w.free = append(w.free, id.index)
	w.live--
	return true
}

func (w *World) valid(id BodyID) bool {
	return id.index >= 0 && int(id.index) < len(w.bodies) &&
		w.alive[id.index] && w.gens[id.index] == id.gen
}

// Body resolves id. The pointer stays valid until the next AddBody or
// RemoveBody; it is nil for stale handles.
func (w *World) Body(id BodyID) *Body {
	if !w.valid(id) {
		return nil
	}
	return &w.bodies[id.index]
}

// Len returns the number of live bodies.
func (w *World) Len() int {
	return w.live
}

// Each calls fn for every live body in slot order.
func (w *World) Each(fn func(id BodyID, b *Body)) {
	for i := range w.bodies {
		if w.alive[i] {
			fn(BodyID{index: int32(i), gen: w.gens[i]}, &w.bodies[i])
		}
	}
}

// Contacts returns the manifolds built by the last Update. The slice is
// reused by the next Update.
func (w *World) Contacts() []Manifold {
	return w.contacts
}

// Collide runs the narrow phase on two bodies without touching the world.
// ok is false when either handle is stale or the bodies do not touch.
func (w *World) Collide(a, b BodyID) (m Manifold, ok bool) {
	if !w.valid(a) || !w.valid(b) || a == b {
		return Manifold{}, false
	}
	m = collide(w.bodies, a, b)
	return m, m.ContactCount > 0
}

// Update advances the world by one time step.
func (w *World) Update() {
	dt, g := w.cfg.TimeStep, w.cfg.Gravity

	w.contacts = w.contacts[:0]
	for i := range w.bodies {
		if !w.alive[i] {
			continue
		}
		for j := i + 1; j < len(w.bodies); j++ {
			if !w.alive[j] {
				continue
			}
			if w.bodies[i].InvMass == 0 && w.bodies[j].InvMass == 0 {
				continue
			}
			a := BodyID{index: int32(i), gen: w.gens[i]}
			b := BodyID{index: int32(j), gen: w.gens[j]}
			if m := collide(w.bodies, a, b); m.ContactCount > 0 {
				w.contacts = append(w.contacts, m)
			}
		}
	}

	for i := range w.bodies {
		w.bodies[i].integrateForces(g, dt)
	}

	for i := range w.contacts {
		w.contacts[i].initialize(w.bodies)
	}

	for it := 0; it < w.cfg.Iterations; it++ {
		for i := range w.contacts {
			w.contacts[i].applyImpulse(w.bodies)
		}
	}

	for i := range w.bodies {
		w.bodies[i].integrateVelocity(g, dt)
	}

	for i := range w.contacts {
		w.contacts[i].positionalCorrection(w.bodies)
	}

	for i := range w.bodies {
		w.bodies[i].Force = Vec2{}
		w.bodies[i].Torque = 0
	}
}

// Advance accumulates elapsed seconds and runs as many fixed steps as fit,
// up to MaxStepsPerAdvance. Time beyond the cap is dropped. It returns the
// number of steps run.
func (w *World) Advance(elapsed float32) int {
	if !finite(elapsed) || elapsed <= 0 {
		return 0
	}
	w.accumulator += elapsed
	steps := 0
	for w.accumulator >= w.cfg.TimeStep {
		if steps == MaxStepsPerAdvance {
			w.accumulator = math32.Mod(w.accumulator, w.cfg.TimeStep)
			break
		}
		w.Update()
		w.accumulator -= w.cfg.TimeStep
		steps++
	}
	return steps
}
