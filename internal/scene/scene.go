// Package scene loads world parameters and initial bodies from YAML.
//
// A scene file looks like:
//
//	world:
//	  time_step: 0.0166667
//	  iterations: 10
//	  gravity: [0, 70]
//	bodies:
//	  - kind: rect
//	    top_left: [0, 580]
//	    size: [800, 20]
//	    static: true
//	    restitution: 1
//	  - kind: regular
//	    position: [400, 100]
//	    sides: 5
//	    radius: 50
//
// Omitted world fields keep polyphys.DefaultConfig values.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/koteyur/polyphys-go"
)

const (
	KindRect    = "rect"
	KindRegular = "regular"
)

// Default material and mass values, matching a freshly spawned demo body.
const (
	DefaultRestitution     = 0.5
	DefaultStaticFriction  = 0.1
	DefaultDynamicFriction = 0.09
	DefaultMass            = 1
)

var (
	ErrUnknownKind = errors.New("unknown body kind")
	ErrBadShape    = errors.New("bad shape")
	ErrBadMass     = errors.New("bad mass")
)

// Scene is a decoded scene file.
type Scene struct {
	Config polyphys.Config
	Bodies []polyphys.Body
}

type file struct {
	World  worldSpec  `yaml:"world"`
	Bodies []BodySpec `yaml:"bodies"`
}

type worldSpec struct {
	TimeStep   *float32 `yaml:"time_step"`
	Iterations *int     `yaml:"iterations"`
	Gravity    *Vec     `yaml:"gravity"`
}

// BodySpec describes one body. Pointer fields fall back to defaults when
// omitted.
type BodySpec struct {
	Kind string `yaml:"kind"`

	Position Vec     `yaml:"position"`
	TopLeft  *Vec    `yaml:"top_left"`
	Size     Vec     `yaml:"size"`
	Sides    int     `yaml:"sides"`
	Radius   float32 `yaml:"radius"`

	Angle           float32 `yaml:"angle"`
	Velocity        Vec     `yaml:"velocity"`
	AngularVelocity float32 `yaml:"angular_velocity"`

	Static  bool     `yaml:"static"`
	Density float32  `yaml:"density"`
	Mass    *float32 `yaml:"mass"`
	Inertia *float32 `yaml:"inertia"`

	Restitution     *float32 `yaml:"restitution"`
	StaticFriction  *float32 `yaml:"static_friction"`
	DynamicFriction *float32 `yaml:"dynamic_friction"`
}

// Load reads and parses the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene document. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	s := &Scene{Config: polyphys.DefaultConfig()}
	if f.World.TimeStep != nil {
		s.Config.TimeStep = *f.World.TimeStep
	}
	if f.World.Iterations != nil {
		s.Config.Iterations = *f.World.Iterations
	}
	if f.World.Gravity != nil {
		s.Config.Gravity = polyphys.Vec2(*f.World.Gravity)
	}
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	for i, bs := range f.Bodies {
		b, err := bs.Body()
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		s.Bodies = append(s.Bodies, b)
	}
	return s, nil
}

// Build creates a world from the scene and adds every body to it.
func (s *Scene) Build() (*polyphys.World, []polyphys.BodyID, error) {
	w, err := polyphys.NewWorld(s.Config)
	if err != nil {
		return nil, nil, err
	}
	ids := make([]polyphys.BodyID, 0, len(s.Bodies))
	for _, b := range s.Bodies {
		ids = append(ids, w.AddBody(b))
	}
	return w, ids, nil
}

// Body turns bs into a polyphys.Body.
func (bs BodySpec) Body() (polyphys.Body, error) {
	b := polyphys.Body{
		Position:        polyphys.Vec2(bs.Position),
		Velocity:        polyphys.Vec2(bs.Velocity),
		Angle:           bs.Angle,
		AngularVelocity: bs.AngularVelocity,
		Restitution:     orDefault(bs.Restitution, DefaultRestitution),
		StaticFriction:  orDefault(bs.StaticFriction, DefaultStaticFriction),
		DynamicFriction: orDefault(bs.DynamicFriction, DefaultDynamicFriction),
	}

	switch bs.Kind {
	case KindRect:
		if bs.Size.X <= 0 || bs.Size.Y <= 0 {
			return b, fmt.Errorf("%w: rect size %v", ErrBadShape, bs.Size)
		}
		b.Shape = polyphys.NewRectangle(bs.Size.X, bs.Size.Y)
		if bs.TopLeft != nil {
			b.Position = polyphys.Vec2(*bs.TopLeft).Add(polyphys.Vec2(bs.Size).Scale(0.5))
		}
	case KindRegular:
		if bs.Sides < 3 || bs.Sides > polyphys.MaxVertices {
			return b, fmt.Errorf("%w: %d sides, want 3..%d", ErrBadShape, bs.Sides, polyphys.MaxVertices)
		}
		if bs.Radius <= 0 {
			return b, fmt.Errorf("%w: radius %v", ErrBadShape, bs.Radius)
		}
		b.Shape = polyphys.NewRegularPolygon(bs.Sides, bs.Radius)
	default:
		return b, fmt.Errorf("%w %q", ErrUnknownKind, bs.Kind)
	}

	if bs.Static {
		return b, nil
	}
	if bs.Density < 0 {
		return b, fmt.Errorf("%w: density %v", ErrBadMass, bs.Density)
	}

	if bs.Density > 0 {
		mass, inertia := polyphys.MassProperties(b.Shape, bs.Density)
		b.SetMass(mass)
		b.SetInertia(inertia)
	} else {
		b.SetMass(orDefault(bs.Mass, DefaultMass))
		// Scale the unit density moment to the requested mass.
		area, moment := polyphys.MassProperties(b.Shape, 1)
		b.SetInertia(b.Mass * moment / area)
	}
	if bs.Inertia != nil {
		b.SetInertia(*bs.Inertia)
	}
	if b.InvMass == 0 {
		return b, fmt.Errorf("%w: dynamic body needs a positive mass", ErrBadMass)
	}
	return b, nil
}

func orDefault(v *float32, def float32) float32 {
	if v == nil {
		return def
	}
	return *v
}
