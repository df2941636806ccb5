package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/koteyur/polyphys-go"
)

// Vec is a polyphys.Vec2 that decodes from either [x, y] or {x: ..., y: ...}.
type Vec polyphys.Vec2

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float32
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: vector needs 2 components, got %d", node.Line, len(xy))
		}
		v.X, v.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float32 `yaml:"x"`
			Y float32 `yaml:"y"`
		}
		if err := node.Decode(&xy); err != nil {
			return err
		}
		v.X, v.Y = xy.X, xy.Y
		return nil
	}
	return fmt.Errorf("line %d: vector must be a sequence or a mapping", node.Line)
}
