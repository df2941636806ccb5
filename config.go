package polyphys

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrInvalidTimeStep   = errors.New("polyphys: time step must be positive and finite")
	ErrInvalidIterations = errors.New("polyphys: solver needs at least one iteration")
	ErrInvalidGravity    = errors.New("polyphys: gravity must be finite")
)

// Config holds the fixed parameters of a World.
type Config struct {
	TimeStep   float32 `yaml:"time_step"`
	Iterations int     `yaml:"iterations"`
	Gravity    Vec2    `yaml:"gravity"`
}

// DefaultConfig returns a 60 Hz step with 10 solver passes and a downward
// gravity sized for pixel units.
func DefaultConfig() Config {
	return Config{
		TimeStep:   1.0 / 60,
		Iterations: 10,
		Gravity:    Vec2{0, 70},
	}
}

func (c Config) Validate() error {
	if !finite(c.TimeStep) || c.TimeStep <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTimeStep, c.TimeStep)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.Iterations)
	}
	if !finite(c.Gravity.X) || !finite(c.Gravity.Y) {
		return fmt.Errorf("%w: got %v", ErrInvalidGravity, c.Gravity)
	}
	return nil
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
