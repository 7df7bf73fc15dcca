package gen

import (
	"strconv"

	"semifractal/internal/core"
)

// Perturber overrides rule-computed cell states during generation. Reset is
// called once per generation with the seed before any Perturb call; all
// randomness a policy needs must derive from that seed or from rng, never
// from an outside source, or reproducibility is lost.
type Perturber interface {
	Name() string
	Reset(seed int64)
	Perturb(state uint8, row, col int, rng *core.RNG) uint8
}

// Factory constructs a Perturber using an optional configuration map.
type Factory func(cfg map[string]string) Perturber

var perturbers = map[string]Factory{}

// Register adds a perturbation policy factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	perturbers[name] = f
}

// Perturbers exposes the registry of available policy factories.
func Perturbers() map[string]Factory {
	return perturbers
}

// DefaultFlipProbability matches the original behavior of dropping roughly
// one live cell in two thousand.
const DefaultFlipProbability = 0.0005

func probFromMap(cfg map[string]string) float64 {
	p := DefaultFlipProbability
	if cfg == nil {
		return p
	}
	if v, ok := cfg["p"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			p = parsed
		}
	}
	return p
}

// None is the identity policy. It draws nothing from the stream, so a
// generation with None is bit-identical to one with a nil perturber.
type None struct{}

// Name returns the policy identifier.
func (None) Name() string { return "none" }

// Reset is a no-op; the policy holds no state.
func (None) Reset(int64) {}

// Perturb returns the computed state unchanged.
func (None) Perturb(state uint8, _, _ int, _ *core.RNG) uint8 { return state }

// Uniform inverts every computed state with probability P. P of zero leaves
// the field untouched; P of one inverts every cell.
type Uniform struct {
	P float64
}

// Name returns the policy identifier.
func (Uniform) Name() string { return "uniform" }

// Reset is a no-op; the stream carries all the state.
func (Uniform) Reset(int64) {}

// Perturb flips state with probability P.
func (u Uniform) Perturb(state uint8, _, _ int, rng *core.RNG) uint8 {
	if rng.Float64() < u.P {
		return state ^ 1
	}
	return state
}

// Decay kills live computed cells with probability P and never touches dead
// ones. This is the classic randomized variant of the rule: the picture
// stays recognizably fractal but loses cells along the way.
type Decay struct {
	P float64
}

// Name returns the policy identifier.
func (Decay) Name() string { return "decay" }

// Reset is a no-op; the stream carries all the state.
func (Decay) Reset(int64) {}

// Perturb clears a live state with probability P.
func (d Decay) Perturb(state uint8, _, _ int, rng *core.RNG) uint8 {
	if state != 0 && rng.Float64() < d.P {
		return 0
	}
	return state
}

func init() {
	Register("none", func(map[string]string) Perturber { return None{} })
	Register("uniform", func(cfg map[string]string) Perturber { return Uniform{P: probFromMap(cfg)} })
	Register("decay", func(cfg map[string]string) Perturber { return Decay{P: probFromMap(cfg)} })
}
