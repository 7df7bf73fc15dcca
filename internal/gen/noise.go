package gen

import (
	"strconv"

	"github.com/aquilax/go-perlin"

	"semifractal/internal/core"
)

const (
	noiseAlpha       = 2.0
	noiseBeta        = 2.0
	noiseOctaves     = 3
	defaultNoiseFreq = 1.0 / 64
)

// Noise modulates the flip probability with seeded 2-D Perlin noise sampled
// at the cell position, so perturbation clusters into patches instead of
// being spread uniformly. The noise field is rebuilt from the generation
// seed on Reset, keeping output reproducible from the seed alone.
type Noise struct {
	P    float64
	Freq float64

	field *perlin.Perlin
}

// NewNoise returns a Noise policy with flip probability p and the default
// sampling frequency.
func NewNoise(p float64) *Noise {
	return &Noise{P: p, Freq: defaultNoiseFreq}
}

// Name returns the policy identifier.
func (*Noise) Name() string { return "noise" }

// Reset reseeds the noise field for a new generation.
func (n *Noise) Reset(seed int64) {
	n.field = perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed)
}

// Perturb flips state with a probability scaled by the local noise value.
func (n *Noise) Perturb(state uint8, row, col int, rng *core.RNG) uint8 {
	if n.field == nil || n.P <= 0 {
		return state
	}
	freq := n.Freq
	if freq <= 0 {
		freq = defaultNoiseFreq
	}
	// Noise2D is roughly in [-1, 1]; map it onto [0, 1] so the local
	// probability stays within [0, P].
	local := n.P * clamp01(0.5+0.5*n.field.Noise2D(float64(col)*freq, float64(row)*freq))
	if rng.Float64() < local {
		return state ^ 1
	}
	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	Register("noise", func(cfg map[string]string) Perturber {
		n := NewNoise(probFromMap(cfg))
		if cfg != nil {
			if v, ok := cfg["freq"]; ok {
				if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
					n.Freq = parsed
				}
			}
		}
		return n
	})
}
