package ring

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/matzehuels/ringlayout/pkg/errors"
)

// AngleSeed is the starting angle of a ring: a fixed number of degrees or a
// request for a uniformly random start picked once at construction.
type AngleSeed struct {
	degrees float64
	random  bool
}

// Seed returns a fixed seed of deg degrees.
func Seed(deg float64) AngleSeed {
	return AngleSeed{degrees: deg}
}

// RandomSeed returns a seed that is rolled once when a layout is built.
func RandomSeed() AngleSeed {
	return AngleSeed{random: true}
}

// ParseSeed parses "random" or a number of degrees.
func ParseSeed(s string) (AngleSeed, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "random" {
		return RandomSeed(), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
	if err != nil {
		return AngleSeed{}, errors.New(errors.ErrCodeInvalidInput, "invalid angle seed %q", s)
	}
	return Seed(f), nil
}

// IsRandom reports whether the seed is rolled at construction.
func (s AngleSeed) IsRandom() bool { return s.random }

// Degrees returns the fixed seed. It is zero for random seeds.
func (s AngleSeed) Degrees() float64 { return s.degrees }

// String returns "random" or the seed in degrees.
func (s AngleSeed) String() string {
	if s.random {
		return "random"
	}
	return strconv.FormatFloat(s.degrees, 'f', -1, 64)
}

// resolve returns the concrete starting angle in [0, 360) for random seeds.
func (s AngleSeed) resolve(rng *rand.Rand) float64 {
	if !s.random {
		return s.degrees
	}
	if rng == nil {
		return rand.Float64() * 360
	}
	return rng.Float64() * 360
}
