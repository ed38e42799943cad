package ring

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/ringlayout/pkg/errors"
)

// Length is a distance with a unit suffix such as "px" or "em".
type Length struct {
	Value float64
	Unit  string
}

// Px returns a pixel length.
func Px(v float64) Length {
	return Length{Value: v, Unit: "px"}
}

// units lists the accepted suffixes, longest first so "rem" wins over "em".
var units = []string{"vmin", "vmax", "rem", "px", "em", "vw", "vh", "pt", "cm", "mm", "in", "%"}

// ParseLength parses a bare number (pixels) or a unit-qualified string.
// Supported inputs are int, int64, float64 and string.
func ParseLength(v any) (Length, error) {
	switch x := v.(type) {
	case int:
		return Px(float64(x)), nil
	case int64:
		return Px(float64(x)), nil
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Length{}, errors.New(errors.ErrCodeInvalidLength, "length must be finite")
		}
		return Px(x), nil
	case string:
		return parseLengthString(x)
	case Length:
		return x, nil
	default:
		return Length{}, errors.New(errors.ErrCodeInvalidLength, "unsupported length type %T", v)
	}
}

func parseLengthString(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Length{}, errors.New(errors.ErrCodeInvalidLength, "length cannot be empty")
	}
	unit := "px"
	num := s
	for _, u := range units {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, errors.New(errors.ErrCodeInvalidLength, "invalid length %q", s)
	}
	return Length{Value: f, Unit: unit}, nil
}

// String formats the length as used in presentation values, e.g. "120px".
func (l Length) String() string {
	unit := l.Unit
	if unit == "" {
		unit = "px"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + unit
}

// IsPixels reports whether the length is expressed in pixels.
func (l Length) IsPixels() bool {
	return l.Unit == "" || l.Unit == "px"
}

// Pixels converts l to pixels. Font-relative units assume a 16px font;
// percentages and viewport units are taken relative to reference.
func (l Length) Pixels(reference float64) float64 {
	switch l.Unit {
	case "", "px":
		return l.Value
	case "em", "rem":
		return l.Value * 16
	case "pt":
		return l.Value * 96 / 72
	case "in":
		return l.Value * 96
	case "cm":
		return l.Value * 96 / 2.54
	case "mm":
		return l.Value * 96 / 25.4
	case "%", "vw", "vh", "vmin", "vmax":
		return l.Value * reference / 100
	default:
		return l.Value
	}
}
