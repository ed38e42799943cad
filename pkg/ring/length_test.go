package ring

import (
	"testing"

	"github.com/matzehuels/ringlayout/pkg/errors"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    Length
		wantErr bool
	}{
		{"int", 120, Px(120), false},
		{"int64", int64(80), Px(80), false},
		{"float", 12.5, Px(12.5), false},
		{"bare string", "120", Px(120), false},
		{"px string", "120px", Px(120), false},
		{"em", "8em", Length{8, "em"}, false},
		{"rem", "2.5rem", Length{2.5, "rem"}, false},
		{"percent", "40%", Length{40, "%"}, false},
		{"vmin", "30vmin", Length{30, "vmin"}, false},
		{"spaces and case", " 10 PX ", Px(10), false},
		{"length passthrough", Length{3, "cm"}, Length{3, "cm"}, false},

		{"empty", "", Length{}, true},
		{"garbage", "wide", Length{}, true},
		{"unknown unit", "10parsecs", Length{}, true},
		{"bool", true, Length{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidLength) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidLength)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseLength(%v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLengthString(t *testing.T) {
	tests := []struct {
		in   Length
		want string
	}{
		{Px(120), "120px"},
		{Px(12.5), "12.5px"},
		{Length{8, "em"}, "8em"},
		{Length{Value: 3}, "3px"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLengthPixels(t *testing.T) {
	tests := []struct {
		in        Length
		reference float64
		want      float64
	}{
		{Px(50), 400, 50},
		{Length{2, "em"}, 400, 32},
		{Length{1, "in"}, 400, 96},
		{Length{25, "%"}, 400, 100},
		{Length{10, "vmin"}, 200, 20},
	}
	for _, tt := range tests {
		if got := tt.in.Pixels(tt.reference); got != tt.want {
			t.Errorf("%v.Pixels(%v) = %v, want %v", tt.in, tt.reference, got, tt.want)
		}
	}
}

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in      string
		random  bool
		deg     float64
		wantErr bool
	}{
		{"random", true, 0, false},
		{"RANDOM", true, 0, false},
		{"-90", false, -90, false},
		{"45deg", false, 45, false},
		{"north", false, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := ParseSeed(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSeed(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.IsRandom() != tt.random || s.Degrees() != tt.deg {
				t.Errorf("ParseSeed(%q) = %v, want random=%v deg=%v", tt.in, s, tt.random, tt.deg)
			}
		})
	}
}
