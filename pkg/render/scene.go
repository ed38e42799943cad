package render

import (
	"math"

	"github.com/matzehuels/ringlayout/pkg/ring"
)

// DefaultMargin is the space kept around the ring when the container has no
// measured size.
const DefaultMargin = 40.0

// Scene is a static snapshot of a ring layout.
type Scene struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	CenterX   float64 `json:"center_x"`
	CenterY   float64 `json:"center_y"`
	Radius    float64 `json:"radius"`
	RadiusCSS string  `json:"radius_css"`
	Strategy  string  `json:"strategy"`
	Seed      float64 `json:"seed"`
	Gap       float64 `json:"gap"`
	Slot      float64 `json:"slot"`
	Items     []Item  `json:"items"`
}

// Item is one positioned element in a scene.
type Item struct {
	Index    int      `json:"index"`
	ID       string   `json:"id"`
	Label    string   `json:"label,omitempty"`
	Classes  []string `json:"classes,omitempty"`
	Angle    int      `json:"angle"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Entering bool     `json:"entering,omitempty"`
}

// Snapshot captures the current state of l. The canvas is the container's
// measured size, or a square fitting the ring plus [DefaultMargin] when
// the container is unmeasured.
func Snapshot(l *ring.Layout) Scene {
	c := l.Container()
	w, h := c.Width(), c.Height()
	reference := max(min(w, h), 0)
	radius := l.Radius().Pixels(reference)
	if w <= 0 || h <= 0 {
		side := 2 * (radius + DefaultMargin)
		w, h = side, side
	}

	info := l.Info()
	s := Scene{
		Width:     w,
		Height:    h,
		CenterX:   w / 2,
		CenterY:   h / 2,
		Radius:    radius,
		RadiusCSS: l.Radius().String(),
		Strategy:  l.Strategy().Name(),
		Seed:      l.Seed(),
		Gap:       info.Gap,
		Slot:      info.Slot,
		Items:     make([]Item, 0, l.Len()),
	}
	for i, it := range l.Items() {
		x, y := Position(it.Angle(), radius, s.CenterX, s.CenterY)
		el := it.Element()
		s.Items = append(s.Items, Item{
			Index:    i,
			ID:       el.ID(),
			Label:    el.Text(),
			Classes:  el.Classes(),
			Angle:    it.Angle(),
			X:        x,
			Y:        y,
			Entering: it.Entering(),
		})
	}
	return s
}

// Position returns the centre of an item at angle degrees on a ring of the
// given radius centred at (cx, cy), rounded to hundredths of a pixel.
func Position(angle int, radius, cx, cy float64) (x, y float64) {
	theta := float64(angle) * math.Pi / 180
	return round2(cx + radius*math.Cos(theta)), round2(cy + radius*math.Sin(theta))
}

func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}
