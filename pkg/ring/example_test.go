package ring_test

import (
	"fmt"

	"github.com/matzehuels/ringlayout/pkg/ring"
	"github.com/matzehuels/ringlayout/pkg/surface"
)

func Example() {
	doc := surface.NewDocument(surface.Capabilities{CustomProperties: true})
	container := doc.CreateElement("div")
	doc.Body().AppendChild(container)
	for i := 0; i < 3; i++ {
		el := doc.CreateElement("div")
		el.AddClass("planet")
		container.AppendChild(el)
	}

	opts := ring.DefaultOptions()
	opts.AngleSeed = ring.Seed(-90)
	opts.Radius = ring.Px(120)

	l, err := ring.New(container, doc.QuerySelectorAll(container, ".planet"), opts)
	if err != nil {
		panic(err)
	}
	fmt.Println(l.Strategy().Name(), l.Angles())

	l.Push(doc.CreateElement("div"))
	fmt.Println(l.Angles())

	l.Remove(0)
	fmt.Println(l.Angles())
	// Output:
	// declarative [-90 30 150]
	// [-90 0 90 180]
	// [-90 30 150]
}

func ExampleComputeAngleInfo() {
	// A 90° gap is narrower than a 135° slot, so the ring stays uniform.
	info := ring.ComputeAngleInfo(3, 0, 90)
	fmt.Println(info.Gap, info.Slot)

	info = ring.ComputeAngleInfo(3, 0, 180)
	for i := 0; i < 3; i++ {
		fmt.Print(ring.SlotAngle(i, info, false), " ")
	}
	fmt.Println()
	// Output:
	// 0 120
	// 90 180 270
}

func ExampleTransform() {
	fmt.Println(ring.Transform(45, ring.Px(100)))
	// Output:
	// translate(-50%, -50%) rotate(45deg) translate(100px) rotate(-45deg)
}
