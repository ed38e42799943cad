package ring

import "math"

// AngleInfo is the distribution of a ring for a given item count.
type AngleInfo struct {
	Seed float64 // starting angle in degrees
	Gap  float64 // effective gap in degrees; 0 means a uniform ring
	Slot float64 // angular width of one slot in degrees
}

// ComputeAngleInfo distributes n items starting at seed with a requested
// gap. A gap smaller than the resulting slot width is dropped and the ring
// becomes uniform. Rings of fewer than two items are always uniform.
func ComputeAngleInfo(n int, seed, gap float64) AngleInfo {
	if n < 2 {
		return AngleInfo{Seed: seed, Gap: 0, Slot: 360}
	}
	slot := (360 - gap) / float64(n-1)
	if gap < slot {
		gap = 0
		slot = 360 / float64(n)
	}
	return AngleInfo{Seed: seed, Gap: gap, Slot: slot}
}

// SlotAngle returns the angle of slot index, rounded to whole degrees.
// Without a gap and without first-item alignment items sit at the centre
// of their slots, half a slot past the seed.
func SlotAngle(index int, info AngleInfo, alignFirst bool) int {
	offset := 0.0
	if info.Gap == 0 && !alignFirst {
		offset = 0.5
	}
	angle := info.Seed + info.Gap/2 + (float64(index)+offset)*info.Slot
	return roundHalfUp(angle)
}

// roundHalfUp rounds halves toward positive infinity.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
