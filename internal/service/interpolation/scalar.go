package interpolation

// InterpolateValue returns the value lying delta/deltaFull of the way from
// low to high, rounded half away from zero. A zero deltaFull means there is
// no high endpoint and low is returned as is.
func InterpolateValue(low, high, delta, deltaFull int) int {
	if deltaFull == 0 || delta == 0 {
		return low
	}
	if delta == deltaFull {
		return high
	}

	num := int64(low)*int64(deltaFull) + (int64(high)-int64(low))*int64(delta)
	return int(roundDiv(num, int64(deltaFull)))
}

func roundDiv(num, den int64) int64 {
	if den < 0 {
		num, den = -num, -den
	}
	if num >= 0 {
		return (2*num + den) / (2 * den)
	}
	return -((-2*num + den) / (2 * den))
}

// span is the position of the target QL between the two endpoints; it is
// fixed for a whole interpolation.
type span struct {
	delta     int
	deltaFull int
}

func (s span) apply(low, high int) int {
	return InterpolateValue(low, high, s.delta, s.deltaFull)
}
