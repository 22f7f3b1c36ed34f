package shape

// Interval selects a range of indices along one axis: every index from Start
// to Stop inclusive, advancing by Step. A negative Start or Stop counts from
// the end of the axis once normalized with Modulo.
type Interval struct {
	Start int64
	Stop  int64
	Step  int64
}

// At returns the interval selecting the single index v.
func At(v int64) Interval {
	return Interval{Start: v, Stop: v, Step: 1}
}

// Between returns the interval selecting every index from start to stop
// inclusive.
func Between(start, stop int64) Interval {
	return Interval{Start: start, Stop: stop, Step: 1}
}

// Span returns the interval selecting indices from start to stop inclusive,
// advancing by step.
func Span(start, stop, step int64) Interval {
	return Interval{Start: start, Stop: stop, Step: step}
}

// Modulo wraps both endpoints into [0, dim), so negative indices count from
// the end of the axis. The step is unchanged.
func (i Interval) Modulo(dim int64) Interval {
	return Interval{Start: Modulo(i.Start, dim), Stop: Modulo(i.Stop, dim), Step: i.Step}
}

// Reverse swaps the endpoints and negates the step.
func (i Interval) Reverse() Interval {
	return Interval{Start: i.Stop, Stop: i.Start, Step: -i.Step}
}

// Forward normalizes a descending interval into its ascending equivalent.
// Ascending intervals are returned unchanged.
func (i Interval) Forward() Interval {
	if i.Step < 0 {
		return i.Reverse()
	}
	return i
}
