package excess

import "math"

// Aggregate summarises the excess of a contiguous range of symbols.
//
// Total is the net excess of the range. Min and Max are the extremes of the
// running excess, measured from zero at the range's left edge and evaluated
// after each symbol. The last of those is Total, so Min <= Total <= Max.
type Aggregate struct {
	Total int64
	Min   int64
	Max   int64
}

// Combine returns the aggregate of the range l immediately followed by r.
// Every prefix that ends inside r is offset by l.Total.
func Combine(l, r Aggregate) Aggregate {
	return Aggregate{
		Total: l.Total + r.Total,
		Min:   min(l.Min, l.Total+r.Min),
		Max:   max(l.Max, l.Total+r.Max),
	}
}

// Contains reports whether x is attained after some symbol of the range.
// The excess values along a range step by one, so every integer between
// Min and Max is attained.
func (a Aggregate) Contains(x int64) bool {
	return a.Min <= x && x <= a.Max
}

// Valid checks Min <= Total <= Max. The zero value (a hollow node) is valid.
func (a Aggregate) Valid() bool {
	return a.Min <= a.Total && a.Total <= a.Max
}

// BlockAggregate scans bits [start, end) of b. end must be > start.
func BlockAggregate(b Bits, start, end int) Aggregate {
	var total int64
	a := Aggregate{Min: math.MaxInt64, Max: math.MinInt64}
	for i := start; i < end; i++ {
		if b.Bit(i) {
			total++
		} else {
			total--
		}
		a.Min = min(a.Min, total)
		a.Max = max(a.Max, total)
	}
	a.Total = total
	return a
}
