package models

import "github.com/shopspring/decimal"

// TimeSeries maps a sample timestamp to the vCPU accumulated at that instant.
type TimeSeries map[string]decimal.Decimal

// Add sums v into the point at ts.
func (s TimeSeries) Add(ts string, v decimal.Decimal) {
	if cur, ok := s[ts]; ok {
		s[ts] = cur.Add(v)
		return
	}
	s[ts] = v
}

// AddSeries sums every point of other into s.
func (s TimeSeries) AddSeries(other TimeSeries) {
	for ts, v := range other {
		s.Add(ts, v)
	}
}

func (s TimeSeries) Clone() TimeSeries {
	out := make(TimeSeries, len(s))
	for ts, v := range s {
		out[ts] = v
	}
	return out
}

// Scaled returns a new series with every point multiplied by factor. Multiplication of
// decimals is exact, so no precision is lost.
func (s TimeSeries) Scaled(factor decimal.Decimal) TimeSeries {
	out := make(TimeSeries, len(s))
	for ts, v := range s {
		out[ts] = v.Mul(factor)
	}
	return out
}

// Max returns the highest accumulated value. ok is false for an empty series.
func (s TimeSeries) Max() (peak decimal.Decimal, ok bool) {
	for _, v := range s {
		if !ok || v.GreaterThan(peak) {
			peak = v
			ok = true
		}
	}
	return peak, ok
}
