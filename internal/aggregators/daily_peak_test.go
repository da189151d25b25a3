package aggregators

import (
	"math"
	"testing"

	"license-usage-aggregator/internal/models"
	"license-usage-aggregator/internal/shared/svcerrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(points map[string]string) models.TimeSeries {
	out := make(models.TimeSeries, len(points))
	for ts, v := range points {
		out[ts] = decimal.RequireFromString(v)
	}
	return out
}

func TestDailyPeak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		points   map[string]string
		expected int64
	}{
		{name: "fraction rounds up", points: map[string]string{"t1": "2.01"}, expected: 3},
		{name: "whole value kept", points: map[string]string{"t1": "4"}, expected: 4},
		{name: "highest point wins", points: map[string]string{"t1": "1.2", "t2": "6.5", "t3": "3"}, expected: 7},
		{name: "tiny fraction", points: map[string]string{"t1": "0.0001"}, expected: 1},
		{name: "all zero", points: map[string]string{"t1": "0", "t2": "0"}, expected: 0},
		{name: "decimal sum stays exact", points: map[string]string{"t1": "3.0000000000"}, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			quantity, err := DailyPeak(series(tt.points))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, quantity)
		})
	}
}

func TestDailyPeak_ErrInternalEmptySeries(t *testing.T) {
	t.Parallel()

	_, err := DailyPeak(models.TimeSeries{})

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "AGG_9000", svcErr.Code)
}

func TestDailyPeakOver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		points      map[string]string
		denominator string
		expected    int64
	}{
		{name: "exact quotient", points: map[string]string{"t1": "6"}, denominator: "3", expected: 2},
		{name: "remainder rounds up", points: map[string]string{"t1": "7"}, denominator: "3", expected: 3},
		{name: "below one unit", points: map[string]string{"t1": "2"}, denominator: "3", expected: 1},
		{name: "decimal denominator", points: map[string]string{"t1": "5"}, denominator: "2.5", expected: 2},
		{name: "highest point wins", points: map[string]string{"t1": "4", "t2": "9"}, denominator: "6", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			quantity, err := DailyPeakOver(series(tt.points), decimal.RequireFromString(tt.denominator))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, quantity)
		})
	}
}

func TestDailyPeak_ErrInternalQuantityOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points map[string]string
	}{
		{name: "far above int64", points: map[string]string{"t1": "1e19"}},
		{name: "one past int64", points: map[string]string{"t1": "9223372036854775807.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DailyPeak(series(tt.points))

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, "AGG_9002", svcErr.Code)
		})
	}
}

func TestDailyPeak_MaxQuantityFits(t *testing.T) {
	t.Parallel()

	quantity, err := DailyPeak(series(map[string]string{"t1": "9223372036854775807"}))

	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), quantity)
}
