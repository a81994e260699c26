// Package diagnosis ranks a post against its population and explains the result.
package diagnosis

import (
	"math"
	"slices"
	"sort"
)

// PercentileRank returns round(i/n*100) where i is the index of the first element
// of the ascending distribution that is >= value. It returns 100 when no element
// qualifies, including for an empty distribution. Ties are not interpolated;
// dashboards built on these numbers depend on that.
func PercentileRank(value float64, distribution []float64) int {
	sorted := slices.Clone(distribution)
	sort.Float64s(sorted)

	idx := sort.SearchFloat64s(sorted, value)
	if idx == len(sorted) {
		return 100
	}
	return int(math.Round(float64(idx) / float64(len(sorted)) * 100))
}

// TopPercentile is 100 - PercentileRank: smaller is better, 0 is the top
func TopPercentile(value float64, distribution []float64) int {
	return 100 - PercentileRank(value, distribution)
}
