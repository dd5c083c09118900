package engine

import (
	"math"
	"sort"

	"github.com/spektr-org/launchdash/dataset"
)

// ============================================================================
// AGGREGATORS: Reductions behind each view
// ============================================================================
// Proportion: group + count, empty groups dropped, sorted count desc / label asc.
// Correlation: no grouping, filtered records passed through as points.
// ============================================================================

// ReduceProportion computes the slices of the proportion view.
//
// For AllSites it counts successful launches per site. For a specific site it
// counts that site's launches per outcome. The payload range is never applied.
// Zero matching records yields nil.
func ReduceProportion(view RecordView, site string) []Group {
	var groups []Group
	if site == AllSites {
		groups = groupBy(FilterByOutcome(view, dataset.Success), func(r dataset.Record) string {
			return r.Site
		})
	} else {
		groups = groupBy(FilterBySite(view, site), func(r dataset.Record) string {
			return r.Outcome.String()
		})
	}
	SortGroups(groups)
	return groups
}

// ReduceCorrelation computes the points of the correlation view: the range
// filter over the full view first, then the site filter unless AllSites.
// Points keep dataset order.
func ReduceCorrelation(view RecordView, state ControlState) []Point {
	filtered := FilterByPayloadRange(view, state.PayloadRange.Lo, state.PayloadRange.Hi)
	filtered = FilterBySite(filtered, state.SelectedSite)

	if filtered.Len() == 0 {
		return nil
	}
	points := make([]Point, 0, filtered.Len())
	for i := 0; i < filtered.Len(); i++ {
		r := filtered.At(i)
		points = append(points, Point{
			PayloadMass:    r.PayloadMass,
			Outcome:        r.Outcome,
			BoosterVersion: r.BoosterVersion,
			Site:           r.Site,
		})
	}
	return points
}

// ============================================================================
// GROUPING
// ============================================================================

// groupBy buckets a view by key in first-appearance order. Only keys that
// occur become groups, so no group is empty.
func groupBy(view RecordView, key func(dataset.Record) string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		k := key(view.At(i))
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], i)
	}

	if len(order) == 0 {
		return nil
	}
	groups := make([]Group, 0, len(order))
	for _, k := range order {
		groups = append(groups, Group{
			Key:   k,
			Label: k,
			Count: len(grouped[k]),
			View:  newSubView(view, grouped[k]),
		})
	}
	return groups
}

// SortGroups orders groups by descending count, then ascending label.
func SortGroups(groups []Group) {
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Label < groups[j].Label
	})
}

// TotalCount sums group counts.
func TotalCount(groups []Group) int {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	return total
}

// ============================================================================
// STATS
// ============================================================================

// Summarize counts launches and successes in a view and finds its payload bounds.
// An empty view yields the zero Stats.
func Summarize(view RecordView) Stats {
	n := view.Len()
	if n == 0 {
		return Stats{}
	}

	s := Stats{
		Launches:   n,
		MinPayload: math.Inf(1),
		MaxPayload: math.Inf(-1),
	}
	for i := 0; i < n; i++ {
		r := view.At(i)
		if r.Outcome == dataset.Success {
			s.Successes++
		}
		s.MinPayload = math.Min(s.MinPayload, r.PayloadMass)
		s.MaxPayload = math.Max(s.MaxPayload, r.PayloadMass)
	}
	s.SuccessRate = RoundTo2(float64(s.Successes) / float64(n) * 100)
	return s
}
