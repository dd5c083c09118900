package engine

import (
	"fmt"
	"sort"

	"github.com/spektr-org/launchdash/schema"
)

// ============================================================================
// CHART BUILDER: Produces ChartSpec from reduced aggregates
// ============================================================================

// Default color palette for slices and series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

const (
	titleProportionAll  = "Total Successful Launches by Site"
	titleCorrelationAll = "Correlation between Payload and Success for All Sites"
)

// BuildProportionSpec describes the proportion view for the selected site.
// No groups yields a spec with no series.
func BuildProportionSpec(groups []Group, selectedSite string) ChartSpec {
	spec := ChartSpec{
		Kind:       KindProportion,
		Title:      titleProportionAll,
		XAxis:      schema.KeySite,
		Series:     []ChartSeries{},
		ShowLegend: true,
	}
	if selectedSite != AllSites {
		spec.Title = fmt.Sprintf("Success vs. Failure for %s", selectedSite)
		spec.XAxis = schema.KeyOutcome
		spec.Labels = map[string]string{schema.KeyOutcome: "Outcome"}
	}

	if len(groups) == 0 {
		return spec
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: float64(g.Count),
		})
	}
	spec.Series = []ChartSeries{{Name: "Count", Data: points}}
	spec.Colors = assignColors(len(points))
	return spec
}

// BuildCorrelationSpec describes the correlation view for the selected site.
// Points are grouped into one series per booster version, sorted by name,
// and each point is annotated with its launch site.
func BuildCorrelationSpec(points []Point, selectedSite string) ChartSpec {
	spec := ChartSpec{
		Kind:       KindScatter,
		Title:      titleCorrelationAll,
		XAxis:      schema.KeyPayloadMass,
		YAxis:      schema.KeyOutcome,
		Series:     []ChartSeries{},
		Labels:     schema.Launch().DisplayLabels(),
		ShowLegend: true,
	}
	if selectedSite != AllSites {
		spec.Title = fmt.Sprintf("Payload vs. Outcome for %s", selectedSite)
	}

	if len(points) == 0 {
		return spec
	}

	byBooster := make(map[string][]ChartPoint)
	for _, p := range points {
		byBooster[p.BoosterVersion] = append(byBooster[p.BoosterVersion], ChartPoint{
			X:           p.PayloadMass,
			Y:           p.Outcome.Class(),
			Annotations: map[string]string{schema.KeySite: p.Site},
		})
	}

	names := make([]string, 0, len(byBooster))
	for name := range byBooster {
		names = append(names, name)
	}
	sort.Strings(names)

	spec.Colors = assignColors(len(names))
	spec.Series = make([]ChartSeries, 0, len(names))
	for i, name := range names {
		spec.Series = append(spec.Series, ChartSeries{
			Name:  name,
			Data:  byBooster[name],
			Color: spec.Colors[i],
		})
	}
	return spec
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
