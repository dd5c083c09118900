package engine

import (
	"fmt"

	"github.com/spektr-org/launchdash/schema"
)

// ============================================================================
// TABLE BUILDER: Flattens a ChartSpec into rows
// ============================================================================
// Used for terminal and CSV output of the views.
// ============================================================================

// BuildTable flattens spec into a TableData.
func BuildTable(spec ChartSpec) *TableData {
	if spec.Kind == KindScatter {
		return buildPointTable(spec)
	}
	return buildSliceTable(spec)
}

// ============================================================================
// SLICE TABLE: Row per proportion slice
// ============================================================================

func buildSliceTable(spec ChartSpec) *TableData {
	labels := schema.Launch().DisplayLabels()
	for k, v := range spec.Labels {
		labels[k] = v
	}
	groupLabel := labels[spec.XAxis]
	if groupLabel == "" {
		groupLabel = "Group"
	}

	table := &TableData{
		Title: spec.Title,
		Columns: []Column{
			{Key: "group", Label: groupLabel, Type: "text", Align: "left"},
			{Key: "count", Label: "Count", Type: "number", Align: "right"},
		},
		Rows: [][]string{},
	}

	total := 0
	for _, s := range spec.Series {
		for _, p := range s.Data {
			table.Rows = append(table.Rows, []string{p.Label, fmtNum(p.Value)})
			total += int(p.Value)
		}
	}

	table.Summary = &Summary{
		Label:  "Total",
		Values: map[string]string{"count": FormatInt(total)},
	}
	return table
}

// ============================================================================
// POINT TABLE: Row per scatter point
// ============================================================================

func buildPointTable(spec ChartSpec) *TableData {
	labels := spec.Labels
	if labels == nil {
		labels = schema.Launch().DisplayLabels()
	}

	table := &TableData{
		Title: spec.Title,
		Columns: []Column{
			{Key: schema.KeyBoosterVersion, Label: labels[schema.KeyBoosterVersion], Type: "text", Align: "left"},
			{Key: schema.KeyPayloadMass, Label: labels[schema.KeyPayloadMass], Type: "number", Align: "right"},
			{Key: schema.KeyOutcome, Label: labels[schema.KeyOutcome], Type: "number", Align: "center"},
			{Key: schema.KeySite, Label: labels[schema.KeySite], Type: "text", Align: "left"},
		},
		Rows: make([][]string, 0, spec.PointCount()),
	}

	for _, s := range spec.Series {
		for _, p := range s.Data {
			table.Rows = append(table.Rows, []string{
				s.Name,
				fmtNum(p.X),
				fmtNum(p.Y),
				p.Annotations[schema.KeySite],
			})
		}
	}

	table.Summary = &Summary{
		Label:  fmt.Sprintf("Total (%d launches)", len(table.Rows)),
		Values: map[string]string{"count": FormatInt(len(table.Rows))},
	}
	return table
}
