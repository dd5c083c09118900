package engine

import (
	"encoding/json"
	"fmt"

	"github.com/spektr-org/launchdash/dataset"
)

// ============================================================================
// ENGINE TYPES: Control state, aggregates, and chart descriptions
// ============================================================================
// Dependency: engine reads dataset records and schema labels only.
// Every function in this package is pure and total over valid input.
// ============================================================================

// AllSites is the site selection that disables site filtering.
const AllSites = "ALL"

// ============================================================================
// CONTROL STATE: the only mutable input to the views
// ============================================================================

// PayloadRange is an inclusive [Lo, Hi] payload mass interval.
// It encodes as a two-element JSON array, matching range-slider values.
type PayloadRange struct {
	Lo float64
	Hi float64
}

// Contains reports whether lo <= mass <= hi.
func (r PayloadRange) Contains(mass float64) bool {
	return r.Lo <= mass && mass <= r.Hi
}

func (r PayloadRange) String() string {
	return fmt.Sprintf("[%s, %s]", fmtNum(r.Lo), fmtNum(r.Hi))
}

func (r PayloadRange) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{r.Lo, r.Hi})
}

func (r *PayloadRange) UnmarshalJSON(b []byte) error {
	var pair []float64
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("payload range: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("payload range: want [lo, hi], got %d values", len(pair))
	}
	r.Lo, r.Hi = pair[0], pair[1]
	return nil
}

// ControlState is the current value of both dashboard controls.
type ControlState struct {
	SelectedSite string       `json:"selectedSite"`
	PayloadRange PayloadRange `json:"payloadRange"`
}

// DefaultState selects all sites and the dataset's full payload bounds.
func DefaultState(ds *dataset.Dataset) ControlState {
	lo, hi := ds.Bounds()
	return ControlState{
		SelectedSite: AllSites,
		PayloadRange: PayloadRange{Lo: lo, Hi: hi},
	}
}

// ============================================================================
// AGGREGATES: Reduction outputs consumed by the chart builder
// ============================================================================

// Group is one slice of the proportion view.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // records in this group (zero-copy)
}

// Point is one launch in the correlation view.
type Point struct {
	PayloadMass    float64         `json:"payloadMass"`
	Outcome        dataset.Outcome `json:"outcome"`
	BoosterVersion string          `json:"boosterVersion"`
	Site           string          `json:"site"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartKind identifies how a renderer should draw a ChartSpec.
type ChartKind string

const (
	KindProportion ChartKind = "proportion"
	KindScatter    ChartKind = "scatter"
)

// ChartSpec is a renderer-agnostic description of one view.
// Specs are built fresh on every recomputation and never mutated.
type ChartSpec struct {
	Kind   ChartKind         `json:"kind"`
	Title  string            `json:"title"`
	XAxis  string            `json:"xAxis,omitempty"` // field key
	YAxis  string            `json:"yAxis,omitempty"` // field key
	Series []ChartSeries     `json:"series"`
	Labels map[string]string `json:"labels,omitempty"` // field key → display label

	// Proportion charts carry one color per slice, scatter charts one per series.
	Colors     []string `json:"colors,omitempty"`
	ShowLegend bool     `json:"showLegend"`
}

// ChartSeries is a named data series.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single mark. Proportion slices use Label and Value;
// scatter points use X, Y and Annotations. Numeric fields are always
// encoded since zero is a valid payload mass and a failure outcome.
type ChartPoint struct {
	Label       string            `json:"label,omitempty"`
	Value       float64           `json:"value"`
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Annotations map[string]string `json:"annotations,omitempty"`
}

// PointCount returns the number of marks across all series.
func (c ChartSpec) PointCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Data)
	}
	return n
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData is a ChartSpec flattened into rows.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

// ============================================================================
// STATS
// ============================================================================

// Stats summarizes a set of launches.
type Stats struct {
	Launches    int     `json:"launches"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"successRate"` // 0–100
	MinPayload  float64 `json:"minPayload"`
	MaxPayload  float64 `json:"maxPayload"`
}
