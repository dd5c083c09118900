package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/launchdash/dataset"
)

var ignoreGroupView = cmpopts.IgnoreFields(Group{}, "View")

// ============================================================================
// PROPORTION REDUCTION
// ============================================================================

func TestReduceProportionAllCountsSuccessesPerSite(t *testing.T) {
	got := ReduceProportion(scenarioDataset(t), AllSites)
	want := []Group{
		{Key: "siteA", Label: "siteA", Count: 1},
		{Key: "siteB", Label: "siteB", Count: 1},
	}
	if diff := cmp.Diff(want, got, ignoreGroupView); diff != "" {
		t.Errorf("ReduceProportion(ALL) mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceProportionSiteCountsOutcomes(t *testing.T) {
	got := ReduceProportion(scenarioDataset(t), "siteA")
	want := []Group{
		{Key: "failure", Label: "failure", Count: 1},
		{Key: "success", Label: "success", Count: 1},
	}
	if diff := cmp.Diff(want, got, ignoreGroupView); diff != "" {
		t.Errorf("ReduceProportion(siteA) mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceProportionAllSumEqualsSuccesses(t *testing.T) {
	ds := randomDataset(t, 400)
	successes := FilterByOutcome(ds, dataset.Success).Len()

	groups := ReduceProportion(ds, AllSites)
	assert.Equal(t, successes, TotalCount(groups))
	for _, g := range groups {
		assert.Positive(t, g.Count, g.Label)
		for _, r := range Records(g.View) {
			assert.Equal(t, g.Label, r.Site)
			assert.Equal(t, dataset.Success, r.Outcome)
		}
	}
}

func TestReduceProportionSiteSumEqualsSiteTotal(t *testing.T) {
	ds := randomDataset(t, 400)
	for _, site := range fixtureSites {
		groups := ReduceProportion(ds, site)
		assert.Equal(t, FilterBySite(ds, site).Len(), TotalCount(groups), site)
		assert.LessOrEqual(t, len(groups), 2)
	}
}

func TestReduceProportionOrdering(t *testing.T) {
	ds, err := dataset.New("order", []dataset.Record{
		{Site: "C", PayloadMass: 1, Outcome: dataset.Success, BoosterVersion: "v"},
		{Site: "B", PayloadMass: 1, Outcome: dataset.Success, BoosterVersion: "v"},
		{Site: "A", PayloadMass: 1, Outcome: dataset.Success, BoosterVersion: "v"},
		{Site: "C", PayloadMass: 1, Outcome: dataset.Success, BoosterVersion: "v"},
		{Site: "D", PayloadMass: 1, Outcome: dataset.Failure, BoosterVersion: "v"},
	})
	require.NoError(t, err)

	groups := ReduceProportion(ds, AllSites)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
	}
	// D has no successes and is dropped; ties ordered by label.
	assert.Equal(t, []string{"C", "A", "B"}, labels)
}

func TestReduceProportionEmpty(t *testing.T) {
	ds, err := dataset.New("failures", []dataset.Record{
		{Site: "A", PayloadMass: 1, Outcome: dataset.Failure, BoosterVersion: "v"},
	})
	require.NoError(t, err)

	assert.Empty(t, ReduceProportion(ds, AllSites))
	assert.Empty(t, ReduceProportion(ds, "unknown"))
}

// ============================================================================
// CORRELATION REDUCTION
// ============================================================================

func TestReduceCorrelationPassThrough(t *testing.T) {
	ds := scenarioDataset(t)
	state := DefaultState(ds)

	got := ReduceCorrelation(ds, state)
	want := []Point{
		{PayloadMass: 500, Outcome: dataset.Success, BoosterVersion: "v1", Site: "siteA"},
		{PayloadMass: 1200, Outcome: dataset.Failure, BoosterVersion: "v2", Site: "siteA"},
		{PayloadMass: 800, Outcome: dataset.Success, BoosterVersion: "v1", Site: "siteB"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReduceCorrelation mismatch (-want +got):\n%s", diff)
	}
}

func TestReduceCorrelationRangeThenSite(t *testing.T) {
	ds := randomDataset(t, 300)
	state := ControlState{SelectedSite: fixtureSites[1], PayloadRange: PayloadRange{Lo: 1000, Hi: 4000}}

	points := ReduceCorrelation(ds, state)
	want := FilterBySite(FilterByPayloadRange(ds, 1000, 4000), fixtureSites[1]).Len()
	require.Len(t, points, want)
	for _, p := range points {
		assert.Equal(t, fixtureSites[1], p.Site)
		assert.True(t, state.PayloadRange.Contains(p.PayloadMass))
	}
}

func TestReduceCorrelationEmpty(t *testing.T) {
	ds := scenarioDataset(t)
	state := ControlState{SelectedSite: AllSites, PayloadRange: PayloadRange{Lo: 2000, Hi: 3000}}
	assert.Empty(t, ReduceCorrelation(ds, state))
}

// ============================================================================
// STATS
// ============================================================================

func TestSummarize(t *testing.T) {
	s := Summarize(scenarioDataset(t))
	assert.Equal(t, Stats{Launches: 3, Successes: 2, SuccessRate: 66.67, MinPayload: 500, MaxPayload: 1200}, s)
	assert.Equal(t, Stats{}, Summarize(FilterBySite(scenarioDataset(t), "none")))
}

func TestFormatStats(t *testing.T) {
	s := Stats{Launches: 1200, Successes: 600, SuccessRate: 50, MinPayload: 0, MaxPayload: 9600.5}
	assert.Equal(t, "1,200 launches, 600 successful (50.0%), payload 0–9600.50 kg", FormatStats(s))
	assert.Equal(t, "No launches.", FormatStats(Stats{}))
}
