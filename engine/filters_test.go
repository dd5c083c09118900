package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/launchdash/dataset"
)

// ============================================================================
// FIXTURES
// ============================================================================

// scenarioDataset is the three-launch example used across the engine tests.
func scenarioDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New("scenario", []dataset.Record{
		{Site: "siteA", PayloadMass: 500, Outcome: dataset.Success, BoosterVersion: "v1"},
		{Site: "siteA", PayloadMass: 1200, Outcome: dataset.Failure, BoosterVersion: "v2"},
		{Site: "siteB", PayloadMass: 800, Outcome: dataset.Success, BoosterVersion: "v1"},
	})
	require.NoError(t, err)
	return ds
}

var fixtureSites = []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}
var fixtureBoosters = []string{"v1.0", "v1.1", "FT", "B4", "B5"}

// randomDataset generates n launches with a fixed seed.
func randomDataset(t *testing.T, n int) *dataset.Dataset {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	records := make([]dataset.Record, n)
	for i := range records {
		records[i] = dataset.Record{
			Site:           fixtureSites[rng.Intn(len(fixtureSites))],
			PayloadMass:    float64(rng.Intn(10000)),
			Outcome:        dataset.Outcome(rng.Intn(2)),
			BoosterVersion: fixtureBoosters[rng.Intn(len(fixtureBoosters))],
		}
	}
	ds, err := dataset.New("random", records)
	require.NoError(t, err)
	return ds
}

// ============================================================================
// SITE FILTER
// ============================================================================

func TestFilterBySiteAllIsIdentity(t *testing.T) {
	ds := randomDataset(t, 200)
	got := FilterBySite(ds, AllSites)
	assert.Same(t, ds, got)
	assert.Equal(t, ds.Records(), Records(got))
}

func TestFilterBySiteExactMatch(t *testing.T) {
	ds := randomDataset(t, 200)
	for _, site := range fixtureSites {
		got := FilterBySite(ds, site)

		want := 0
		for _, r := range ds.Records() {
			if r.Site == site {
				want++
			}
		}
		require.Equal(t, want, got.Len(), site)
		for _, r := range Records(got) {
			assert.Equal(t, site, r.Site)
		}
	}
}

func TestFilterBySiteUnknownIsEmpty(t *testing.T) {
	ds := scenarioDataset(t)
	assert.Equal(t, 0, FilterBySite(ds, "siteZ").Len())
	assert.Equal(t, 0, FilterBySite(ds, "sitea").Len())
	assert.Equal(t, 0, FilterBySite(ds, "").Len())
}

// ============================================================================
// PAYLOAD RANGE FILTER
// ============================================================================

func TestFilterByPayloadRangeSubset(t *testing.T) {
	ds := randomDataset(t, 500)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 50; i++ {
		lo := float64(rng.Intn(10000))
		hi := lo + float64(rng.Intn(10000-int(lo)+1))

		got := FilterByPayloadRange(ds, lo, hi)
		require.LessOrEqual(t, got.Len(), ds.Len())

		want := 0
		for _, r := range ds.Records() {
			if lo <= r.PayloadMass && r.PayloadMass <= hi {
				want++
			}
		}
		assert.Equal(t, want, got.Len())
		for _, r := range Records(got) {
			assert.GreaterOrEqual(t, r.PayloadMass, lo)
			assert.LessOrEqual(t, r.PayloadMass, hi)
		}
	}
}

func TestFilterByPayloadRangeInclusive(t *testing.T) {
	ds := scenarioDataset(t)

	got := Records(FilterByPayloadRange(ds, 500, 800))
	require.Len(t, got, 2)
	assert.Equal(t, 500.0, got[0].PayloadMass)
	assert.Equal(t, 800.0, got[1].PayloadMass)

	assert.Equal(t, 1, FilterByPayloadRange(ds, 1200, 1200).Len())
	assert.Equal(t, 0, FilterByPayloadRange(ds, 1201, 5000).Len())
}

func TestFiltersCompose(t *testing.T) {
	ds := randomDataset(t, 300)
	site := fixtureSites[2]

	rangeFirst := Records(FilterBySite(FilterByPayloadRange(ds, 2000, 6000), site))
	siteFirst := Records(FilterByPayloadRange(FilterBySite(ds, site), 2000, 6000))
	assert.Equal(t, siteFirst, rangeFirst)
}

func TestFilterByOutcome(t *testing.T) {
	ds := scenarioDataset(t)
	assert.Equal(t, 2, FilterByOutcome(ds, dataset.Success).Len())
	assert.Equal(t, 1, FilterByOutcome(ds, dataset.Failure).Len())
}
