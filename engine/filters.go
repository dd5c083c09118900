package engine

import "github.com/spektr-org/launchdash/dataset"

// ============================================================================
// FILTERS: Site and payload-range narrowing via RecordView
// ============================================================================
// Single-pass filters returning SubViews. Filters compose: the output of one
// is a valid input to the other.
//
// The correlation view applies range then site. The proportion view applies
// site only and never looks at the payload range.
// ============================================================================

// FilterBySite returns records launched from site, matched exactly.
// AllSites returns view itself. An unknown site yields an empty view.
func FilterBySite(view RecordView, site string) RecordView {
	if site == AllSites {
		return view
	}
	return selectWhere(view, func(r dataset.Record) bool {
		return r.Site == site
	})
}

// FilterByPayloadRange returns records with lo <= PayloadMass <= hi.
func FilterByPayloadRange(view RecordView, lo, hi float64) RecordView {
	r := PayloadRange{Lo: lo, Hi: hi}
	return selectWhere(view, func(rec dataset.Record) bool {
		return r.Contains(rec.PayloadMass)
	})
}

// FilterByOutcome returns records with the given outcome.
func FilterByOutcome(view RecordView, outcome dataset.Outcome) RecordView {
	return selectWhere(view, func(r dataset.Record) bool {
		return r.Outcome == outcome
	})
}
