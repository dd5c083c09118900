package engine

// ============================================================================
// PIPELINE: filter → aggregate → build, one function per view
// ============================================================================
// Both functions are total: any ControlState yields a spec, possibly empty.
// ============================================================================

// ComputeProportion builds the proportion view. Only the site selection is read.
func ComputeProportion(view RecordView, state ControlState) ChartSpec {
	groups := ReduceProportion(view, state.SelectedSite)
	return BuildProportionSpec(groups, state.SelectedSite)
}

// ComputeCorrelation builds the correlation view from both controls.
func ComputeCorrelation(view RecordView, state ControlState) ChartSpec {
	points := ReduceCorrelation(view, state)
	return BuildCorrelationSpec(points, state.SelectedSite)
}
