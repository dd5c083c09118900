package engine

import "github.com/spektr-org/launchdash/dataset"

// ============================================================================
// RECORD VIEW: Zero-Copy Data Access Interface
// ============================================================================
// The engine never copies the dataset. It reads through this interface.
//
// Implementations:
//   *dataset.Dataset : the full table
//   SubView          : filtered subset (indices into parent, zero-copy)
// ============================================================================

// RecordView provides indexed access to launch records.
type RecordView interface {
	Len() int
	At(index int) dataset.Record
}

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent, no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) At(i int) dataset.Record {
	return v.parent.At(v.indices[i])
}

// Records copies a view's records out in view order.
func Records(view RecordView) []dataset.Record {
	out := make([]dataset.Record, view.Len())
	for i := range out {
		out[i] = view.At(i)
	}
	return out
}

// selectWhere returns the sub-view of records satisfying keep, preserving order.
func selectWhere(view RecordView, keep func(dataset.Record) bool) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(view.At(i)) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}
