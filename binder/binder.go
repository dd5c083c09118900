// Package binder is the reactive layer of the dashboard: it owns the control
// state and recomputes exactly the views that depend on a changed control.
package binder

import (
	"log/slog"
	"time"

	"github.com/spektr-org/launchdash/dataset"
	"github.com/spektr-org/launchdash/engine"
)

// ViewID names a dependent view.
type ViewID string

const (
	ViewProportion  ViewID = "proportion"
	ViewCorrelation ViewID = "correlation"
)

// Control names a user-adjustable input.
type Control string

const (
	ControlSite         Control = "site"
	ControlPayloadRange Control = "payload-range"
)

// dependencies declares which views read which control. The proportion view
// does not read the payload range.
var dependencies = map[Control][]ViewID{
	ControlSite:         {ViewProportion, ViewCorrelation},
	ControlPayloadRange: {ViewCorrelation},
}

// computers builds each view from the dataset and the current state.
var computers = map[ViewID]func(engine.RecordView, engine.ControlState) engine.ChartSpec{
	ViewProportion:  engine.ComputeProportion,
	ViewCorrelation: engine.ComputeCorrelation,
}

// allViews lists every view in emission order.
var allViews = []ViewID{ViewProportion, ViewCorrelation}

// Dependents returns the views recomputed when c changes.
func Dependents(c Control) []ViewID {
	deps := dependencies[c]
	out := make([]ViewID, len(deps))
	copy(out, deps)
	return out
}

// Observer receives each freshly built ChartSpec.
type Observer func(ViewID, engine.ChartSpec)

// Views is the current ChartSpec of each view.
type Views struct {
	Proportion  engine.ChartSpec `json:"proportion"`
	Correlation engine.ChartSpec `json:"correlation"`
}

// Binder holds the ControlState and the latest spec of each view.
//
// A Binder is not safe for concurrent use. Hosts that deliver events from
// several goroutines should route them through a Queue.
type Binder struct {
	ds        *dataset.Dataset
	state     engine.ControlState
	views     map[ViewID]engine.ChartSpec
	logger    *slog.Logger
	observers []Observer
}

// New creates a Binder in the default state (or WithInitialState) and
// computes both views once.
func New(ds *dataset.Dataset, opts ...Option) *Binder {
	cfg := applyOptions(opts)

	b := &Binder{
		ds:        ds,
		state:     engine.DefaultState(ds),
		views:     make(map[ViewID]engine.ChartSpec, len(allViews)),
		logger:    cfg.logger,
		observers: cfg.observers,
	}

	if initial := cfg.initial; initial != nil {
		if site, ok := normalizeSite(ds, initial.SelectedSite); ok {
			b.state.SelectedSite = site
		}
		if r, _, ok := clampRange(ds, initial.PayloadRange); ok {
			b.state.PayloadRange = r
		}
	}

	b.recompute(allViews)
	b.logger.Info("binder ready",
		"source", ds.Source(),
		"records", ds.Len(),
		"sites", len(ds.Sites()),
		"site", b.state.SelectedSite,
		"range", b.state.PayloadRange.String())
	return b
}

// State returns the current control state.
func (b *Binder) State() engine.ControlState { return b.state }

// Dataset returns the dataset the views are computed from.
func (b *Binder) Dataset() *dataset.Dataset { return b.ds }

// Views returns the latest spec of each view.
func (b *Binder) Views() Views {
	return Views{
		Proportion:  b.views[ViewProportion],
		Correlation: b.views[ViewCorrelation],
	}
}

// View returns the latest spec of one view.
func (b *Binder) View(id ViewID) (engine.ChartSpec, bool) {
	spec, ok := b.views[id]
	return spec, ok
}

// OnSiteChanged selects site and recomputes both views. A site outside
// {ALL} ∪ dataset sites is ignored: state is unchanged and nil is returned.
func (b *Binder) OnSiteChanged(site string) []ViewID {
	normalized, ok := normalizeSite(b.ds, site)
	if !ok {
		controlAdjusted.WithLabelValues(string(ControlSite), reasonUnknownSite).Inc()
		controlEvents.WithLabelValues(string(ControlSite), "ignored").Inc()
		b.logger.Warn("ignoring unknown site", "site", site)
		return nil
	}

	b.state.SelectedSite = normalized
	controlEvents.WithLabelValues(string(ControlSite), "applied").Inc()
	return b.recompute(dependencies[ControlSite])
}

// OnPayloadRangeChanged sets the payload range and recomputes only the
// correlation view. Out-of-bound endpoints are clamped, a reversed range is
// swapped, and a range with a NaN endpoint is ignored.
func (b *Binder) OnPayloadRangeChanged(r engine.PayloadRange) []ViewID {
	clamped, reasons, ok := clampRange(b.ds, r)
	for _, reason := range reasons {
		controlAdjusted.WithLabelValues(string(ControlPayloadRange), reason).Inc()
	}
	if !ok {
		controlEvents.WithLabelValues(string(ControlPayloadRange), "ignored").Inc()
		b.logger.Warn("ignoring payload range", "lo", r.Lo, "hi", r.Hi, "reasons", reasons)
		return nil
	}
	if len(reasons) > 0 {
		b.logger.Warn("adjusted payload range",
			"requested", r.String(),
			"applied", clamped.String(),
			"reasons", reasons)
	}

	b.state.PayloadRange = clamped
	controlEvents.WithLabelValues(string(ControlPayloadRange), "applied").Inc()
	return b.recompute(dependencies[ControlPayloadRange])
}

// Apply dispatches an input event to its transition.
// Unknown event kinds are ignored.
func (b *Binder) Apply(ev Event) []ViewID {
	switch ev.Kind {
	case EventSiteChanged:
		return b.OnSiteChanged(ev.Site)
	case EventPayloadRangeChanged:
		return b.OnPayloadRangeChanged(ev.Range)
	default:
		b.logger.Warn("ignoring unknown event", "kind", string(ev.Kind))
		return nil
	}
}

// recompute rebuilds ids from the current state, replaces their specs and
// notifies observers. It returns a copy of ids.
func (b *Binder) recompute(ids []ViewID) []ViewID {
	out := make([]ViewID, 0, len(ids))
	for _, id := range ids {
		start := time.Now()
		spec := computers[id](b.ds, b.state)
		elapsed := time.Since(start)

		b.views[id] = spec
		recomputeTotal.WithLabelValues(string(id)).Inc()
		recomputeDuration.WithLabelValues(string(id)).Observe(elapsed.Seconds())
		b.logger.Debug("view recomputed",
			"view", string(id),
			"title", spec.Title,
			"points", spec.PointCount(),
			"elapsed", elapsed)

		for _, obs := range b.observers {
			obs(id, spec)
		}
		out = append(out, id)
	}
	return out
}
