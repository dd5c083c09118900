package binder

import (
	"math"

	"github.com/spektr-org/launchdash/dataset"
	"github.com/spektr-org/launchdash/engine"
)

// Adjustment reasons reported in logs and metrics.
const (
	reasonUnknownSite = "unknown_site"
	reasonNotANumber  = "not_a_number"
	reasonClamped     = "clamped"
	reasonSwapped     = "swapped"
)

// normalizeSite accepts AllSites or a site present in ds.
func normalizeSite(ds *dataset.Dataset, site string) (string, bool) {
	if site == engine.AllSites || ds.HasSite(site) {
		return site, true
	}
	return "", false
}

// clampRange fits r into the dataset bounds. A reversed range is swapped and
// each endpoint is clamped to the nearest bound. NaN endpoints reject the
// range. reasons lists every adjustment made, in order.
func clampRange(ds *dataset.Dataset, r engine.PayloadRange) (out engine.PayloadRange, reasons []string, ok bool) {
	if math.IsNaN(r.Lo) || math.IsNaN(r.Hi) {
		return engine.PayloadRange{}, []string{reasonNotANumber}, false
	}

	if r.Lo > r.Hi {
		r.Lo, r.Hi = r.Hi, r.Lo
		reasons = append(reasons, reasonSwapped)
	}

	min, max := ds.Bounds()
	clamped := engine.PayloadRange{
		Lo: math.Min(math.Max(r.Lo, min), max),
		Hi: math.Min(math.Max(r.Hi, min), max),
	}
	if clamped != r {
		reasons = append(reasons, reasonClamped)
	}
	return clamped, reasons, true
}
