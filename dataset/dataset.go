// Package dataset holds the read-only table of launch records and the
// scalars derived from it at load time.
package dataset

import (
	"fmt"
	"math"
)

// Dataset is an ordered, immutable sequence of Records plus the payload
// bounds and site population computed once when it is built.
// A Dataset is safe for concurrent reads.
type Dataset struct {
	source     string
	records    []Record
	minPayload float64
	maxPayload float64
	sites      []string
	siteSet    map[string]struct{}
}

// New builds a Dataset from records, validating each one.
// The slice is copied; later changes by the caller are not observed.
func New(source string, records []Record) (*Dataset, error) {
	if len(records) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmpty}
	}

	d := &Dataset{
		source:     source,
		records:    make([]Record, len(records)),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
		siteSet:    make(map[string]struct{}),
	}
	copy(d.records, records)

	for i, r := range d.records {
		if err := validateRecord(r); err != nil {
			return nil, &LoadError{Source: source, Err: fmt.Errorf("record %d: %w", i, err)}
		}
		d.minPayload = math.Min(d.minPayload, r.PayloadMass)
		d.maxPayload = math.Max(d.maxPayload, r.PayloadMass)
		if _, seen := d.siteSet[r.Site]; !seen {
			d.siteSet[r.Site] = struct{}{}
			d.sites = append(d.sites, r.Site)
		}
	}
	return d, nil
}

func validateRecord(r Record) error {
	switch {
	case r.Site == "":
		return fmt.Errorf("%w: empty site", ErrMalformedRow)
	case r.BoosterVersion == "":
		return fmt.Errorf("%w: empty booster version", ErrMalformedRow)
	case math.IsNaN(r.PayloadMass) || math.IsInf(r.PayloadMass, 0):
		return fmt.Errorf("%w: payload mass is not finite", ErrMalformedRow)
	case r.PayloadMass < 0:
		return fmt.Errorf("%w: payload mass %v is negative", ErrMalformedRow, r.PayloadMass)
	case r.Outcome != Success && r.Outcome != Failure:
		return fmt.Errorf("%w: outcome %d out of range", ErrMalformedRow, r.Outcome)
	}
	return nil
}

// Source returns the name the dataset was loaded from.
func (d *Dataset) Source() string { return d.source }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// At returns the record at index i.
func (d *Dataset) At(i int) Record { return d.records[i] }

// Records returns a copy of all records in load order.
func (d *Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Bounds returns the minimum and maximum payload mass. O(1).
func (d *Dataset) Bounds() (min, max float64) {
	return d.minPayload, d.maxPayload
}

// Sites returns the distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	out := make([]string, len(d.sites))
	copy(out, d.sites)
	return out
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	_, ok := d.siteSet[site]
	return ok
}
