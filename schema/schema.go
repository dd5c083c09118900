package schema

import (
	"fmt"
	"strings"
)

// ============================================================================
// SCHEMA: Column contract of the launch records dataset
// ============================================================================
// The dataset loader validates source headers against this contract.
// The chart builder reads display labels from it.
// ============================================================================

// Canonical field keys used throughout the engine.
const (
	KeySite           = "site"
	KeyBoosterVersion = "booster_version"
	KeyPayloadMass    = "payload_mass"
	KeyOutcome        = "outcome"
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Dimensions []DimensionMeta `json:"dimensions" yaml:"dimensions"`
	Measures   []MeasureMeta   `json:"measures" yaml:"measures"`
}

// DimensionMeta describes a string column used for grouping/filtering.
type DimensionMeta struct {
	Key         string `json:"key" yaml:"key"`
	Column      string `json:"column" yaml:"column"` // header name in the source
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Filterable  bool   `json:"filterable" yaml:"filterable"`
	Groupable   bool   `json:"groupable" yaml:"groupable"`
}

// MeasureMeta describes a numeric column.
type MeasureMeta struct {
	Key         string `json:"key" yaml:"key"`
	Column      string `json:"column" yaml:"column"`
	DisplayName string `json:"displayName" yaml:"displayName"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"`
	IsBinary    bool   `json:"isBinary,omitempty" yaml:"isBinary,omitempty"` // only 0 or 1 allowed
}

// Launch returns the column contract for launch records.
func Launch() Config {
	return Config{
		Name:        "Launch Records",
		Version:     "1.0",
		Description: "One row per launch attempt",
		Dimensions: []DimensionMeta{
			{
				Key:         KeySite,
				Column:      "Launch Site",
				DisplayName: "Launch Site",
				Filterable:  true,
				Groupable:   true,
			},
			{
				Key:         KeyBoosterVersion,
				Column:      "Booster Version",
				DisplayName: "Booster Version",
				Groupable:   true,
			},
		},
		Measures: []MeasureMeta{
			{
				Key:         KeyPayloadMass,
				Column:      "Payload Mass (kg)",
				DisplayName: "Payload Mass (kg)",
				Unit:        "kg",
			},
			{
				Key:         KeyOutcome,
				Column:      "class",
				DisplayName: "class",
				Description: "1 = success, 0 = failure",
				IsBinary:    true,
			},
		},
	}
}

// Columns returns every required source column, dimensions first.
func (c Config) Columns() []string {
	cols := make([]string, 0, len(c.Dimensions)+len(c.Measures))
	for _, d := range c.Dimensions {
		cols = append(cols, d.Column)
	}
	for _, m := range c.Measures {
		cols = append(cols, m.Column)
	}
	return cols
}

// headerPositions maps each trimmed header cell to its first position.
func headerPositions(headers []string) map[string]int {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	return pos
}

// ColumnIndex maps field keys to their position in a header row.
// Keys whose column is absent are omitted.
func (c Config) ColumnIndex(headers []string) map[string]int {
	pos := headerPositions(headers)

	index := make(map[string]int)
	for _, d := range c.Dimensions {
		if i, ok := pos[d.Column]; ok {
			index[d.Key] = i
		}
	}
	for _, m := range c.Measures {
		if i, ok := pos[m.Column]; ok {
			index[m.Key] = i
		}
	}
	return index
}

// MissingColumns returns the required columns absent from headers, in contract order.
func (c Config) MissingColumns(headers []string) []string {
	pos := headerPositions(headers)
	var missing []string
	for _, col := range c.Columns() {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// Validate returns an error naming every required column absent from headers.
func (c Config) Validate(headers []string) error {
	missing := c.MissingColumns(headers)
	if len(missing) == 0 {
		return nil
	}
	quoted := make([]string, len(missing))
	for i, m := range missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Errorf("missing required columns: %s", strings.Join(quoted, ", "))
}

// Column returns the source column name for a field key.
func (c Config) Column(key string) string {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d.Column
		}
	}
	for _, m := range c.Measures {
		if m.Key == key {
			return m.Column
		}
	}
	return ""
}

// DisplayLabels maps every field key to its display name.
func (c Config) DisplayLabels() map[string]string {
	labels := make(map[string]string, len(c.Dimensions)+len(c.Measures))
	for _, d := range c.Dimensions {
		labels[d.Key] = d.DisplayName
	}
	for _, m := range c.Measures {
		labels[m.Key] = m.DisplayName
	}
	return labels
}
