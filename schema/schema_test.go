package schema

import (
	"strings"
	"testing"
)

// ============================================================================
// COLUMN CONTRACT TESTS
// ============================================================================

var launchHeaders = []string{
	"Unnamed: 0", "Flight Number", "Launch Site", "class",
	"Payload Mass (kg)", "Booster Version", "Booster Version Category",
}

func TestLaunchColumns(t *testing.T) {
	got := Launch().Columns()
	want := []string{"Launch Site", "Booster Version", "Payload Mass (kg)", "class"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Columns() = %v, want %v", got, want)
	}
}

func TestColumnIndex(t *testing.T) {
	index := Launch().ColumnIndex(launchHeaders)

	cases := map[string]int{
		KeySite:           2,
		KeyOutcome:        3,
		KeyPayloadMass:    4,
		KeyBoosterVersion: 5,
	}
	for key, want := range cases {
		got, ok := index[key]
		if !ok {
			t.Errorf("key %q missing from index", key)
			continue
		}
		if got != want {
			t.Errorf("index[%q] = %d, want %d", key, got, want)
		}
	}
}

func TestColumnIndexTrimsHeaders(t *testing.T) {
	headers := []string{"\ufeffLaunch Site", " class ", "Payload Mass (kg)", "Booster Version"}
	index := Launch().ColumnIndex(headers)
	if index[KeySite] != 0 {
		t.Errorf("BOM-prefixed header not matched: %v", index)
	}
	if index[KeyOutcome] != 1 {
		t.Errorf("padded header not matched: %v", index)
	}
}

func TestColumnIndexFirstDuplicateWins(t *testing.T) {
	headers := []string{"Launch Site", "Launch Site", "class", "Payload Mass (kg)", "Booster Version"}
	if got := Launch().ColumnIndex(headers)[KeySite]; got != 0 {
		t.Errorf("duplicate header resolved to %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Launch().Validate(launchHeaders); err != nil {
		t.Fatalf("Validate() on full header: %v", err)
	}

	err := Launch().Validate([]string{"Launch Site", "Booster Version"})
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	msg := err.Error()
	for _, col := range []string{`"Payload Mass (kg)"`, `"class"`} {
		if !strings.Contains(msg, col) {
			t.Errorf("error %q does not name %s", msg, col)
		}
	}
	if strings.Contains(msg, "Launch Site") {
		t.Errorf("error %q names a present column", msg)
	}
}

func TestMissingColumnsCaseSensitive(t *testing.T) {
	missing := Launch().MissingColumns([]string{"launch site", "Booster Version", "Payload Mass (kg)", "class"})
	if len(missing) != 1 || missing[0] != "Launch Site" {
		t.Errorf("MissingColumns() = %v, want [Launch Site]", missing)
	}
}

func TestMissingColumnsTrimsHeaders(t *testing.T) {
	headers := []string{"\ufeffLaunch Site", " class ", "Payload Mass (kg) ", "Booster Version"}
	if missing := Launch().MissingColumns(headers); len(missing) != 0 {
		t.Errorf("MissingColumns() = %v, want none", missing)
	}
}

func TestDisplayLabels(t *testing.T) {
	labels := Launch().DisplayLabels()
	if labels[KeyPayloadMass] != "Payload Mass (kg)" {
		t.Errorf("payload label = %q", labels[KeyPayloadMass])
	}
	if labels[KeySite] != "Launch Site" {
		t.Errorf("site label = %q", labels[KeySite])
	}
	if len(labels) != 4 {
		t.Errorf("expected 4 labels, got %d", len(labels))
	}
}

func TestColumnLookup(t *testing.T) {
	c := Launch()
	if got := c.Column(KeyOutcome); got != "class" {
		t.Errorf("Column(outcome) = %q", got)
	}
	if got := c.Column("nope"); got != "" {
		t.Errorf("Column(nope) = %q, want empty", got)
	}
}
