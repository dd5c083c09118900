package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spektr-org/launchdash/schema"
)

// ============================================================================
// CSV LOADER: Parses launch records into a Dataset
// ============================================================================
// Columns are located by header name through the schema contract.
// Extra columns are ignored. Any malformed row aborts the load.
// ============================================================================

// LoadFile reads and parses a CSV file.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
	}
	defer f.Close()
	return Load(f, path)
}

// Load parses CSV launch records from r. source names r in errors and logs.
func Load(r io.Reader, source string) (*Dataset, error) {
	sch := schema.Launch()

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Source: source, Err: ErrEmpty}
	}
	if err != nil {
		return nil, &LoadError{Source: source, Line: 1, Err: fmt.Errorf("%w: read headers: %v", ErrUnreadable, err)}
	}

	if missing := sch.MissingColumns(headers); len(missing) > 0 {
		return nil, &LoadError{
			Source: source,
			Line:   1,
			Column: missing[0],
			Err:    fmt.Errorf("%w: %v", ErrMissingColumn, sch.Validate(headers)),
		}
	}
	index := sch.ColumnIndex(headers)

	var records []Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				if errors.Is(perr.Err, csv.ErrFieldCount) {
					return nil, &LoadError{Source: source, Line: perr.StartLine, Err: fmt.Errorf("%w: %v", ErrMalformedRow, perr.Err)}
				}
				return nil, &LoadError{Source: source, Line: perr.StartLine, Err: fmt.Errorf("%w: %v", ErrUnreadable, perr.Err)}
			}
			return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrUnreadable, err)}
		}

		line, _ := reader.FieldPos(0)
		rec, column, err := parseRow(row, index, sch)
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Column: column, Err: err}
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmpty}
	}
	return New(source, records)
}

// parseRow converts one CSV row. On failure it returns the offending column name.
func parseRow(row []string, index map[string]int, sch schema.Config) (Record, string, error) {
	field := func(key string) string {
		return strings.TrimSpace(row[index[key]])
	}

	site := field(schema.KeySite)
	if site == "" {
		return Record{}, sch.Column(schema.KeySite), fmt.Errorf("%w: empty value", ErrMalformedRow)
	}

	booster := field(schema.KeyBoosterVersion)
	if booster == "" {
		return Record{}, sch.Column(schema.KeyBoosterVersion), fmt.Errorf("%w: empty value", ErrMalformedRow)
	}

	rawPayload := field(schema.KeyPayloadMass)
	payload, err := strconv.ParseFloat(rawPayload, 64)
	if err != nil {
		return Record{}, sch.Column(schema.KeyPayloadMass), fmt.Errorf("%w: %q is not a number", ErrMalformedRow, rawPayload)
	}
	if err := validateRecord(Record{Site: site, BoosterVersion: booster, PayloadMass: payload}); err != nil {
		return Record{}, sch.Column(schema.KeyPayloadMass), err
	}

	rawClass := field(schema.KeyOutcome)
	class, err := strconv.ParseFloat(rawClass, 64)
	if err != nil {
		return Record{}, sch.Column(schema.KeyOutcome), fmt.Errorf("%w: %q is not a number", ErrMalformedRow, rawClass)
	}
	outcome, err := ParseOutcome(class)
	if err != nil {
		return Record{}, sch.Column(schema.KeyOutcome), fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	return Record{
		Site:           site,
		PayloadMass:    payload,
		Outcome:        outcome,
		BoosterVersion: booster,
	}, "", nil
}
