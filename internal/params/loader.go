/*
PURPOSE:
  Reads the base parameter table from a CSV file.

REQUIREMENTS:
  User-specified:
  - Rows are (name, value, unit). Unit may be empty.
  - Skip rows whose value is not numeric (comments, headers).
  - Fail the whole load if the source cannot be read.

  Implementation-discovered:
  - CAD tools export CSV with a UTF-8 BOM; strip it.
  - Rows have a variable number of fields.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/runner.go, internal/cli
  - Produces: *params.Store

ERROR HANDLING:
  - Returns error if the file cannot be opened or the CSV is unparseable.
  - Malformed rows are logged at debug level and skipped.

IMPLEMENTATION RULES:
  - Use encoding/csv.

USAGE:
  store, err := params.Load("Parameters.csv")

SELF-HEALING INSTRUCTIONS:
  - If a new column is added, keep the first three positions stable.

RELATED FILES:
  - internal/params/store.go
  - internal/output/csv.go (writes the same row shape)

MAINTENANCE:
  - None.
*/

package params

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/bogie-sizer/internal/output"
)

const bom = "\ufeff"

// Load reads a parameter CSV file into a Store.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file %s: %w", path, err)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file %s: %w", path, err)
	}
	output.Logger.Debug("Loaded parameters", "path", path, "count", s.Len())
	return s, nil
}

// Read parses (name, value, unit) rows from r.
func Read(r io.Reader) (*Store, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(bom)); err == nil && string(head) == bom {
		_, _ = br.Discard(len(bom))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var ps []Parameter
	seen := make(map[string]bool)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			output.Logger.Debug("Skipping unparsable parameter row", "line", perr.Line, "error", perr.Err)
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 3 {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			output.Logger.Debug("Skipping unnamed parameter row", "value", row[1])
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			output.Logger.Debug("Skipping non-numeric parameter row", "name", name, "value", row[1])
			continue
		}
		if seen[name] {
			output.Logger.Warn("Duplicate parameter, keeping last value", "name", name)
		}
		seen[name] = true

		ps = append(ps, Parameter{Name: name, Value: value, Unit: strings.TrimSpace(row[2])})
	}

	return New(ps...), nil
}
