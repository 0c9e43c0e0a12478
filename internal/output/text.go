/*
PURPOSE:
  Reads and writes dimension tables in the CAD parameter text format.
  One `"name"= value<unit>` record per line, each followed by a blank line.

REQUIREMENTS:
  User-specified:
  - Unit is omitted entirely when absent.

  Implementation-discovered:
  - CAD import expects a UTF-8 BOM and float values with a decimal point.
  - Reading tolerates stray lines (skips anything that does not match).

ARCHITECTURE INTEGRATION:
  - Called by: internal/output/sink.go, internal/cli/show.go

ERROR HANDLING:
  - Returns write errors. ReadText returns scanner errors.

IMPLEMENTATION RULES:
  - Values use the shortest representation that round-trips.

USAGE:
  err := output.EncodeText(w, table.Dimensions())
  dims, err := output.ReadText(r)

SELF-HEALING INSTRUCTIONS:
  - If the CAD tool rejects a file, check FormatValue first.

RELATED FILES:
  - internal/output/sink.go

MAINTENANCE:
  - None.
*/

package output

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

const bom = "\ufeff"

var recordPattern = regexp.MustCompile(`^"([^"]+)"\s*=\s*(-?[\d.]+(?:[eE][-+]?\d+)?)\s*([a-zA-Z]*)`)

// FormatValue renders v in its shortest round-trip form, keeping a
// decimal point on whole numbers.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// EncodeText writes dims as CAD parameter records.
func EncodeText(w io.Writer, dims []model.Dimension) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(bom); err != nil {
		return err
	}
	for _, d := range dims {
		if _, err := fmt.Fprintf(bw, "\"%s\"= %s%s\n\n", d.Name, FormatValue(d.Value), d.Unit); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadText parses CAD parameter records. Lines that are not records are skipped.
func ReadText(r io.Reader) ([]model.Dimension, error) {
	var dims []model.Dimension
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, bom)
			first = false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := recordPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			continue
		}
		dims = append(dims, model.Dimension{Name: m[1], Value: v, Unit: m[3]})
	}
	return dims, scanner.Err()
}
