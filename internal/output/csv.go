/*
PURPOSE:
  Writes dimension tables to CSV.
  Rows use the same (name, value, unit) shape as the parameter input,
  so a derived table can be fed back in as parameters.

REQUIREMENTS:
  User-specified:
  - Output to CSV.

  Implementation-discovered:
  - No header row; the parameter loader would skip it anyway.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output/sink.go
  - Consumes: internal/model.Dimension

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() and check Error() once the table is written.

USAGE:
  err := output.EncodeCSV(w, table.Dimensions())

SELF-HEALING INSTRUCTIONS:
  - Keep column order in sync with internal/params/loader.go.

RELATED FILES:
  - internal/params/loader.go

MAINTENANCE:
  - None.
*/

package output

import (
	"encoding/csv"
	"io"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

// EncodeCSV writes dims as name,value,unit rows.
func EncodeCSV(w io.Writer, dims []model.Dimension) error {
	cw := csv.NewWriter(w)
	for _, d := range dims {
		record := []string{d.Name, FormatValue(d.Value), d.Unit}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
