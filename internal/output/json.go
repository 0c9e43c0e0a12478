/*
PURPOSE:
  Writes dimension tables and the run manifest as JSON.
  Optimized for machine parsing and scripting against the derived values.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - A table is small; a single indented array reads better than JSON Lines.

ARCHITECTURE INTEGRATION:
  - Called by: internal/output/sink.go
  - Consumes: internal/model.Dimension

ERROR HANDLING:
  - Returns error on encode or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.

USAGE:
  err := output.EncodeJSON(w, table.Dimensions())

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - None.
*/

package output

import (
	"encoding/json"
	"io"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

// EncodeJSON writes dims as an indented JSON array.
func EncodeJSON(w io.Writer, dims []model.Dimension) error {
	return encodeJSON(w, dims)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
