package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

// Format is an output file encoding. Its value doubles as the file extension.
type Format string

const (
	FormatText Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Encoder writes one table's dimensions to w.
type Encoder func(w io.Writer, dims []model.Dimension) error

var encoders = map[Format]Encoder{
	FormatText: EncodeText,
	FormatCSV:  EncodeCSV,
	FormatJSON: EncodeJSON,
	FormatYAML: EncodeYAML,
	FormatTOML: EncodeTOML,
}

// Formats lists the supported format names.
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for f := range encoders {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if _, ok := encoders[f]; !ok {
		return "", fmt.Errorf("unknown output format %q (supported: %v)", s, Formats())
	}
	return f, nil
}

// Encode writes dims to w in format f.
func Encode(w io.Writer, f Format, dims []model.Dimension) error {
	enc, ok := encoders[f]
	if !ok {
		return fmt.Errorf("unknown output format %q", f)
	}
	return enc(w, dims)
}

// EncodeYAML writes dims as a YAML sequence.
func EncodeYAML(w io.Writer, dims []model.Dimension) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(dims); err != nil {
		return err
	}
	return enc.Close()
}

type tomlTable struct {
	Dimension []model.Dimension `toml:"dimension"`
}

// EncodeTOML writes dims as a [[dimension]] array of tables.
func EncodeTOML(w io.Writer, dims []model.Dimension) error {
	return toml.NewEncoder(w).Encode(tomlTable{Dimension: dims})
}
