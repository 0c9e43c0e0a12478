package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/daryltucker/bogie-sizer/internal/model"
)

var (
	passColor  = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
	titleColor = color.New(color.FgYellow, color.Bold)
)

// ReportValidation prints the rover width verdict for the operator.
func ReportValidation(w io.Writer, valid bool, required, target float64) {
	verdict := passColor.Sprint("true")
	if !valid {
		verdict = failColor.Sprint("false")
	}
	fmt.Fprintf(w, "Rover width is valid: %s (required %s%s, available %s%s)\n",
		verdict, FormatValue(required), model.MM, FormatValue(target), model.MM)
}

// ReportMinBoltLength prints the shortest bolt that spans a shaft's clamp stack.
func ReportMinBoltLength(w io.Writer, shaft string, length float64) {
	fmt.Fprintf(w, "Min %s bolt length: %s%s\n", shaft, labelColor.Sprint(FormatValue(length)), model.MM)
}

// PrintTable prints dims as an aligned name/value/unit listing.
func PrintTable(w io.Writer, title string, dims []model.Dimension) error {
	titleColor.Fprintln(w, title)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range dims {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", d.Name, FormatValue(d.Value), d.Unit)
	}
	return tw.Flush()
}
