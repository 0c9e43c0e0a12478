package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/bogie-sizer/internal/output"
)

var showCmd = &cobra.Command{
	Use:   "show FILE...",
	Short: "Pretty-print derived tables written in the CAD text format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			dims, err := output.ReadText(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if err := output.PrintTable(cmd.OutOrStdout(), title, dims); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
