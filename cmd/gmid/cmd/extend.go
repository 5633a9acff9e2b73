package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lutio"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/specs"
)

var (
	extendOutput string
	extendSI     bool
)

var extendCmd = &cobra.Command{
	Use:   "extend <lut-file>",
	Short: "Add derived specifications to a LUT",
	Long: `Add intrinsic_gain (gm*rout), ft (gm/(2*pi*cgg)) and gmoverid (gm/id)
columns to a LUT. Without --output the table is written to stdout as CSV.

Examples:
  gmid extend lut.csv
  gmid extend lut.csv -o extended.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExtend,
}

func init() {
	rootCmd.AddCommand(extendCmd)

	extendCmd.Flags().StringVarP(&extendOutput, "output", "o", "",
		"write the extended table (.csv, .tsv or .xlsx)")
	extendCmd.Flags().BoolVar(&extendSI, "si", false,
		"write numbers with SI suffixes")
}

func runExtend(cmd *cobra.Command, args []string) error {
	ext, err := loadExtended(args[0])
	if err != nil {
		return err
	}

	opts := lutio.WriteOptions{SI: extendSI}
	if extendOutput == "" {
		return lutio.WriteTable(os.Stdout, ext, ',', opts)
	}
	if err := lutio.SaveTable(extendOutput, ext, opts); err != nil {
		return fmt.Errorf("failed to write %s: %w", extendOutput, err)
	}
	fmt.Printf("Wrote %d rows with %v to %s\n", ext.Len(), specs.Names(), extendOutput)
	return nil
}
