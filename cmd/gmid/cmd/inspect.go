package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/report"
)

var inspectRow int

var inspectCmd = &cobra.Command{
	Use:   "inspect <lut-file>",
	Short: "Print one row of a sizing result",
	Long: `Run the sizing flow and print a single result row with SI-formatted
values, the driving condition and whether it met every condition.

Examples:
  gmid inspect lut.csv -c "gm=1.5e-3" --row 0`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	addConditionFlag(inspectCmd)

	inspectCmd.Flags().IntVarP(&inspectRow, "row", "r", 0, "result row to print")
}

func runInspect(cmd *cobra.Command, args []string) error {
	res, err := computeResult(args[0])
	if err != nil {
		return err
	}
	out, err := report.FormatRow(res, inspectRow)
	if err != nil {
		return err
	}
	fmt.Printf("Row %d of %d:\n", inspectRow, res.Len())
	fmt.Println(out)
	return nil
}
