package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/condition"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lutio"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/report"
)

var (
	resizeOutput      string
	resizeOnlyPassing bool
	resizeSI          bool
	resizeShow        int
)

var resizeCmd = &cobra.Command{
	Use:   "resize <lut-file>",
	Short: "Resize a LUT against a set of conditions",
	Long: `Resize every row of a LUT so that each resizable condition is met exactly,
then mark the rows that satisfy all conditions.

Examples:
  gmid resize lut.csv
  gmid resize lut.csv -c "gm=1.5e-3" -c "rout>35e3" -o result.xlsx
  gmid resize lut.csv -c "id=200u" --wmax 50u --only-passing -o passing.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runResize,
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	addConditionFlag(resizeCmd)

	resizeCmd.Flags().StringVarP(&resizeOutput, "output", "o", "",
		"write the result table (.csv, .tsv or .xlsx)")
	resizeCmd.Flags().BoolVar(&resizeOnlyPassing, "only-passing", false,
		"keep only rows that met every condition")
	resizeCmd.Flags().BoolVar(&resizeSI, "si", false,
		"write numbers with SI suffixes")
	resizeCmd.Flags().IntVar(&resizeShow, "show", 0,
		"print the first N result rows")
}

func runResize(cmd *cobra.Command, args []string) error {
	res, err := computeResult(args[0])
	if err != nil {
		return err
	}

	fmt.Println(report.Title.Render("Conditions:"))
	for _, c := range activeConditions() {
		fmt.Printf("  %s\n", c)
	}
	fmt.Println()
	fmt.Println(report.Summary(res))

	if resizeOnlyPassing {
		res = res.OnlyPassing()
	}

	if resizeShow > 0 {
		rows, err := report.Rows(res, displayColumns(), resizeShow)
		if err != nil {
			return err
		}
		fmt.Println(rows)
	}

	if resizeOutput != "" {
		if err := lutio.SaveResult(resizeOutput, res, lutio.WriteOptions{SI: resizeSI}); err != nil {
			return fmt.Errorf("failed to write %s: %w", resizeOutput, err)
		}
		fmt.Printf("Wrote %d rows to %s\n", res.Len(), resizeOutput)
	} else if verbose {
		fmt.Fprintln(os.Stderr, "no --output given, result not written")
	}
	return nil
}

// displayColumns lists W, L, area and every condition variable once.
func displayColumns() []string {
	columns := []string{"W", "L", "area"}
	seen := map[string]bool{"W": true, "L": true, "area": true}
	conds, err := condition.ParseAll(activeConditions())
	if err != nil {
		return columns
	}
	for _, c := range conds {
		if !seen[c.Variable] {
			seen[c.Variable] = true
			columns = append(columns, c.Variable)
		}
	}
	return columns
}
