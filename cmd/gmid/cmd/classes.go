package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/report"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "Show how columns scale with device width",
	Long: `Print the active scaling classification. Override it with the
GMID_PROPORTIONAL and GMID_INVERSE environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(report.Classes(cfg.Classification))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
