package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/render"
)

var (
	plotX           string
	plotY           string
	plotHue         string
	plotColorMap    string
	plotThreshold   float64
	plotDirection   string
	plotOnlyPassing bool
	plotLogX        bool
	plotLogY        bool
	plotTitle       string
	plotOutput      string
)

var plotCmd = &cobra.Command{
	Use:   "plot <lut-file>",
	Short: "Scatter two columns of a sizing result",
	Long: `Run the sizing flow and plot one result column against another.
Rows that met every condition are drawn large and green, the rest small and
red. With --hue, points are coloured by a third column instead.

Examples:
  gmid plot lut.csv -c "gm=1.5e-3" -o plot.png
  gmid plot lut.csv -x gmoverid -y ft --hue intrinsic_gain -o plot.svg
  gmid plot lut.csv --hue gmoverid --hue-threshold 20 --threshold-direction up -o plot.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	addConditionFlag(plotCmd)

	plotCmd.Flags().StringVarP(&plotX, "x", "x", "", "x axis column (default area)")
	plotCmd.Flags().StringVarP(&plotY, "y", "y", "", "y axis column (default id)")
	plotCmd.Flags().StringVar(&plotHue, "hue", "", "colour points by this column")
	plotCmd.Flags().StringVar(&plotColorMap, "colormap", "bluered",
		"hue colour map: bluered, blackbody, extblackbody, kindlmann")
	plotCmd.Flags().Float64Var(&plotThreshold, "hue-threshold", 0,
		"drop rows on one side of this percentage of the hue range")
	plotCmd.Flags().StringVar(&plotDirection, "threshold-direction", "down",
		"down drops rows below the threshold, up drops rows above it")
	plotCmd.Flags().BoolVar(&plotOnlyPassing, "only-passing", false, "plot only rows that met every condition")
	plotCmd.Flags().BoolVar(&plotLogX, "logx", false, "logarithmic x axis")
	plotCmd.Flags().BoolVar(&plotLogY, "logy", false, "logarithmic y axis")
	plotCmd.Flags().StringVar(&plotTitle, "title", "", "plot title")
	plotCmd.Flags().StringVarP(&plotOutput, "output", "o", "", "image file (.png, .svg, .pdf, ...)")
	plotCmd.MarkFlagRequired("output")
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotOutput == "" {
		return fmt.Errorf("--output is required")
	}
	opts := render.DefaultOptions()
	opts.X, opts.Y = cfg.DefaultX, cfg.DefaultY
	if plotX != "" {
		opts.X = plotX
	}
	if plotY != "" {
		opts.Y = plotY
	}
	opts.Hue = plotHue
	opts.ColorMap = plotColorMap
	opts.OnlyPassing = plotOnlyPassing
	opts.LogX, opts.LogY = plotLogX, plotLogY
	opts.Title = plotTitle

	if cmd.Flags().Changed("hue-threshold") {
		if plotHue == "" {
			return fmt.Errorf("--hue-threshold needs --hue")
		}
		dir, err := render.ParseDirection(plotDirection)
		if err != nil {
			return err
		}
		opts.HasHueThreshold = true
		opts.HueThreshold = plotThreshold
		opts.ThresholdDirection = dir
	}

	res, err := computeResult(args[0])
	if err != nil {
		return err
	}
	proj, err := render.Save(res, opts, plotOutput)
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d points (%s vs %s) to %s\n", len(proj.Points), opts.Y, opts.X, plotOutput)
	return nil
}
