package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceGMID/internal/config"
	"github.com/OpenTraceLab/OpenTraceGMID/internal/logger"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lutio"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/specs"
)

var (
	// Global flags
	verbose      bool
	tolerance    string
	wlMin        string
	wMax         string
	conditionStr []string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gmid",
	Short: "gm/id LUT resizing and specification matching",
	Long: `Resize transistor lookup tables so that each row meets a target value,
then check every resized row against the full set of conditions.

Conditions have the form <column><op><value> with op one of =, <, >.
Values accept SI suffixes (T G M k m u n p f).

Examples:
  gmid resize lut.csv -c "gm=1.5e-3" -c "rout>35e3"   # Resize and match
  gmid extend lut.csv -o extended.csv                 # Add derived specs
  gmid inspect lut.csv -c "gm=1.5e-3" --row 0         # Dump one result row
  gmid plot lut.csv -c "gm=1.5e-3" -o plot.png        # Scatter of area vs id
  gmid classes                                        # Show column scaling`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()
		if verbose {
			logger.InitWith(os.Stderr, "debug", os.Getenv("LOG_FORMAT"))
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if cfg.EnvFile != "" {
			slog.Debug("Loaded env file", "path", cfg.EnvFile)
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&tolerance, "tolerance", "", "equality tolerance in percent (default 1)")
	rootCmd.PersistentFlags().StringVar(&wlMin, "wl-min", "", "minimum W/L of a resized device (default 0.5)")
	rootCmd.PersistentFlags().StringVar(&wMax, "wmax", "", "maximum width of a resized device (default 100u)")
}

// addConditionFlag registers the repeatable -c flag on a command.
func addConditionFlag(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&conditionStr, "condition", "c", nil,
		"condition such as \"gm=1.5e-3\" (repeatable, default: the standard set)")
}

// sizingOptions merges command-line overrides into the configured options.
func sizingOptions() (sizing.Options, error) {
	opts := cfg.Sizing
	for _, o := range []struct {
		flag  string
		value string
		dst   *float64
	}{
		{"tolerance", tolerance, &opts.TolerancePercent},
		{"wl-min", wlMin, &opts.WidthOverLengthMin},
		{"wmax", wMax, &opts.WidthMax},
	} {
		if o.value == "" {
			continue
		}
		v, err := si.ParseNumber(o.value)
		if err != nil {
			return opts, fmt.Errorf("invalid --%s: %w", o.flag, err)
		}
		*o.dst = v
	}
	return opts, opts.Validate()
}

func newEngine() (*sizing.Engine, error) {
	opts, err := sizingOptions()
	if err != nil {
		return nil, err
	}
	return sizing.NewEngine(cfg.Classification, opts), nil
}

func activeConditions() []string {
	if len(conditionStr) == 0 {
		return sizing.DefaultConditions()
	}
	return conditionStr
}

// loadExtended reads a LUT and adds the derived specifications.
func loadExtended(path string) (*lut.Table, error) {
	base, err := lutio.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	ext, err := specs.Extend(base)
	if err != nil {
		return nil, fmt.Errorf("failed to extend %s: %w", path, err)
	}
	return ext, nil
}

// computeResult runs the full sizing flow on a LUT file.
func computeResult(path string) (*sizing.Result, error) {
	ext, err := loadExtended(path)
	if err != nil {
		return nil, err
	}
	engine, err := newEngine()
	if err != nil {
		return nil, err
	}
	conds := activeConditions()
	slog.Info("Resizing LUT", "file", path, "rows", ext.Len(), "conditions", len(conds))
	res, err := engine.Compute(ext, conds)
	if err != nil {
		return nil, err
	}
	slog.Info("Resized LUT", "rows", res.Len(), "passing", len(res.Passing()))
	return res, nil
}
