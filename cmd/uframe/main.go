package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/uframe-io/uframe/internal/cliconfig"
	"github.com/uframe-io/uframe/pkg/frame"
	"github.com/uframe-io/uframe/pkg/log"
	"github.com/uframe-io/uframe/pkg/uexpr"
	"github.com/uframe-io/uframe/pkg/units"
)

const longHelp = `
Unit-aware column expressions for tabular data.

uframe resolves unit strings against a registry (SI defaults plus your own
definitions), converts scalar values and CSV columns between compatible
units, and validates unit definition files.
`

var exampleUsage = strings.TrimSpace(`
  uframe convert 100 meter cm
  uframe describe "kilogram * meter / second ** 2"
  uframe eval --csv data.csv --col height --unit meter --to cm
  uframe --defs my_units.toml watch my_units.toml
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "uframe",
		Short:   "Unit-aware column expressions for tabular data",
		Long:    strings.TrimSpace(longHelp),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.uframe/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			cmd.Root().PersistentFlags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			cliconfig.ApplyEnvConfig(&cfg, changed)

			return cfg.Validate()
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.uframe/config.toml)")
	root.PersistentFlags().StringVar(&cfg.DefsPath, "defs", cfg.DefsPath, "TOML file with extra unit definitions")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(convertCmd(&cfg))
	root.AddCommand(describeCmd(&cfg))
	root.AddCommand(evalCmd(&cfg))
	root.AddCommand(watchCmd(&cfg))

	if err := root.Execute(); err != nil {
		logger := cfg.Logger()
		logger.Error().Err(err).Msg("uframe")
		os.Exit(1)
	}
}

// buildRegistry loads the embedded defaults plus the configured extra
// definitions file.
func buildRegistry(cfg *cliconfig.Config) (*units.Registry, error) {
	reg := units.NewRegistry()
	if err := reg.LoadDefaults(); err != nil {
		return nil, err
	}
	if cfg.DefsPath != "" {
		if err := reg.LoadDefinitionsFile(cfg.DefsPath); err != nil {
			return nil, fmt.Errorf("load definitions %s: %w", cfg.DefsPath, err)
		}
	}
	return reg, nil
}

func convertCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a scalar value between compatible units",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", args[0], err)
			}
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			from, err := reg.Parse(args[1])
			if err != nil {
				return err
			}
			to, err := reg.Parse(args[2])
			if err != nil {
				return err
			}
			factor, err := units.ConversionFactor(from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", v*factor, to)
			return nil
		},
	}
}

func describeCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "describe UNIT",
		Short: "Show the dimension and canonical scale of a unit expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			u, err := reg.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "unit:      %s\n", u)
			fmt.Fprintf(out, "dimension: %s\n", u.Dimension())
			fmt.Fprintf(out, "canonical: %g\n", units.CanonicalFactor(u))
			return nil
		},
	}
}

func evalCmd(cfg *cliconfig.Config) *cobra.Command {
	var (
		csvPath string
		col     string
		unit    string
		target  string
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Convert a tagged CSV column between units",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			f, err := os.Open(csvPath)
			if err != nil {
				return fmt.Errorf("open csv: %w", err)
			}
			defer f.Close()
			df, err := frame.FromCSV(f)
			if err != nil {
				return err
			}

			expr, err := uexpr.ColIn(col, unit, reg)
			if err != nil {
				return err
			}
			conv, err := expr.To(target)
			if err != nil {
				return err
			}
			out, err := df.Select(conv.Alias(col))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (%s)\n", col, conv.Unit())
			for _, v := range out.ColumnByName(col).Float64() {
				fmt.Fprintf(w, "%g\n", v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with a header row")
	cmd.Flags().StringVar(&col, "col", "", "column to convert")
	cmd.Flags().StringVar(&unit, "unit", "", "unit the column is measured in")
	cmd.Flags().StringVar(&target, "to", "", "unit to convert the column to")
	for _, name := range []string{"csv", "col", "unit", "to"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func watchCmd(cfg *cliconfig.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Validate a unit definitions file continuously as it is edited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger := log.NewZerologAdapterWithLogger(cfg.Logger())
			return reg.Watch(ctx, args[0], logger)
		},
	}
}
