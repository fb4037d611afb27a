package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gocs25/internal/cs25"
	"github.com/alexiusacademia/gocs25/internal/variables"
	"github.com/alexiusacademia/gocs25/internal/version"
	"github.com/alexiusacademia/gocs25/internal/wing"
)

var (
	cfgFile string
	verbose bool

	logger   log.Logger = log.NewNopLogger()
	settings            = newSettings()
)

var rootCmd = &cobra.Command{
	Use:   "gocs25",
	Short: "CS-25 Aircraft Preliminary Geometry Tool",
	Long: `gocs25 - Go CS-25 Aircraft Preliminary Geometry

A CLI tool for the preliminary geometry of transport aircraft
certified under CS-25.

This tool helps aircraft designers compute:
  - Wing planform (chords, sweeps, MAC, thickness ratios, lift slope)
  - Leading edge positions of wing and tails from the nose
  - Horizontal and vertical tail local positions
  - Nacelle and pylon geometry with engine position
  - Lifting surface area and MAC from section definitions
  - Section profile chord, thickness and mean line

Inputs and outputs are named variables (data:geometry:wing:area, ...)
stored in YAML, JSON or TOML files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocs25 v%-48s║\n", version.Version)
		fmt.Println("  ║   Go CS-25 Aircraft Preliminary Geometry                  ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the preliminary geometry of transport aircraft")
		fmt.Println("  certified under CS-25.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Kinked wing planform from area, aspect ratio and sweep")
		fmt.Println("    • Wing, horizontal tail and vertical tail positions")
		fmt.Println("    • Nacelle and pylon sizing from takeoff thrust")
		fmt.Println("    • Lifting surface and section profile analysis")
		fmt.Println()
		fmt.Println("  Use 'gocs25 --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Settings file (yaml, json, toml), also GOCS25_CONFIG")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug messages")

	cobra.OnInitialize(initLogger, initConfig)
}

// newSettings returns the settings store. Environment variables with the
// GOCS25_ prefix override settings, for instance
// GOCS25_SETTINGS_GEOMETRY_WING_SOLVER_TOLERANCE.
func newSettings() *viper.Viper {
	v := viper.NewWithOptions(
		viper.KeyDelimiter(variables.KeyDelimiter),
		viper.EnvKeyReplacer(strings.NewReplacer(variables.KeyDelimiter, "_")),
	)
	v.SetEnvPrefix("GOCS25")
	v.AutomaticEnv()

	v.SetDefault(variables.SolverMaxIterations, cs25.DefaultMaxIterations)
	v.SetDefault(variables.SolverTolerance, cs25.DefaultTolerance)
	v.SetDefault(variables.VTPositionRatio, cs25.VerticalTailPositionRatio)
	return v
}

func initLogger() {
	allow := level.AllowInfo()
	if verbose {
		allow = level.AllowDebug()
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	l = level.NewFilter(l, allow)
	logger = log.With(l, "ts", log.DefaultTimestampUTC)
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = os.Getenv("GOCS25_CONFIG")
	}
	if cfgFile == "" {
		return
	}

	settings.SetConfigFile(cfgFile)
	if err := settings.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading settings: %v\n", err)
		os.Exit(1)
	}
	level.Debug(logger).Log("msg", "settings loaded", "file", settings.ConfigFileUsed())
}

// newWingSolver returns a planform solver configured from settings
func newWingSolver() *wing.Solver {
	s := wing.NewSolver()
	s.MaxIterations = settings.GetInt(variables.SolverMaxIterations)
	s.Tolerance = settings.GetFloat64(variables.SolverTolerance)
	s.Logger = log.With(logger, "component", "wing")
	return s
}
