// =============================================================================
// main.go - robolab CLI Entry Point
// =============================================================================
//
// robolab is the mouse program for the maze simulator. The simulator starts
// it as a child process and talks to it over standard input and standard
// output with a one-line-per-message text protocol (see package mazeapi).
// Everything robolab wants a human to read therefore goes to standard
// error, which the simulator shows in its log pane.
//
// Usage:
//
//	robolab                       Run the wall follower (what the simulator launches)
//	robolab maze --max-steps 200  Same, stopping after 200 moves
//	robolab drive                 Steer the mouse by hand from the terminal
//	robolab warehouse             Run the warehouse robot fleet demo
//	robolab sensors --seed 7      Run the dual-sensor simulation
//	robolab config                Print the effective configuration
//	robolab version               Show version
//
// Settings come from robolab.yaml, an optional .env file and ROBOLAB_*
// environment variables, in that order; flags win over all of them.
//
// =============================================================================

// GO CONCEPT: Packages
// --------------------
// Every Go source file starts with a "package" declaration. The special
// package name "main" tells the compiler this is an executable program. A
// "main" package must contain a func main() as the entry point.
//
// Compare with Python: Python uses `if __name__ == "__main__":` as the
// entry point. Any .py file can be both a script and a module.
package main

// GO CONCEPT: Imports
// -------------------
// Standard library packages have no domain prefix. Third-party modules are
// imported by their module path, here cobra for subcommands and flags, zap
// for structured logging and uuid for run identifiers. Our own packages
// live under the module path declared in go.mod.
//
// Go refuses to compile a file with an unused import.
import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/enpm702/robolab/config"
	"github.com/enpm702/robolab/logging"
)

// =============================================================================
// Version Information
// =============================================================================

const (
	// version is the current version of robolab.
	version = "0.3.0"

	// appName is the application name.
	appName = "robolab"
)

// fullTitle returns the application name with version.
func fullTitle() string {
	return fmt.Sprintf("%s v%s", appName, version)
}

// =============================================================================
// Global State
// =============================================================================

// GO CONCEPT: Package-Level Variables
// -----------------------------------
// Variables declared outside any function live for the whole program. cobra
// binds flags to them by pointer, and PersistentPreRunE fills in the config
// and logger before any subcommand runs.
//
// Compare with Python: module-level globals, e.g. `logger = None` at the
// top of a module, assigned later with `global logger`.
var (
	// Global flags
	configPath string
	envFile    string
	verbose    bool

	// Populated by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
	runID  string
)

// =============================================================================
// Commands
// =============================================================================

// GO CONCEPT: Struct Literals for Configuration
// ---------------------------------------------
// cobra commands are plain structs. Fields such as Use, Short and RunE are
// set with a composite literal; any field left out gets its zero value.
// RunE returns an error instead of exiting, so cobra can print it and main
// decides the exit code.

// rootCmd represents the base command. With no subcommand it runs the
// wall follower, which is what the simulator expects.
var rootCmd = &cobra.Command{
	Use:   "robolab",
	Short: "Micromouse maze client and robotics exercises",
	Long: `robolab drives a mouse in the maze simulator over its stdin/stdout
line protocol. Started without a subcommand it runs the left-hand wall
follower.

Standard output is reserved for the simulator. Logs go to standard error.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	RunE: runMazeCommand,
}

// configCmd prints the effective configuration as YAML.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), fullTitle())
		return nil
	},
}

// GO CONCEPT: init Functions
// --------------------------
// A file may declare any number of func init(). They run automatically,
// after package-level variables are initialized and before main. Here
// they register flags and attach subcommands to the root.
//
// Compare with Python: code at module top level runs on first import.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file instead of ./.env")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level, including every protocol line")
	addMazeFlags(rootCmd)

	rootCmd.AddCommand(mazeCmd, driveCmd, warehouseCmd, sensorsCmd, configCmd, versionCmd)

	// Finalizers also run when RunE fails.
	cobra.OnFinalize(syncLogger)
}

// syncLogger flushes buffered log entries.
func syncLogger() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// setup loads settings and builds the logger shared by every command.
func setup(cmd *cobra.Command) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, loaded)
	cfg = loaded

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	base, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID = uuid.NewString()
	logger = logging.WithRun(base, runID)
	logger.Debug("config loaded", zap.String("path", configPath), zap.Int("max_steps", cfg.MaxSteps))
	return nil
}

// applyFlagOverrides copies explicitly set flags over file and environment
// settings.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	if f := cmd.Flags().Lookup("max-steps"); f != nil && f.Changed {
		c.MaxSteps = maxSteps
	}
	if f := cmd.Flags().Lookup("watch-reset"); f != nil && f.Changed {
		c.WatchReset = watchReset
	}
}

// GO CONCEPT: os.Exit and Deferred Calls
// --------------------------------------
// os.Exit ends the process immediately; deferred functions do NOT run.
// That is why main does nothing but execute the root command and map an
// error to exit status 1. Cleanup such as logger.Sync happens in a cobra
// finalizer, before control returns here.
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
