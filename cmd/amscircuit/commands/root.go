// Package commands implements the CLI commands for amscircuit.
package commands

import (
	"context"
	"io"
	"strings"

	"github.com/NyanCAD/amscrcuits/internal/app"
	"github.com/NyanCAD/amscrcuits/internal/build"
	"github.com/NyanCAD/amscrcuits/internal/core/ports"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

// DefaultCacheDir is where netlists are cached unless --cache-dir says otherwise.
const DefaultCacheDir = ".amscircuit/cache"

// jsonSwitcher is implemented by loggers that can emit JSON records.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// CLI represents the command line interface for amscircuit.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "amscircuit",
		Short:         "Hierarchical circuit netlist synthesizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().String("cache-dir", DefaultCacheDir, "Directory for cached netlists (empty disables the cache)")
	rootCmd.PersistentFlags().Bool("json-log", false, "Write log records as JSON")

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLog, _ := cmd.Flags().GetBool("json-log")
		if l, ok := c.logger.(jsonSwitcher); ok && jsonLog {
			l.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newNetlistCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newSimulatorsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// addTargetFlags registers the flags shared by commands that select a target.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().String("top", "", "Top entity (defaults to the target of the design file)")
	cmd.Flags().String("arch", "", "Architecture of the top entity")
	cmd.Flags().StringSlice("sim", nil, "Simulator to synthesize for (repeatable)")
	cmd.Flags().StringArray("override", nil, "Architecture override as entity=architecture (repeatable)")
}

func targetOptions(cmd *cobra.Command, designPath string) (app.TargetOptions, error) {
	top, _ := cmd.Flags().GetString("top")
	arch, _ := cmd.Flags().GetString("arch")
	sims, _ := cmd.Flags().GetStringSlice("sim")
	raw, _ := cmd.Flags().GetStringArray("override")

	overrides, err := parseOverrides(raw)
	if err != nil {
		return app.TargetOptions{}, err
	}
	return app.TargetOptions{
		DesignPath:   designPath,
		Top:          top,
		Architecture: arch,
		Simulators:   sims,
		Overrides:    overrides,
	}, nil
}

func parseOverrides(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(raw))
	for _, kv := range raw {
		entity, arch, ok := strings.Cut(kv, "=")
		if !ok || entity == "" || arch == "" {
			return nil, zerr.With(zerr.New("override must look like entity=architecture"), "override", kv)
		}
		overrides[entity] = arch
	}
	return overrides, nil
}
