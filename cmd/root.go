package cmd

import (
	"github.com/cottand/annot/internal/config"
	"github.com/cottand/annot/internal/log"
	"github.com/spf13/cobra"
)

var logger = log.Section("cli")

type rootFlags struct {
	configPath    string
	hackArrDVArrs bool
	logLevel      string
}

// NewRootCmd builds the annot command tree. Options are applied before any
// subcommand runs, which is before the annotation table is first built.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "annot [subcommand]",
		Short: "annot classifies type annotations",
		Long: "annot maps builtin type-hint names to annotation categories, reports which\n" +
			"interfaces accept non-object values and prints the default value of each category.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return flags.apply(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML options file")
	pf.BoolVar(&flags.hackArrDVArrs, "hack-arr-dv-arrs", false, "resolve varray/darray hints to vec/dict")
	pf.StringVarP(&flags.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")

	root.AddCommand(newResolveCmd())
	root.AddCommand(newCapsCmd())
	root.AddCommand(newDefaultCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newReplCmd())
	return root
}

// apply merges the options file, the environment and the command line, in increasing precedence
func (f *rootFlags) apply(cmd *cobra.Command) error {
	opts, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("hack-arr-dv-arrs") {
		opts.HackArrDVArrs = f.hackArrDVArrs
	}
	if cmd.Flags().Changed("log-level") {
		opts.LogLevel = f.logLevel
	}
	level, err := opts.SlogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	config.Set(opts)
	logger.Debug("options applied", "options", opts, "command", cmd.Name())
	return nil
}
