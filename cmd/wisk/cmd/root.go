package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wisklang/wisk/replmode"
)

// Version is set at build time via -ldflags, defaulting to a dev marker
// when built without them, grounded on go-dws's cmd/dwscript/cmd.Version.
var Version = "0.1.0-dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wisk",
	Short: "Wisk language interpreter",
	Long: `wisk is a tree-walking interpreter for Wisk, a small,
dynamically-typed, expression-oriented scripting language with
first-class functions and lexical scoping.`,
	Version: Version,
	Args:    cobra.NoArgs,
	// With no subcommand given, drop into the REPL — matching the
	// teacher's own MODE = "repl" default.
	RunE: func(_ *cobra.Command, _ []string) error {
		return replmode.New(Version).Start(os.Stdout)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
