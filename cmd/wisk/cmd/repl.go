package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wisklang/wisk/replmode"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Wisk session",
	RunE: func(_ *cobra.Command, _ []string) error {
		return replmode.New(Version).Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
