package cmd

import (
	"fmt"
	"os"

	"github.com/prefkit/prefkit/cmd/pref"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "prefkit",
		Short: "typed preference store toolkit",
		Long: fmt.Sprintf(`prefkit (v%s)

A typed accessor layer over pluggable key-value preference stores,
with a file-backed store for reading and modifying preferences
from the shell.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of prefkit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("prefkit v%s\n", Version)
		},
	}
)

func init() {
	// Add subcommands
	RootCmd.AddCommand(pref.PreferenceCommands)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
