package cli

import (
	"fmt"
	"os"

	"github.com/ktbridge/ktbridge/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "ktbridge",
	Short: "Synthesize and link Kotlin peer targets for a Swift package",
	Long: `ktbridge mirrors a Swift package's modules with Kotlin peer build targets:
it generates the Package.swift declarations for each peer, scaffolds the
peers' supporting files, and keeps Packages/Skip populated with symbolic
links to the peer build system's output directories.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ktbridge: %v\n", err)
	}
	return err
}
