package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	syncTargets    []string
	syncDescriptor string
)

func init() {
	syncCmd.Flags().StringArrayVar(&syncTargets, "target", nil, "Limit to the named target (repeatable)")
	syncCmd.Flags().StringVar(&syncDescriptor, "descriptor", "", "Path to the project descriptor (default .ktbridge/project.yaml)")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize output links with the peer build's output",
	Long: `Reconcile the links directory (Packages/Skip) against the current peer
target set: stale links and emptied directories are removed, and a link
directory is created for every peer target whose build output exists.

Peers whose output has not been produced yet are skipped with a remark;
run the peer build first, then sync again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		return runPipeline(cwd, pipelineOptions{
			Targets:    syncTargets,
			Descriptor: syncDescriptor,
			Links:      true,
		})
	},
}
