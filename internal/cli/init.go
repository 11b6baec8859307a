package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	initTargets      []string
	initDescriptor   string
	initGenerate     bool
	initScaffold     bool
	initDeclarations bool
	initPreprocess   bool
	initTranspile    bool
	initApply        bool
	initLinks        bool
)

func init() {
	initCmd.Flags().StringArrayVar(&initTargets, "target", nil, "Limit to the named target (repeatable)")
	initCmd.Flags().StringVar(&initDescriptor, "descriptor", "", "Path to the project descriptor (default .ktbridge/project.yaml)")
	initCmd.Flags().BoolVar(&initGenerate, "generate", true, "Render the peer target declarations block")
	initCmd.Flags().BoolVar(&initScaffold, "scaffold", true, "Create peer target directories and stub files")
	initCmd.Flags().BoolVar(&initDeclarations, "declarations", true, "Emit product declarations for library peers")
	initCmd.Flags().BoolVar(&initPreprocess, "preprocess", true, "Attach the pre-processing plugin to peer targets")
	initCmd.Flags().BoolVar(&initTranspile, "transpile", true, "Attach the transpilation plugin to peer targets")
	initCmd.Flags().BoolVar(&initApply, "apply", true, "Write the generated block into Package.swift (use --apply=false to print it)")
	initCmd.Flags().BoolVar(&initLinks, "links", false, "Also synchronize the output links directory")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Synthesize Kotlin peer targets for this project",
	Long: `Derive one Kotlin peer target per source module, scaffold the peers'
supporting files, and update Package.swift with the generated peer target
declarations.

By default all project targets are processed; pass --target one or more
times to restrict the run. Output links are not touched unless --links is
given (run 'ktbridge sync' after the peer build has produced output).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		return runPipeline(cwd, pipelineOptions{
			Targets:      initTargets,
			Descriptor:   initDescriptor,
			Generate:     initGenerate,
			Declarations: initDeclarations,
			Preprocess:   initPreprocess,
			Transpile:    initTranspile,
			Apply:        initApply,
			Scaffold:     initScaffold,
			Links:        initLinks,
		})
	},
}
