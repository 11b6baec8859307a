package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ktbridge/ktbridge/internal/config"
	"github.com/ktbridge/ktbridge/internal/fragment"
	"github.com/ktbridge/ktbridge/internal/links"
	"github.com/ktbridge/ktbridge/internal/peer"
	"github.com/ktbridge/ktbridge/internal/project"
	"github.com/ktbridge/ktbridge/internal/scaffold"
)

// pipelineOptions is the option set shared by init and sync: which of the
// pipeline's steps run, and with which clauses. Defaults differ per command.
type pipelineOptions struct {
	Targets    []string // explicit target name filter; empty means all
	Descriptor string   // descriptor path override

	Generate     bool // render the configuration fragment
	Declarations bool // include product declarations in the fragment
	Preprocess   bool // attach the pre-processing plugin
	Transpile    bool // attach the transpilation plugin
	Apply        bool // write the fragment into Package.swift (else print it)
	Scaffold     bool // create peer directory skeletons and stubs
	Links        bool // synchronize the links root
}

// runPipeline loads the project model, plans the peer targets once, and
// feeds the plan list to each enabled step.
func runPipeline(root string, opts pipelineOptions) error {
	proj, err := project.Load(root, opts.Descriptor, buildVersion)
	if err != nil {
		return err
	}

	selected := peer.Select(proj.Targets, opts.Targets, os.Stderr)
	plans := peer.BuildPlans(selected, proj.TargetKinds(), os.Stderr)

	if opts.Scaffold {
		if err := runScaffold(plans, root); err != nil {
			return err
		}
	}

	if opts.Generate {
		block := fragment.Render(plans, fragment.Options{
			Declarations: opts.Declarations,
			Preprocess:   opts.Preprocess,
			Transpile:    opts.Transpile,
		})
		if opts.Apply {
			path := filepath.Join(root, fragment.ConfigFileName)
			if err := fragment.Apply(path, block); err != nil {
				return err
			}
			fmt.Printf("Updated %s with %d peer targets.\n", path, len(plans))
		} else {
			fmt.Println(block)
		}
	}

	if opts.Links {
		outputRoot := config.OutputRoot(root, proj.Name)
		linksRoot := config.LinksRoot(root)
		if err := links.Sync(linksRoot, outputRoot, plans, os.Stderr); err != nil {
			return err
		}
		fmt.Printf("Synchronized %s.\n", linksRoot)
	}

	return nil
}

func runScaffold(plans []peer.Plan, root string) error {
	total := 0
	for _, p := range plans {
		entries, err := scaffold.EntriesFor(p, root)
		if err != nil {
			return err
		}
		created, err := scaffold.Write(entries)
		if err != nil {
			return err
		}
		total += len(created)
	}
	fmt.Printf("Scaffolded %d new files.\n", total)
	return nil
}
