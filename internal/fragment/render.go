package fragment

import (
	"fmt"
	"strings"

	"github.com/ktbridge/ktbridge/internal/peer"
)

// Marker delimits the managed block inside the configuration file. At most
// one occurrence may exist; everything from the marker to end-of-file is
// owned by ktbridge and regenerated wholesale.
const Marker = "// MARK: ktbridge peer targets (generated, do not edit)"

// ConfigFileName is the configuration file at the project root that
// receives the managed block.
const ConfigFileName = "Package.swift"

// Options selects which clauses the rendered declarations carry.
type Options struct {
	// Declarations emits a product declaration for each library peer.
	Declarations bool
	// Preprocess attaches the pre-processing plugin to each target.
	Preprocess bool
	// Transpile attaches the transpilation plugin to each target.
	Transpile bool
}

// Render produces the managed block for the given plans. Rendering is pure
// text and byte-identical for identical input; plans are emitted in the
// order given.
func Render(plans []peer.Plan, opts Options) string {
	var b strings.Builder
	b.WriteString(Marker)
	b.WriteString("\n")

	for _, p := range plans {
		b.WriteString("\n")
		if opts.Declarations && p.Kind == peer.LibraryPeer {
			fmt.Fprintf(&b, "package.products += [.library(name: %q, targets: [%q])]\n", p.Name, p.Name)
		}
		b.WriteString(renderTarget(p, opts))
	}

	return b.String()
}

// renderTarget emits one .target/.testTarget addition with its dependency
// list, resource clause, and plugin clause.
func renderTarget(p peer.Plan, opts Options) string {
	var b strings.Builder

	keyword := ".target"
	if p.Kind == peer.TestPeer {
		keyword = ".testTarget"
	}

	fmt.Fprintf(&b, "package.targets += [%s(name: %q,\n", keyword, p.Name)
	b.WriteString("    dependencies: [\n")
	for _, d := range p.Dependencies {
		if d.Package == "" {
			fmt.Fprintf(&b, "        %q,\n", d.Name)
		} else {
			fmt.Fprintf(&b, "        .product(name: %q, package: %q),\n", d.Name, d.Package)
		}
	}
	b.WriteString("    ],\n")
	fmt.Fprintf(&b, "    resources: [.process(%q)]", peer.ResourceDirName)

	plugins := pluginClauses(opts)
	if len(plugins) > 0 {
		b.WriteString(",\n    plugins: [\n")
		for _, clause := range plugins {
			fmt.Fprintf(&b, "        %s,\n", clause)
		}
		b.WriteString("    ]")
	}

	b.WriteString(")]\n")
	return b.String()
}

func pluginClauses(opts Options) []string {
	var clauses []string
	if opts.Preprocess {
		clauses = append(clauses, fmt.Sprintf(".plugin(name: %q, package: %q)", peer.PreprocessPlugin, peer.PluginPackage))
	}
	if opts.Transpile {
		clauses = append(clauses, fmt.Sprintf(".plugin(name: %q, package: %q)", peer.TranspilePlugin, peer.PluginPackage))
	}
	return clauses
}
