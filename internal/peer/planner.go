package peer

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ktbridge/ktbridge/internal/project"
)

// Fixed products and plugins every peer target is wired to.
const (
	// RuntimeProduct is the shared Kotlin runtime every library peer
	// depends on.
	RuntimeProduct = "BridgeKt"
	// TestProduct is the shared test-support product every test peer
	// depends on.
	TestProduct = "BridgeTestKt"
	// RuntimePackage owns both shared products.
	RuntimePackage = "ktbridge-runtime"

	// PreprocessPlugin and TranspilePlugin are the build-tool plugins
	// attached to peer target declarations.
	PreprocessPlugin = "KtBridgePreprocess"
	TranspilePlugin  = "KtBridgeTranspile"
	// PluginPackage owns both plugins.
	PluginPackage = "ktbridge"

	// ResourceDirName is the conventional resource subdirectory inside a
	// peer target's directory.
	ResourceDirName = "Bridge"
	// SettingsFileName is the per-target settings file, both in the
	// scaffold and in the external build output.
	SettingsFileName = "ktbridge.yml"
	// SourceDirName is the transpiled-source subdirectory inside a peer's
	// external build-output directory.
	SourceDirName = "src"
)

// Ref is one dependency of a peer target: either a sibling target (Package
// empty) or a product of another package.
type Ref struct {
	Name    string
	Package string
}

// Plan is a fully derived peer target: everything the fragment generator,
// scaffold writer, and link synchronizer need to know about it. Plans are
// rebuilt from the current project model on every invocation and never
// persisted.
type Plan struct {
	Name         string
	Kind         PeerKind
	BaseName     string
	SourcePath   string // source target's directory, relative to the project root
	Dependencies []Ref
}

// ScaffoldDir returns the peer's directory under the project root. The peer
// lives beside its source target: Sources/Foo yields Sources/FooKt, and a
// custom layout like Modules/Net yields Modules/NetKt. A plan without a
// source path falls back to the conventional Sources/Tests layout.
func (p Plan) ScaffoldDir(root string) string {
	if p.SourcePath != "" {
		return filepath.Join(root, filepath.Dir(p.SourcePath), p.Name)
	}
	if p.Kind == TestPeer {
		return filepath.Join(root, "Tests", p.Name)
	}
	return filepath.Join(root, "Sources", p.Name)
}

// ResourceDir returns the peer's resource subdirectory under the project root.
func (p Plan) ResourceDir(root string) string {
	return filepath.Join(p.ScaffoldDir(root), ResourceDirName)
}

// OutputDir returns the peer's expected external build-output directory.
func (p Plan) OutputDir(outputRoot string) string {
	return filepath.Join(outputRoot, p.Name)
}

// BuildPlans derives one Plan per selected target, in input order (callers
// pass Select output, which is already sorted). kinds indexes every target
// of the project by name so dependency edges can be classified; edges to
// unknown targets are assumed ordinary. Malformed edges are skipped with a
// remark. BuildPlans cannot fail.
func BuildPlans(selected []project.Target, kinds map[string]project.Kind, remarks io.Writer) []Plan {
	plans := make([]Plan, 0, len(selected))
	for _, t := range selected {
		peerName, peerKind, baseName := Classify(t.Name, t.Kind)

		deps := make([]Ref, 0, len(t.Dependencies)+2)
		if peerKind == LibraryPeer {
			// A library peer always wraps its source target.
			deps = append(deps, Ref{Name: baseName})
		}

		for _, d := range t.Dependencies {
			switch {
			case d.IsTarget():
				depPeer, _, _ := Classify(d.Target, kinds[d.Target])
				deps = append(deps, Ref{Name: depPeer})
			case d.IsProduct():
				deps = append(deps, Ref{Name: d.Product.Name + LibrarySuffix, Package: d.Product.Package})
			default:
				fmt.Fprintf(remarks, "ktbridge: skipping unrecognized dependency of target %s\n", t.Name)
			}
		}

		if peerKind == TestPeer {
			deps = append(deps, Ref{Name: TestProduct, Package: RuntimePackage})
		} else {
			deps = append(deps, Ref{Name: RuntimeProduct, Package: RuntimePackage})
		}

		plans = append(plans, Plan{
			Name:         peerName,
			Kind:         peerKind,
			BaseName:     baseName,
			SourcePath:   t.Path,
			Dependencies: deps,
		})
	}
	return plans
}
