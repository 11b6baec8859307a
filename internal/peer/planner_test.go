package peer

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktbridge/ktbridge/internal/project"
)

func planFixture() ([]project.Target, map[string]project.Kind) {
	targets := []project.Target{
		{Name: "A", Kind: project.KindLibrary, Path: "Sources/A"},
		{
			Name: "ATests",
			Kind: project.KindTest,
			Path: "Tests/ATests",
			Dependencies: []project.Dependency{
				{Target: "A"},
			},
		},
	}
	kinds := map[string]project.Kind{"A": project.KindLibrary, "ATests": project.KindTest}
	return targets, kinds
}

func TestBuildPlansScenario(t *testing.T) {
	targets, kinds := planFixture()
	var remarks bytes.Buffer

	plans := BuildPlans(targets, kinds, &remarks)
	require.Len(t, plans, 2)

	lib := plans[0]
	assert.Equal(t, "AKt", lib.Name)
	assert.Equal(t, LibraryPeer, lib.Kind)
	assert.Equal(t, "A", lib.BaseName)
	assert.Equal(t, "Sources/A", lib.SourcePath)
	require.Len(t, lib.Dependencies, 2)
	assert.Equal(t, Ref{Name: "A"}, lib.Dependencies[0])
	assert.Equal(t, Ref{Name: RuntimeProduct, Package: RuntimePackage}, lib.Dependencies[1])

	test := plans[1]
	assert.Equal(t, "AKtTests", test.Name)
	assert.Equal(t, TestPeer, test.Kind)
	assert.Equal(t, "A", test.BaseName)
	assert.Equal(t, "Tests/ATests", test.SourcePath)
	require.Len(t, test.Dependencies, 2)
	assert.Equal(t, Ref{Name: "AKt"}, test.Dependencies[0])
	assert.Equal(t, Ref{Name: TestProduct, Package: RuntimePackage}, test.Dependencies[1])

	assert.Empty(t, remarks.String())
}

func TestBuildPlansProductDependency(t *testing.T) {
	targets := []project.Target{
		{
			Name: "Net",
			Kind: project.KindLibrary,
			Dependencies: []project.Dependency{
				{Product: &project.ProductRef{Name: "Sockets", Package: "swift-sockets"}},
			},
		},
	}
	var remarks bytes.Buffer

	plans := BuildPlans(targets, map[string]project.Kind{"Net": project.KindLibrary}, &remarks)
	require.Len(t, plans, 1)
	require.Len(t, plans[0].Dependencies, 3)
	assert.Equal(t, Ref{Name: "SocketsKt", Package: "swift-sockets"}, plans[0].Dependencies[1])
}

func TestBuildPlansSkipsMalformedEdges(t *testing.T) {
	targets := []project.Target{
		{
			Name: "A",
			Kind: project.KindLibrary,
			Dependencies: []project.Dependency{
				{}, // neither target nor product
				{Target: "B"},
			},
		},
	}
	kinds := map[string]project.Kind{"A": project.KindLibrary, "B": project.KindLibrary}
	var remarks bytes.Buffer

	plans := BuildPlans(targets, kinds, &remarks)
	require.Len(t, plans, 1)
	// Self, B's peer, runtime product — malformed edge dropped.
	require.Len(t, plans[0].Dependencies, 3)
	assert.Equal(t, "BKt", plans[0].Dependencies[1].Name)
	assert.Contains(t, remarks.String(), "unrecognized dependency")
}

func TestScaffoldDirIsSiblingOfSource(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want string
	}{
		{
			"default library layout",
			Plan{Name: "FooKt", Kind: LibraryPeer, SourcePath: "Sources/Foo"},
			filepath.Join("Sources", "FooKt"),
		},
		{
			"default test layout",
			Plan{Name: "FooKtTests", Kind: TestPeer, SourcePath: "Tests/FooTests"},
			filepath.Join("Tests", "FooKtTests"),
		},
		{
			"custom layout",
			Plan{Name: "NetKt", Kind: LibraryPeer, SourcePath: "Modules/Net"},
			filepath.Join("Modules", "NetKt"),
		},
		{
			"no source path falls back to convention",
			Plan{Name: "FooKt", Kind: LibraryPeer},
			filepath.Join("Sources", "FooKt"),
		},
	}

	root := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.Join(root, tt.want), tt.plan.ScaffoldDir(root))
		})
	}
}

func TestBuildPlansDeterministic(t *testing.T) {
	targets, kinds := planFixture()

	first := BuildPlans(targets, kinds, &bytes.Buffer{})
	second := BuildPlans(targets, kinds, &bytes.Buffer{})
	assert.Equal(t, first, second)
}
