package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validDescriptor = `name: Demo
targets:
  - name: A
  - name: ATests
    kind: test
    dependencies:
      - target: A
  - name: Net
    kind: library
    path: Modules/Net
    dependencies:
      - product:
          name: Sockets
          package: swift-sockets
`

func writeDescriptor(t *testing.T, content string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, descriptorDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, descriptorFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestLoadValidDescriptor(t *testing.T) {
	root := writeDescriptor(t, validDescriptor)

	p, err := Load(root, "", "dev")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if p.Name != "Demo" {
		t.Errorf("Name = %q, want %q", p.Name, "Demo")
	}
	if p.Root != root {
		t.Errorf("Root = %q, want %q", p.Root, root)
	}
	if len(p.Targets) != 3 {
		t.Fatalf("got %d targets, want 3", len(p.Targets))
	}

	// Kind and path defaults.
	a := p.Targets[0]
	if a.Kind != KindLibrary {
		t.Errorf("A.Kind = %q, want library (defaulted)", a.Kind)
	}
	if a.Path != filepath.Join("Sources", "A") {
		t.Errorf("A.Path = %q, want Sources/A (defaulted)", a.Path)
	}

	tests := p.Targets[1]
	if tests.Kind != KindTest {
		t.Errorf("ATests.Kind = %q, want test", tests.Kind)
	}
	if tests.Path != filepath.Join("Tests", "ATests") {
		t.Errorf("ATests.Path = %q, want Tests/ATests (defaulted)", tests.Path)
	}
	if len(tests.Dependencies) != 1 || !tests.Dependencies[0].IsTarget() {
		t.Errorf("ATests.Dependencies = %+v, want one target edge", tests.Dependencies)
	}

	net := p.Targets[2]
	if net.Path != "Modules/Net" {
		t.Errorf("Net.Path = %q, explicit path must not be overridden", net.Path)
	}
	if len(net.Dependencies) != 1 || !net.Dependencies[0].IsProduct() {
		t.Fatalf("Net.Dependencies = %+v, want one product edge", net.Dependencies)
	}
	if net.Dependencies[0].Product.Package != "swift-sockets" {
		t.Errorf("product package = %q, want swift-sockets", net.Dependencies[0].Product.Package)
	}
}

func TestLoadMissingDescriptor(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root, "", "dev")
	if err == nil {
		t.Fatal("expected error for missing descriptor")
	}
	if !strings.Contains(err.Error(), DescriptorPath(root)) {
		t.Errorf("error should name the descriptor path, got: %v", err)
	}
}

func TestLoadRejectsSchemaViolations(t *testing.T) {
	root := writeDescriptor(t, "targets:\n  - kind: test\n")
	_, err := Load(root, "", "dev")
	if err == nil {
		t.Fatal("expected schema validation error")
	}
	if !strings.Contains(err.Error(), "invalid project descriptor") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadDescriptorPathOverride(t *testing.T) {
	root := t.TempDir()
	alt := filepath.Join(root, "alt.yaml")
	if err := os.WriteFile(alt, []byte("name: Demo\ntargets: []\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(root, alt, "dev")
	if err != nil {
		t.Fatalf("Load() with override: %v", err)
	}
	if p.Name != "Demo" {
		t.Errorf("Name = %q, want Demo", p.Name)
	}
}

func TestMinToolVersionGate(t *testing.T) {
	descriptor := "name: Demo\nminToolVersion: \">= 1.2.0\"\ntargets: []\n"

	t.Run("satisfied", func(t *testing.T) {
		root := writeDescriptor(t, descriptor)
		if _, err := Load(root, "", "1.3.0"); err != nil {
			t.Errorf("Load() with satisfying version: %v", err)
		}
	})

	t.Run("v-prefix tolerated", func(t *testing.T) {
		root := writeDescriptor(t, descriptor)
		if _, err := Load(root, "", "v1.2.0"); err != nil {
			t.Errorf("Load() with v-prefixed version: %v", err)
		}
	})

	t.Run("unsatisfied", func(t *testing.T) {
		root := writeDescriptor(t, descriptor)
		_, err := Load(root, "", "1.1.0")
		if err == nil {
			t.Fatal("expected minToolVersion error")
		}
		if !strings.Contains(err.Error(), "minToolVersion") {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("dev builds skip the check", func(t *testing.T) {
		root := writeDescriptor(t, descriptor)
		if _, err := Load(root, "", "dev"); err != nil {
			t.Errorf("Load() with dev version: %v", err)
		}
	})
}

func TestTargetKinds(t *testing.T) {
	p := Project{Targets: []Target{
		{Name: "A", Kind: KindLibrary},
		{Name: "ATests", Kind: KindTest},
	}}
	kinds := p.TargetKinds()
	if kinds["A"] != KindLibrary || kinds["ATests"] != KindTest {
		t.Errorf("TargetKinds() = %v", kinds)
	}
}
