package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

const (
	descriptorDir  = ".ktbridge"
	descriptorFile = "project.yaml"
)

// DescriptorPath returns the default descriptor location for a project root.
func DescriptorPath(root string) string {
	return filepath.Join(root, descriptorDir, descriptorFile)
}

// Load reads, validates, and normalizes the project descriptor. An empty
// descriptorPath uses the default location under root. toolVersion is the
// running binary's version, checked against the descriptor's minToolVersion
// constraint; "dev" builds skip the check.
func Load(root, descriptorPath, toolVersion string) (*Project, error) {
	path := descriptorPath
	if path == "" {
		path = DescriptorPath(root)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project descriptor %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project descriptor %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid project descriptor %s: %s", path, summarizeIssues(result.Issues))
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing project descriptor %s: %w", path, err)
	}
	p.Root = root

	if err := checkToolVersion(p.MinToolVersion, toolVersion); err != nil {
		return nil, fmt.Errorf("project descriptor %s: %w", path, err)
	}

	applyDefaults(&p)
	return &p, nil
}

// applyDefaults fills in per-target kind and path when the descriptor
// omits them: kind defaults by name suffix, path by the conventional
// Sources/<name> and Tests/<name> layout.
func applyDefaults(p *Project) {
	for i := range p.Targets {
		t := &p.Targets[i]
		if t.Kind == "" {
			if strings.HasSuffix(t.Name, "Tests") {
				t.Kind = KindTest
			} else {
				t.Kind = KindLibrary
			}
		}
		if t.Path == "" {
			if t.Kind == KindTest {
				t.Path = filepath.Join("Tests", t.Name)
			} else {
				t.Path = filepath.Join("Sources", t.Name)
			}
		}
	}
}

// checkToolVersion enforces the descriptor's minToolVersion semver
// constraint against the running tool version.
func checkToolVersion(constraint, toolVersion string) error {
	if constraint == "" || toolVersion == "" || toolVersion == "dev" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parsing minToolVersion %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(toolVersion, "v"))
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("tool version %s does not satisfy minToolVersion %q", toolVersion, constraint)
	}
	return nil
}

// summarizeIssues renders validation issues as a single semicolon-joined string.
func summarizeIssues(issues []ValidationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
