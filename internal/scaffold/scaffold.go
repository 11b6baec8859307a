package scaffold

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/ktbridge/ktbridge/internal/peer"
)

// Entry is one file that must exist after scaffolding, with the content it
// receives if it has to be created.
type Entry struct {
	Path    string
	Content []byte
}

// templateData is what each stub template sees.
type templateData struct {
	Name     string // peer target name, e.g. "FooKt"
	BaseName string // source target base name, e.g. "Foo"
}

// EntriesFor renders the scaffold entries for one plan: the per-target
// settings file inside the resource subdirectory for every peer, a test
// harness stub for test peers, and bundle-accessor plus interop stubs for
// library peers.
func EntriesFor(p peer.Plan, root string) ([]Entry, error) {
	dir := p.ScaffoldDir(root)
	data := templateData{Name: p.Name, BaseName: p.BaseName}

	entries := []Entry{}

	settings, err := renderTemplate("settings.yml.tmpl", data)
	if err != nil {
		return nil, err
	}
	entries = append(entries, Entry{
		Path:    filepath.Join(p.ResourceDir(root), peer.SettingsFileName),
		Content: settings,
	})

	if p.Kind == peer.TestPeer {
		harness, err := renderTemplate("testharness.swift.tmpl", data)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			Path:    filepath.Join(dir, p.Name+".swift"),
			Content: harness,
		})
		return entries, nil
	}

	bundle, err := renderTemplate("bundle.swift.tmpl", data)
	if err != nil {
		return nil, err
	}
	interop, err := renderTemplate("interop.swift.tmpl", data)
	if err != nil {
		return nil, err
	}
	entries = append(entries,
		Entry{Path: filepath.Join(dir, p.BaseName+"Bundle.swift"), Content: bundle},
		Entry{Path: filepath.Join(dir, p.BaseName+"Kt.swift"), Content: interop},
	)
	return entries, nil
}

// Write ensures every entry's parent directory exists and creates each file
// that is absent. Existing files are left exactly as they are. It returns
// the paths it created.
func Write(entries []Entry) ([]string, error) {
	var created []string
	for _, e := range entries {
		if err := os.MkdirAll(filepath.Dir(e.Path), 0755); err != nil {
			return created, fmt.Errorf("creating scaffold directory %s: %w", filepath.Dir(e.Path), err)
		}

		if _, err := os.Stat(e.Path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return created, fmt.Errorf("checking scaffold file %s: %w", e.Path, err)
		}

		if err := os.WriteFile(e.Path, e.Content, 0644); err != nil {
			return created, fmt.Errorf("writing scaffold file %s: %w", e.Path, err)
		}
		created = append(created, e.Path)
	}
	return created, nil
}

// renderTemplate executes one embedded template by name.
func renderTemplate(name string, data templateData) ([]byte, error) {
	raw, err := fs.ReadFile(templateFS, "templates/"+name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
