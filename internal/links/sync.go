package links

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ktbridge/ktbridge/internal/peer"
	"github.com/ktbridge/ktbridge/internal/platform"
)

// Sync reconciles linksRoot against plans. It first clears every symlink
// under linksRoot (one level of subdirectories deep, pruning directories
// that end up empty), then creates one subdirectory per plan whose output
// directory under outputRoot exists, holding a settings-file link and a
// base-name link into that output. Plans without output are skipped with a
// remark; any filesystem failure is fatal.
func Sync(linksRoot, outputRoot string, plans []peer.Plan, remarks io.Writer) error {
	if err := clear(linksRoot); err != nil {
		return err
	}

	for _, p := range plans {
		out := p.OutputDir(outputRoot)
		info, err := os.Stat(out)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(remarks, "ktbridge: no build output for %s at %s; skipping link\n", p.Name, out)
			continue
		}

		dir := filepath.Join(linksRoot, p.Name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating links directory %s: %w", dir, err)
		}

		if err := relink(filepath.Join(dir, peer.SettingsFileName), filepath.Join(out, peer.SettingsFileName)); err != nil {
			return err
		}
		if err := relink(filepath.Join(dir, p.BaseName), filepath.Join(out, peer.SourceDirName)); err != nil {
			return err
		}
	}
	return nil
}

// clear removes every symlink directly under root, clears symlinks inside
// one-level subdirectories, and removes subdirectories left empty. Links
// are removed whether or not they still resolve. A missing root is fine.
func clear(root string) error {
	entries, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading links directory %s: %w", root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		switch {
		case platform.IsSymlink(entry):
			if err := platform.RemoveSymlink(path); err != nil {
				return fmt.Errorf("removing stale link %s: %w", path, err)
			}
		case entry.IsDir():
			if err := clearDir(path); err != nil {
				return err
			}
		}
	}
	return nil
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading links directory %s: %w", dir, err)
	}

	remaining := 0
	for _, entry := range entries {
		if !platform.IsSymlink(entry) {
			remaining++
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := platform.RemoveSymlink(path); err != nil {
			return fmt.Errorf("removing stale link %s: %w", path, err)
		}
	}

	if remaining == 0 {
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("removing empty links directory %s: %w", dir, err)
		}
	}
	return nil
}

// relink creates a symlink at link pointing to target, replacing whatever
// entry may already exist there. The clear phase normally leaves nothing
// behind, but replacement keeps refresh safe if it raced something.
func relink(link, target string) error {
	if _, err := os.Lstat(link); err == nil {
		if err := platform.RemoveSymlink(link); err != nil {
			return fmt.Errorf("replacing link %s: %w", link, err)
		}
	}
	if err := platform.CreateSymlink(target, link); err != nil {
		return fmt.Errorf("linking %s -> %s: %w", link, target, err)
	}
	return nil
}
