package fragment

import (
	"fmt"
	"os"
	"strings"
)

// Apply writes the managed block into the configuration file at path. The
// file is truncated at the first marker occurrence (or kept whole if the
// marker is absent), then the block is appended after one blank line.
// Applying the same block twice leaves the file byte-identical.
func Apply(path, block string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading configuration file %s: %w", path, err)
	}

	prefix := string(data)
	if idx := strings.Index(prefix, Marker); idx >= 0 {
		prefix = prefix[:idx]
	}
	prefix = strings.TrimRight(prefix, "\n")

	content := prefix + "\n\n" + block
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing configuration file %s: %w", path, err)
	}
	return nil
}
