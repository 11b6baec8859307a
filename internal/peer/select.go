package peer

import (
	"fmt"
	"io"
	"sort"

	"github.com/ktbridge/ktbridge/internal/project"
)

// Select returns the source targets eligible for peer synthesis, sorted by
// name. Targets whose names already carry a peer suffix are always
// excluded. A non-empty filter keeps only the named targets; a filter that
// matches nothing falls back to the full eligible set with a remark,
// because the host enumeration is the authority on what exists.
func Select(targets []project.Target, filter []string, remarks io.Writer) []project.Target {
	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}

	eligible := make([]project.Target, 0, len(targets))
	for _, t := range targets {
		if IsPeerName(t.Name) {
			continue
		}
		eligible = append(eligible, t)
	}

	selected := eligible
	if len(wanted) > 0 {
		filtered := make([]project.Target, 0, len(wanted))
		for _, t := range eligible {
			if wanted[t.Name] {
				filtered = append(filtered, t)
			}
		}
		if len(filtered) == 0 {
			fmt.Fprintf(remarks, "ktbridge: no targets matched the filter; using all %d eligible targets\n", len(eligible))
		} else {
			selected = filtered
		}
	}

	// The host's enumeration order is unspecified; sort so generated
	// output is stable across runs.
	sorted := make([]project.Target, len(selected))
	copy(sorted, selected)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted
}
