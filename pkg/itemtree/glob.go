package itemtree

import (
	"fmt"
	"strings"

	"github.com/becheran/wildmatch-go"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/itemtree/itemnode"
)

// FilesByGlob returns all file nodes whose full path (without the leading separator) matches
// the given doublestar pattern, compared case-insensitively.
func (t *ItemTree) FilesByGlob(pattern string) ([]*itemnode.ItemNode, error) {
	pattern = item.Fold(strings.TrimPrefix(pattern, item.DirSeparator))

	var matches []*itemnode.ItemNode
	for _, n := range t.AllFiles() {
		candidate := strings.TrimPrefix(n.Path.Key(), item.DirSeparator)
		matched, err := doublestar.Match(pattern, candidate)
		if err != nil {
			return nil, fmt.Errorf("unable to match glob pattern=%q path=%q: %w", pattern, candidate, err)
		}
		if matched {
			matches = append(matches, n)
		}
	}
	return matches, nil
}

// FilesByBasename returns all file nodes with the given leaf name (compared case-insensitively).
func (t *ItemTree) FilesByBasename(basename string) ([]*itemnode.ItemNode, error) {
	if strings.ContainsAny(basename, item.Separators) {
		return nil, fmt.Errorf("found directory separator in a basename")
	}

	var matches []*itemnode.ItemNode
	for _, id := range t.byBasename[item.Fold(basename)] {
		matches = append(matches, t.tree.Node(id).(*itemnode.ItemNode))
	}
	return matches, nil
}

// FilesByBasenameGlob returns all file nodes whose leaf name matches any of the given wildcard
// patterns. Patterns must not cross directories.
func (t *ItemTree) FilesByBasenameGlob(globs ...string) ([]*itemnode.ItemNode, error) {
	var matches []*itemnode.ItemNode
	for _, glob := range globs {
		if strings.Contains(glob, "**") {
			return nil, fmt.Errorf("basename glob patterns with '**' are not supported")
		}
		if strings.ContainsAny(glob, item.Separators) {
			return nil, fmt.Errorf("found directory separator in a basename")
		}

		pattern := wildmatch.NewWildMatch(item.Fold(glob))
		for _, basename := range t.basenames.List() {
			if !pattern.IsMatch(basename) {
				continue
			}
			found, err := t.FilesByBasename(basename)
			if err != nil {
				return nil, fmt.Errorf("unable to fetch files by basename (%q): %w", basename, err)
			}
			matches = append(matches, found...)
		}
	}
	return matches, nil
}
