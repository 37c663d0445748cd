package treeorder

import (
	"fmt"
	"math"

	"github.com/scylladb/go-set/strset"

	"github.com/treescope/treescope/internal/log"
	"github.com/treescope/treescope/pkg/item"
)

// MaxOrder is the display order emitted for files that never appeared in the project item
// list (typically hidden items only visible under a show-all mode), placing them after all
// listed content.
const MaxOrder = math.MaxInt32

// OrderIndex assigns display-order values to item tree nodes based on the order in which items
// appear within a project's ordered item list. Ordering is keyed by path segment name, except
// for items whose leaf name occurs more than once in the list; those are keyed by their full
// rooted path, since the name alone cannot tell them apart.
//
// Both lookup maps are populated once during construction and never mutated afterward, so
// Evaluate may be called concurrently without synchronization.
type OrderIndex struct {
	items  item.Identities
	byName map[string]int
	byPath map[string]int
}

// NewOrderIndex computes the display-order mappings for the given ordered item list. The only
// failure mode is a rooting error from the given Rooter, which is propagated unmodified.
func NewOrderIndex(items item.Identities, rooter item.Rooter) (*OrderIndex, error) {
	idx := &OrderIndex{
		items:  items,
		byName: make(map[string]int),
		byPath: make(map[string]int),
	}
	if err := idx.build(rooter); err != nil {
		return nil, err
	}

	log.WithFields("items", len(items), "names", len(idx.byName), "paths", len(idx.byPath)).
		Trace("computed item order index")

	return idx, nil
}

func (i *OrderIndex) build(rooter item.Rooter) error {
	duplicates := duplicateLeafNames(i.items)

	index := 1
	for _, identity := range i.items {
		for _, part := range identity.EvaluatedInclude.Segments() {
			if duplicates.Has(item.Fold(part)) {
				// this segment's name is ambiguous across the item list; key the whole
				// containing item by its rooted path instead
				rooted, err := rooter.MakeRooted(identity.EvaluatedInclude)
				if err != nil {
					return fmt.Errorf("unable to root item path %q: %w", identity.EvaluatedInclude, err)
				}
				if _, exists := i.byPath[rooted.Key()]; !exists {
					i.byPath[rooted.Key()] = index
					index++
				}
				continue
			}
			if _, exists := i.byName[item.Fold(part)]; !exists {
				i.byName[item.Fold(part)] = index
				index++
			}
		}
	}

	return nil
}

// Items returns the original ordered item list, unchanged.
func (i *OrderIndex) Items() item.Identities {
	return i.items
}

// Size is the number of display-order values assigned across both mappings.
func (i *OrderIndex) Size() int {
	return len(i.byName) + len(i.byPath)
}

// Evaluate answers the display order for a single tree node. The boolean indicates whether an
// order applies; false means the caller keeps whatever default ordering it already has.
//
// Nodes that match by name or full path but carry no item type are still being populated by
// the host pipeline and are left alone to avoid reordering flicker while the tree settles.
// Unmatched files sort to the end (MaxOrder); unmatched folders keep the host's default order.
func (i *OrderIndex) Evaluate(itemName string, isFolder bool, itemType string, metadata item.Metadata) (int, bool) {
	order, ok := i.byName[item.Fold(itemName)]
	if !ok {
		if fullPath, exists := metadata.FullPath(); exists {
			order, ok = i.byPath[fullPath.Key()]
		}
	}

	if ok {
		if itemType == "" {
			return 0, false
		}
		return order, true
	}

	if !isFolder {
		return MaxOrder, true
	}

	return 0, false
}

// duplicateLeafNames returns the case-folded leaf names that occur more than once across the
// item list.
func duplicateLeafNames(items item.Identities) *strset.Set {
	seen := strset.New()
	duplicates := strset.New()
	for _, identity := range items {
		leaf := item.Fold(identity.EvaluatedInclude.Basename())
		if leaf == "" {
			continue
		}
		if seen.Has(leaf) {
			duplicates.Add(leaf)
			continue
		}
		seen.Add(leaf)
	}
	return duplicates
}
