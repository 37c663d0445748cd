package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wagoodman/go-partybus"

	"github.com/treescope/treescope/internal/bus"
	"github.com/treescope/treescope/internal/log"
	"github.com/treescope/treescope/pkg/event"
	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/itemtree"
	"github.com/treescope/treescope/pkg/treeorder"
)

// Project binds a loaded manifest to the directory it was loaded from, which anchors relative
// item paths.
type Project struct {
	Dir      string
	Manifest Manifest
}

// Load reads and decodes a project manifest from the given filesystem. The manifest's
// directory becomes the project directory.
func Load(fsys afero.Fs, manifestPath string) (*Project, error) {
	contents, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read manifest %q: %w", manifestPath, err)
	}

	manifest, err := decodeManifest(manifestPath, contents)
	if err != nil {
		return nil, err
	}

	log.WithFields("project", manifest.Name, "items", len(manifest.Items)).Debug("loaded project manifest")

	return &Project{
		Dir:      filepath.ToSlash(filepath.Dir(manifestPath)),
		Manifest: *manifest,
	}, nil
}

// Items returns the manifest's item list as ordered identities, preserving manifest order.
func (p Project) Items() item.Identities {
	identities := make(item.Identities, len(p.Manifest.Items))
	for i, mi := range p.Manifest.Items {
		identities[i] = item.Identity{
			EvaluatedInclude: item.Path(mi.Include),
			ItemType:         mi.Type,
		}
	}
	return identities
}

// Rooter returns the path-rooting capability for this project: relative includes resolve under
// the project directory.
func (p Project) Rooter() item.Rooter {
	return item.NewDirRooter(p.Dir)
}

// OrderIndex computes the display-order index for the project's items.
func (p Project) OrderIndex() (*treeorder.OrderIndex, error) {
	idx, err := treeorder.NewOrderIndex(p.Items(), p.Rooter())
	if err != nil {
		return nil, err
	}

	bus.Publish(partybus.Event{
		Type:   event.ComputeOrderIndex,
		Source: p.Manifest.Name,
		Value:  idx.Size(),
	})

	return idx, nil
}

// Tree builds the project's item tree from the manifest's item list.
func (p Project) Tree() (*itemtree.ItemTree, error) {
	return itemtree.NewBuilder(p.Manifest.Name, p.Items()).WithRooter(p.Rooter()).Build()
}
