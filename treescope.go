package treescope

import (
	"github.com/anchore/go-collections"
	"github.com/anchore/go-logger"
	"github.com/wagoodman/go-partybus"

	"github.com/treescope/treescope/internal/bus"
	"github.com/treescope/treescope/internal/log"
	"github.com/treescope/treescope/pkg/item"
	"github.com/treescope/treescope/pkg/treeorder"
)

const (
	// DirTag selects rooters that resolve relative includes under a project directory.
	DirTag = "dir"
	// IdentityTag selects rooters that only normalize separators, leaving paths otherwise untouched.
	IdentityTag = "identity"
)

// RooterConfig is the configuration shared by all rooter capabilities.
type RooterConfig struct {
	// ProjectDir anchors relative item paths for directory-based rooters.
	ProjectDir string
}

// Rooters enumerates the path-rooting capabilities available for order index construction,
// selectable by tag.
func Rooters(cfg RooterConfig) []collections.TaggedValue[item.Rooter] {
	return []collections.TaggedValue[item.Rooter]{
		taggedRooter(item.NewDirRooter(cfg.ProjectDir), "dir-rooter", DirTag),
		taggedRooter(item.RooterFunc(cleanRooted), "identity-rooter", IdentityTag),
	}
}

func taggedRooter(rooter item.Rooter, tags ...string) collections.TaggedValue[item.Rooter] {
	return collections.NewTaggedValue[item.Rooter](rooter, tags...)
}

func cleanRooted(p item.Path) (item.Path, error) {
	return p.Clean(), nil
}

// NewOrderIndex computes a display-order index for the given ordered item includes, rooting
// relative paths against projectDir.
func NewOrderIndex(projectDir string, includes ...string) (*treeorder.OrderIndex, error) {
	return treeorder.NewOrderIndex(item.NewIdentities(includes...), item.NewDirRooter(projectDir))
}

func SetLogger(l logger.Logger) {
	log.Log = l
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
