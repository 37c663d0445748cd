package itemtree

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/treescope/treescope/internal/bus"
	"github.com/treescope/treescope/internal/log"
	"github.com/treescope/treescope/pkg/event"
	"github.com/treescope/treescope/pkg/item"
)

// Builder constructs an ItemTree from a project's ordered item list. Failing items do not stop
// the build; all failures are aggregated and returned alongside the (partial) tree.
type Builder struct {
	name   string
	items  item.Identities
	rooter item.Rooter
}

func NewBuilder(name string, items item.Identities) *Builder {
	return &Builder{
		name:  name,
		items: items,
	}
}

// WithRooter resolves each file's fully-qualified path during the build, so nodes carry the
// same path identity the order index was keyed with.
func (b *Builder) WithRooter(rooter item.Rooter) *Builder {
	b.rooter = rooter
	return b
}

func (b *Builder) Build() (*ItemTree, error) {
	prog := progress.NewManual(int64(len(b.items)))
	bus.Publish(partybus.Event{
		Type:   event.BuildItemTree,
		Source: b.name,
		Value:  progress.Progressable(prog),
	})

	t := New()
	var errs error
	for _, identity := range b.items {
		if err := b.add(t, identity); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to add item %q: %w", identity.EvaluatedInclude, err))
		}
		prog.Increment()
	}
	prog.SetCompleted()

	if errs != nil {
		log.WithFields("project", b.name, "error", errs).Warn("item tree built with failing items")
	}

	return t, errs
}

func (b *Builder) add(t *ItemTree, identity item.Identity) error {
	if identity.ItemType == item.FolderType {
		_, err := t.AddFolder(identity.EvaluatedInclude)
		return err
	}

	n, err := t.AddFile(identity.EvaluatedInclude, identity.ItemType)
	if err != nil {
		return err
	}

	if b.rooter != nil && n.RootedPath == "" {
		rooted, err := b.rooter.MakeRooted(identity.EvaluatedInclude)
		if err != nil {
			return err
		}
		n.RootedPath = rooted
	}
	return nil
}
