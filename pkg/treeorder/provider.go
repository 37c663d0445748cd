package treeorder

import (
	"github.com/treescope/treescope/internal/log"
	"github.com/treescope/treescope/pkg/item"
)

// PropertyValues is the host's per-node property surface handed to providers during tree
// customization. Hosts that support display ordering additionally implement DisplayOrderWriter.
type PropertyValues interface {
	ItemName() string
	ItemType() string
	IsFolder() bool
	Metadata() item.Metadata
}

// DisplayOrderWriter is the extended property surface for hosts that can persist a display
// order per node.
type DisplayOrderWriter interface {
	PropertyValues
	SetDisplayOrder(order int)
}

// TreePropertiesProvider applies computed display orders to tree nodes during the host's
// property-customization pass. It is invoked once per node, possibly concurrently.
type TreePropertiesProvider struct {
	index *OrderIndex
}

func NewTreePropertiesProvider(index *OrderIndex) *TreePropertiesProvider {
	return &TreePropertiesProvider{
		index: index,
	}
}

// Index returns the order index backing this provider.
func (p *TreePropertiesProvider) Index() *OrderIndex {
	return p.index
}

// CalculatePropertyValues writes the node's display order when the host supports display
// ordering and an order applies. Hosts without the extended write surface are left untouched
// rather than failing.
func (p *TreePropertiesProvider) CalculatePropertyValues(values PropertyValues) {
	writer, ok := values.(DisplayOrderWriter)
	if !ok {
		log.Tracef("property values for %q do not support display ordering", values.ItemName())
		return
	}

	if order, ok := p.index.Evaluate(values.ItemName(), values.IsFolder(), values.ItemType(), values.Metadata()); ok {
		writer.SetDisplayOrder(order)
	}
}
