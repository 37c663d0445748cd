package event

import (
	"github.com/wagoodman/go-partybus"
)

const (
	BuildItemTree     partybus.EventType = "build-item-tree-event"
	ComputeOrderIndex partybus.EventType = "compute-order-index-event"
)
