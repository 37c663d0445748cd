package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/treescope/treescope/pkg/event"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

// ParseBuildItemTree extracts the project name and build progress from a BuildItemTree event.
func ParseBuildItemTree(e partybus.Event) (string, progress.Progressable, error) {
	if err := checkEventType(e.Type, event.BuildItemTree); err != nil {
		return "", nil, err
	}

	name, ok := e.Source.(string)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Source", e.Source)
	}

	prog, ok := e.Value.(progress.Progressable)
	if !ok {
		return "", nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return name, prog, nil
}

// ParseComputeOrderIndex extracts the project name and the number of indexed segments from a
// ComputeOrderIndex event.
func ParseComputeOrderIndex(e partybus.Event) (string, int, error) {
	if err := checkEventType(e.Type, event.ComputeOrderIndex); err != nil {
		return "", 0, err
	}

	name, ok := e.Source.(string)
	if !ok {
		return "", 0, newPayloadErr(e.Type, "Source", e.Source)
	}

	count, ok := e.Value.(int)
	if !ok {
		return "", 0, newPayloadErr(e.Type, "Value", e.Value)
	}

	return name, count, nil
}
