package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

func SetPublisher(p partybus.Publisher) {
	publisher = p
}

// Publish an event onto the bus. If there is no bus set by the calling application, this does nothing.
func Publish(event partybus.Event) {
	if publisher != nil {
		publisher.Publish(event)
	}
}
