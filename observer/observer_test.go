package observer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alestormoody/design-pattern/observer"
)

// recorder captures updates so tests can assert content and order.
type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) Update(state string) {
	*r.log = append(*r.log, fmt.Sprintf("%s:%s", r.name, state))
}

// TestPublish_NotifiesInAttachmentOrder verifies the defining property:
// attaching two observers then publishing once delivers that exact update to
// both, in attachment order.
func TestPublish_NotifiesInAttachmentOrder(t *testing.T) {
	var log []string
	p := observer.NewPublisher()
	p.Subscribe(&recorder{name: "a", log: &log})
	p.Subscribe(&recorder{name: "b", log: &log})

	p.Publish("v1")

	assert.Equal(t, []string{"a:v1", "b:v1"}, log)
}

// TestPublish_EveryUpdateReachesAll verifies repeated publishes fan out each
// time and the publisher tracks the latest state.
func TestPublish_EveryUpdateReachesAll(t *testing.T) {
	var log []string
	p := observer.NewPublisher()
	p.Subscribe(&recorder{name: "a", log: &log})

	p.Publish("v1")
	p.Publish("v2")

	assert.Equal(t, []string{"a:v1", "a:v2"}, log)
	assert.Equal(t, "v2", p.State())
}

// TestPublish_NoSubscribers verifies publishing without subscribers is a
// quiet state change.
func TestPublish_NoSubscribers(t *testing.T) {
	p := observer.NewPublisher()
	p.Publish("v1")

	assert.Equal(t, "v1", p.State())
}
