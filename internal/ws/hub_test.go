package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishQueuesEncodedEvent(t *testing.T) {
	h := NewHub()
	h.Publish("product.deleted", map[string]string{"id": "42"})

	require.Len(t, h.Broadcast, 1)
	var ev Event
	require.NoError(t, json.Unmarshal(<-h.Broadcast, &ev))
	assert.Equal(t, "product.deleted", ev.Type)
	assert.Equal(t, map[string]interface{}{"id": "42"}, ev.Data)
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	for i := 0; i < cap(h.Broadcast)+10; i++ {
		h.Publish("order.updated", i)
	}
	assert.Len(t, h.Broadcast, cap(h.Broadcast))

	var nilHub *Hub
	assert.NotPanics(t, func() { nilHub.Publish("order.updated", nil) })
}
