package rabbitmq

import (
	"testing"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestLogCatalogEvent(t *testing.T) {
	msg := amqp.Delivery{
		Type: "product.created",
		Body: []byte(`{"event":"product.created","product_id":1,"name":"Match Ball"}`),
	}
	assert.NoError(t, LogCatalogEvent(msg))
}

func TestClientWithoutChannel(t *testing.T) {
	// A client that never connected must refuse to publish or consume and
	// close cleanly.
	c := &Client{}
	assert.Error(t, c.Publish("product.created", []byte(`{}`)))
	assert.Error(t, c.ConsumeCatalogEvents(LogCatalogEvent))
	assert.NoError(t, c.Close())
}
