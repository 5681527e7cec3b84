package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConsumer(t *testing.T) {
	c := NewConsumer([]string{"localhost:9092"}, "fareledger-worker", "booking-notifications")
	assert.NotNil(t, c)
	assert.NoError(t, c.Close())
}

func TestConsumer_CloseNil(t *testing.T) {
	var c *Consumer
	assert.NoError(t, c.Close())
}
