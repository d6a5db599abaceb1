package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatusValid(t *testing.T) {
	for _, s := range []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	} {
		assert.True(t, s.Valid(), "status=%q", s)
	}

	assert.False(t, OrderStatus("completed").Valid())
	assert.False(t, OrderStatus("").Valid())
	assert.False(t, OrderStatus("Pending").Valid())
}
